// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RequireText fails the test with a readable diff when actual differs from expected.
func RequireText(t testing.TB, expected string, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	matcher := diffmatchpatch.New()
	differences := matcher.DiffMain(expected, actual, false)
	t.Fatalf("unexpected text (-expected +actual):\n%s\nexpected:\n%q\nactual:\n%q", matcher.DiffPrettyText(differences), expected, actual)
}
