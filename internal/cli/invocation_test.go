package cli

import (
	"errors"
	"math"
	"testing"
)

func TestParseInvocation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name               string
		arguments          []string
		expectedInvocation Invocation
		expectUsageError   bool
	}{
		{name: "no arguments", arguments: nil, expectedInvocation: Invocation{}},
		{name: "path only", arguments: []string{"notes.txt"}, expectedInvocation: Invocation{Path: "notes.txt"}},
		{name: "top only", arguments: []string{"--top", "5"}, expectedInvocation: Invocation{Top: 5, TopProvided: true}},
		{name: "top and path", arguments: []string{"--top", "0", "notes.txt"}, expectedInvocation: Invocation{Path: "notes.txt", Top: 0, TopProvided: true}},
		{name: "extras ignored", arguments: []string{"a.txt", "b.txt", "--top", "x"}, expectedInvocation: Invocation{Path: "a.txt"}},
		{name: "leading zeros", arguments: []string{"--top", "007"}, expectedInvocation: Invocation{Top: 7, TopProvided: true}},
		{name: "overflow clamps", arguments: []string{"--top", "99999999999999999999999"}, expectedInvocation: Invocation{Top: math.MaxInt, TopProvided: true}},
		{name: "equals form is a path", arguments: []string{"--top=3"}, expectedInvocation: Invocation{Path: "--top=3"}},
		{name: "missing value", arguments: []string{"--top"}, expectUsageError: true},
		{name: "non numeric", arguments: []string{"--top", "abc", "notes.txt"}, expectUsageError: true},
		{name: "signed value", arguments: []string{"--top", "+3"}, expectUsageError: true},
		{name: "non ascii digits", arguments: []string{"--top", "٣"}, expectUsageError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			invocation, err := ParseInvocation(testCase.arguments)
			if testCase.expectUsageError {
				var usageError *UsageError
				if !errors.As(err, &usageError) {
					t.Fatalf("expected *UsageError, got %v", err)
				}
				if usageError.Usage() != usageLine {
					t.Fatalf("unexpected usage %q", usageError.Usage())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInvocation error: %v", err)
			}
			if invocation != testCase.expectedInvocation {
				t.Fatalf("expected %+v, got %+v", testCase.expectedInvocation, invocation)
			}
		})
	}
}

func TestInvocationResolveTop(t *testing.T) {
	t.Parallel()

	if top := (Invocation{}).ResolveTop(10); top != 10 {
		t.Fatalf("expected default 10, got %d", top)
	}
	if top := (Invocation{Top: 0, TopProvided: true}).ResolveTop(10); top != 0 {
		t.Fatalf("expected explicit 0, got %d", top)
	}
}
