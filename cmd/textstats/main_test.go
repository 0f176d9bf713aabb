package main_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type commandResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// #nosec G204
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binaryName := "textstats_integration_test_binary"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(t.TempDir(), binaryName)

	buildCommand := exec.Command("go", "build", "-o", binaryPath, ".")
	outputData, buildErr := buildCommand.CombinedOutput()
	if buildErr != nil {
		t.Fatalf("failed to build binary: %v\nbuild output:\n%s", buildErr, string(outputData))
	}
	return binaryPath
}

// #nosec G204
func runBinary(t *testing.T, binaryPath string, workingDirectory string, standardInput string, arguments ...string) commandResult {
	t.Helper()
	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = append(os.Environ(), "HOME="+t.TempDir())
	command.Stdin = strings.NewReader(standardInput)

	var standardOutputBuffer, standardErrorBuffer bytes.Buffer
	command.Stdout = &standardOutputBuffer
	command.Stderr = &standardErrorBuffer

	result := commandResult{}
	if runError := command.Run(); runError != nil {
		var exitError *exec.ExitError
		if !errors.As(runError, &exitError) {
			t.Fatalf("failed to run %s: %v", binaryPath, runError)
		}
		result.exitCode = exitError.ExitCode()
	}
	result.stdout = standardOutputBuffer.String()
	result.stderr = standardErrorBuffer.String()
	return result
}

func TestTextstatsBinary(t *testing.T) {
	binaryPath := buildBinary(t)
	workingDirectory := t.TempDir()
	inputPath := filepath.Join(workingDirectory, "notes.txt")
	if err := os.WriteFile(inputPath, []byte("Hello hello world\nworld world\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	testCases := []struct {
		name             string
		arguments        []string
		standardInput    string
		expectedExitCode int
		expectedStdout   string
		stderrFragment   string
	}{
		{
			name:             "file report",
			arguments:        []string{"--top", "2", "notes.txt"},
			expectedExitCode: 0,
			expectedStdout:   "Lines: 2\nWords: 5\nCharacters: 30\n\nTop 2 words:\n  world           3\n  hello           2\n",
		},
		{
			name:             "standard input",
			arguments:        []string{"--top", "0"},
			standardInput:    "one two",
			expectedExitCode: 0,
			expectedStdout:   "Lines: 1\nWords: 2\nCharacters: 7\n",
		},
		{
			name:             "malformed top",
			arguments:        []string{"--top", "abc", "notes.txt"},
			expectedExitCode: 2,
			expectedStdout:   "",
			stderrFragment:   "Usage: textstats [--top N] [file]",
		},
		{
			name:             "missing file",
			arguments:        []string{"absent.txt"},
			expectedExitCode: 1,
			expectedStdout:   "",
			stderrFragment:   "absent.txt",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := runBinary(t, binaryPath, workingDirectory, testCase.standardInput, testCase.arguments...)
			if result.exitCode != testCase.expectedExitCode {
				t.Fatalf("expected exit code %d, got %d (stderr: %s)", testCase.expectedExitCode, result.exitCode, result.stderr)
			}
			if result.stdout != testCase.expectedStdout {
				t.Fatalf("expected stdout %q, got %q", testCase.expectedStdout, result.stdout)
			}
			if testCase.stderrFragment != "" && !strings.Contains(result.stderr, testCase.stderrFragment) {
				t.Fatalf("expected %q in stderr, got %q", testCase.stderrFragment, result.stderr)
			}
		})
	}
}
