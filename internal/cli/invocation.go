package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/temirov/textstats/internal/utils"
)

const (
	topArgument            = "--top"
	argumentsSynopsis      = "[--top N] [file]"
	usageLine              = "Usage: " + utils.ApplicationName + " " + argumentsSynopsis
	missingTopValueMessage = "missing value for --top"
	invalidTopValueMessage = "invalid value for --top: %q is not a non-negative integer"
)

// UsageError reports a malformed command line. It maps to exit status 2.
type UsageError struct {
	Reason string
}

func (usageError *UsageError) Error() string {
	return usageError.Reason
}

// Usage returns the single-line usage text printed alongside the error.
func (usageError *UsageError) Usage() string {
	return usageLine
}

// Invocation is the resolved command line: an optional input path and the ranking size.
type Invocation struct {
	Path        string
	Top         int
	TopProvided bool
}

// ParseInvocation resolves arguments of the form [--top N] [file].
// --top is only recognized as the first argument; arguments after the path are ignored.
func ParseInvocation(arguments []string) (Invocation, error) {
	var invocation Invocation
	remaining := arguments
	if len(remaining) > 0 && remaining[0] == topArgument {
		if len(remaining) < 2 {
			return Invocation{}, &UsageError{Reason: missingTopValueMessage}
		}
		topValue, ok := parseTopValue(remaining[1])
		if !ok {
			return Invocation{}, &UsageError{Reason: fmt.Sprintf(invalidTopValueMessage, remaining[1])}
		}
		invocation.Top = topValue
		invocation.TopProvided = true
		remaining = remaining[2:]
	}
	if len(remaining) > 0 {
		invocation.Path = remaining[0]
	}
	return invocation, nil
}

// ResolveTop returns the explicit --top value or defaultTop when the flag was absent.
func (invocation Invocation) ResolveTop(defaultTop int) int {
	if invocation.TopProvided {
		return invocation.Top
	}
	return defaultTop
}

// parseTopValue accepts ASCII digit strings only. Values beyond the int range clamp to math.MaxInt.
func parseTopValue(literal string) (int, bool) {
	if literal == "" {
		return 0, false
	}
	for index := 0; index < len(literal); index++ {
		if literal[index] < '0' || literal[index] > '9' {
			return 0, false
		}
	}
	parsed, parseError := strconv.Atoi(literal)
	if parseError != nil {
		if errors.Is(parseError, strconv.ErrRange) {
			return math.MaxInt, true
		}
		return 0, false
	}
	return parsed, true
}
