// Package analysis computes line, word and character statistics and ranks word frequencies.
package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/temirov/textstats/internal/types"
)

const newlineCharacter = "\n"

// Analyze computes the report for text keeping at most top ranked words.
// A non-positive top yields an empty ranking.
func Analyze(text string, top int) types.Report {
	tokens := Tokenize(text)
	frequencies := CountFrequencies(tokens)
	return types.Report{
		Lines:      CountLines(text),
		Words:      len(tokens),
		Characters: utf8.RuneCountInString(text),
		TopWords:   frequencies.Top(top),
	}
}

// CountLines returns the number of newline characters plus one for an unterminated final line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	lineCount := strings.Count(text, newlineCharacter)
	if !strings.HasSuffix(text, newlineCharacter) {
		lineCount++
	}
	return lineCount
}

// Tokenize extracts maximal runs of ASCII letters and digits, lower-cased, in order of appearance.
func Tokenize(text string) []string {
	var tokens []string
	tokenStart := -1
	for index := 0; index < len(text); index++ {
		if isWordByte(text[index]) {
			if tokenStart < 0 {
				tokenStart = index
			}
			continue
		}
		if tokenStart >= 0 {
			tokens = append(tokens, strings.ToLower(text[tokenStart:index]))
			tokenStart = -1
		}
	}
	if tokenStart >= 0 {
		tokens = append(tokens, strings.ToLower(text[tokenStart:]))
	}
	return tokens
}

// isWordByte reports whether the byte is an ASCII letter or digit.
// Multi-byte UTF-8 sequences never match since every byte of them is >= 0x80.
func isWordByte(value byte) bool {
	switch {
	case value >= 'a' && value <= 'z':
		return true
	case value >= 'A' && value <= 'Z':
		return true
	case value >= '0' && value <= '9':
		return true
	default:
		return false
	}
}

// FrequencyTable maps distinct tokens to occurrence counts and remembers first-seen order.
type FrequencyTable struct {
	order  []string
	counts map[string]int
}

// CountFrequencies builds a FrequencyTable from a token sequence in a single scan.
func CountFrequencies(tokens []string) *FrequencyTable {
	table := &FrequencyTable{counts: make(map[string]int)}
	for _, token := range tokens {
		table.Add(token)
	}
	return table
}

// Add records one occurrence of token.
func (table *FrequencyTable) Add(token string) {
	if _, seen := table.counts[token]; !seen {
		table.order = append(table.order, token)
	}
	table.counts[token]++
}

// Count returns the occurrences recorded for token.
func (table *FrequencyTable) Count(token string) int {
	return table.counts[token]
}

// Len returns the number of distinct tokens.
func (table *FrequencyTable) Len() int {
	return len(table.order)
}

// Total returns the sum of all counts.
func (table *FrequencyTable) Total() int {
	total := 0
	for _, count := range table.counts {
		total += count
	}
	return total
}

// Top returns up to limit entries by descending count. Equal counts keep first-seen order.
func (table *FrequencyTable) Top(limit int) []types.WordCount {
	if limit <= 0 || len(table.order) == 0 {
		return nil
	}
	ranked := make([]types.WordCount, 0, len(table.order))
	for _, token := range table.order {
		ranked = append(ranked, types.WordCount{Word: token, Count: table.counts[token]})
	}
	sort.SliceStable(ranked, func(left, right int) bool {
		return ranked[left].Count > ranked[right].Count
	})
	if limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
