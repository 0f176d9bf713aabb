// Package tokenizer estimates how many LLM tokens the analyzed text occupies.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters.
type Config struct {
	Model string
}

// Factory builds a Counter for a configuration and reports the resolved model name.
type Factory func(cfg Config) (Counter, string, error)

const (
	defaultModel        = "gpt-4o"
	defaultEncodingName = "cl100k_base"
)

var knownEncodings = map[string]struct{}{
	"o200k_base":  {},
	"cl100k_base": {},
	"p50k_base":   {},
	"p50k_edit":   {},
	"r50k_base":   {},
}

// NewCounter returns a tiktoken Counter for the requested model or encoding name.
// Unknown models fall back to the cl100k_base encoding.
func NewCounter(cfg Config) (Counter, string, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	lowerModel := strings.ToLower(model)

	if _, isEncoding := knownEncodings[lowerModel]; isEncoding {
		encoding, err := tiktoken.GetEncoding(lowerModel)
		if err != nil {
			return nil, "", fmt.Errorf("initialize tokenizer encoding %s: %w", lowerModel, err)
		}
		return tiktokenCounter{encoding: encoding, name: lowerModel}, lowerModel, nil
	}

	encoding, err := tiktoken.EncodingForModel(lowerModel)
	if err == nil && encoding != nil {
		return tiktokenCounter{encoding: encoding, name: lowerModel}, model, nil
	}
	fallback, fallbackErr := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackErr != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer: %w", fallbackErr)
	}
	return tiktokenCounter{encoding: fallback, name: defaultEncodingName}, defaultEncodingName, nil
}
