// Package output renders analysis reports as raw text, JSON, XML or YAML.
package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/temirov/textstats/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	linesLabel      = "Lines:"
	wordsLabel      = "Words:"
	charactersLabel = "Characters:"
	tokensLabel     = "Tokens:"
	topHeaderFormat = "Top %d words:"
	wordLineFormat  = "  %-15s %d"

	unsupportedFormatMessage = "unsupported output format '%s'"
)

// RawOptions controls the raw text rendering.
type RawOptions struct {
	Colorize bool
}

// Render dispatches to the renderer registered for format.
func Render(report types.Report, format string, options RawOptions) (string, error) {
	switch strings.ToLower(format) {
	case types.FormatRaw, "":
		return RenderRaw(report, options), nil
	case types.FormatJSON:
		return RenderJSON(report)
	case types.FormatXML:
		return RenderXML(report)
	case types.FormatYAML:
		return RenderYAML(report)
	default:
		return "", fmt.Errorf(unsupportedFormatMessage, format)
	}
}

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case types.FormatRaw, types.FormatJSON, types.FormatXML, types.FormatYAML:
		return true
	default:
		return false
	}
}

// RenderRaw returns the human-readable report without a trailing newline.
// The ranking section is omitted entirely when the report has no ranked words.
func RenderRaw(report types.Report, options RawOptions) string {
	palette := newPalette(options.Colorize)
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("%s %d\n", palette.label(linesLabel), report.Lines))
	buffer.WriteString(fmt.Sprintf("%s %d\n", palette.label(wordsLabel), report.Words))
	buffer.WriteString(fmt.Sprintf("%s %d", palette.label(charactersLabel), report.Characters))
	if report.HasTokenEstimate() {
		buffer.WriteString(fmt.Sprintf("\n%s %d (%s)", palette.label(tokensLabel), report.Tokens, report.Model))
	}
	if !report.HasTopWords() {
		return buffer.String()
	}

	buffer.WriteString("\n\n")
	buffer.WriteString(palette.header(fmt.Sprintf(topHeaderFormat, len(report.TopWords))))
	for _, entry := range report.TopWords {
		buffer.WriteString("\n")
		buffer.WriteString(palette.word(fmt.Sprintf(wordLineFormat, entry.Word, entry.Count)))
	}
	return buffer.String()
}

// RenderJSON marshals the report as an indented JSON object.
func RenderJSON(report types.Report) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(report, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf("encode report as JSON: %w", jsonEncodeError)
	}
	return string(encoded), nil
}

// RenderXML marshals the report as an XML document.
func RenderXML(report types.Report) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(report, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", fmt.Errorf("encode report as XML: %w", xmlMarshalError)
	}
	return xmlHeader + string(encoded), nil
}

// RenderYAML marshals the report as a YAML document without a trailing newline.
func RenderYAML(report types.Report) (string, error) {
	encoded, yamlMarshalError := yaml.Marshal(report)
	if yamlMarshalError != nil {
		return "", fmt.Errorf("encode report as YAML: %w", yamlMarshalError)
	}
	return strings.TrimRight(string(encoded), "\n"), nil
}
