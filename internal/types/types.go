// Package types defines every cross‑package data structure used by the textstats CLI.
package types

import "encoding/xml"

const (
	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// WordCount is one ranked entry of the top words section.
type WordCount struct {
	Word  string `json:"word" xml:"word" yaml:"word"`
	Count int    `json:"count" xml:"count" yaml:"count"`
}

// Report is the result of one analysis pass over the input text.
type Report struct {
	XMLName    xml.Name    `json:"-" xml:"report" yaml:"-"`
	Lines      int         `json:"lines" xml:"lines" yaml:"lines"`
	Words      int         `json:"words" xml:"words" yaml:"words"`
	Characters int         `json:"characters" xml:"characters" yaml:"characters"`
	Tokens     int         `json:"tokens,omitempty" xml:"tokens,omitempty" yaml:"tokens,omitempty"`
	Model      string      `json:"model,omitempty" xml:"model,omitempty" yaml:"model,omitempty"`
	TopWords   []WordCount `json:"topWords,omitempty" xml:"topWords>entry,omitempty" yaml:"topWords,omitempty"`
}

// HasTopWords reports whether the ranking section should be rendered.
func (report Report) HasTopWords() bool {
	return len(report.TopWords) > 0
}

// HasTokenEstimate reports whether a tokenizer estimate was attached.
func (report Report) HasTokenEstimate() bool {
	return report.Model != ""
}
