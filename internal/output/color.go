package output

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/temirov/textstats/internal/types"
)

// ShouldColorize resolves a color mode for writer. In auto mode only terminals get color.
func ShouldColorize(writer io.Writer, mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case types.ColorAlways:
		return true
	case types.ColorNever:
		return false
	}
	fileHandle, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fileHandle.Fd()) || isatty.IsCygwinTerminal(fileHandle.Fd())
}

// IsSupportedColorMode reports whether mode is auto, always or never.
func IsSupportedColorMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case types.ColorAuto, types.ColorAlways, types.ColorNever, "":
		return true
	default:
		return false
	}
}

type palette struct {
	label  func(string) string
	header func(string) string
	word   func(string) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{label: plain, header: plain, word: plain}
	}
	return palette{
		label:  colorFunc(color.FgCyan),
		header: colorFunc(color.FgYellow, color.Bold),
		word:   colorFunc(color.FgGreen),
	}
}

func colorFunc(attributes ...color.Attribute) func(string) string {
	colorizer := color.New(attributes...)
	colorizer.EnableColor()
	return func(text string) string {
		return colorizer.Sprint(text)
	}
}

func plain(text string) string {
	return text
}
