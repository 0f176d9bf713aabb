// Package input reads the text to analyze from a named file or standard input.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	standardInputName = "standard input"
	readFailedFormat  = "read %s: %w"
)

var lineEndingNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Error reports a failure to open or read the input source.
type Error struct {
	Source string
	Err    error
}

func (inputError *Error) Error() string {
	return inputError.Err.Error()
}

func (inputError *Error) Unwrap() error {
	return inputError.Err
}

// ReadText returns the full decoded content of the file at path, or of
// standardInput when path is empty. Bytes that are not valid UTF-8 are dropped and
// line endings are normalized to "\n".
func ReadText(path string, standardInput io.Reader) (string, error) {
	if path == "" {
		return decode(standardInput, standardInputName)
	}
	return readFile(path)
}

func readFile(path string) (text string, err error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return "", &Error{Source: path, Err: openError}
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil && err == nil {
			text = ""
			err = &Error{Source: path, Err: closeError}
		}
	}()
	return decode(fileHandle, path)
}

func decode(source io.Reader, sourceName string) (string, error) {
	if source == nil {
		return "", nil
	}
	content, readError := io.ReadAll(transform.NewReader(source, invalidSequenceRemover{}))
	if readError != nil {
		return "", &Error{Source: sourceName, Err: describeReadError(sourceName, readError)}
	}
	return lineEndingNormalizer.Replace(string(content)), nil
}

// describeReadError keeps *fs.PathError values as they are since they already name the file.
func describeReadError(sourceName string, readError error) error {
	var pathError *fs.PathError
	if errors.As(readError, &pathError) {
		return readError
	}
	return fmt.Errorf(readFailedFormat, sourceName, readError)
}

// invalidSequenceRemover copies well-formed UTF-8 and skips every byte that
// does not start a valid sequence. Encoded U+FFFD characters are kept.
type invalidSequenceRemover struct {
	transform.NopResetter
}

func (invalidSequenceRemover) Transform(destination, source []byte, atEOF bool) (destinationWritten int, sourceRead int, err error) {
	for sourceRead < len(source) {
		if source[sourceRead] < utf8.RuneSelf {
			if destinationWritten >= len(destination) {
				return destinationWritten, sourceRead, transform.ErrShortDst
			}
			destination[destinationWritten] = source[sourceRead]
			destinationWritten++
			sourceRead++
			continue
		}
		if !atEOF && !utf8.FullRune(source[sourceRead:]) {
			return destinationWritten, sourceRead, transform.ErrShortSrc
		}
		value, width := utf8.DecodeRune(source[sourceRead:])
		if value == utf8.RuneError && width == 1 {
			sourceRead++
			continue
		}
		if destinationWritten+width > len(destination) {
			return destinationWritten, sourceRead, transform.ErrShortDst
		}
		copy(destination[destinationWritten:], source[sourceRead:sourceRead+width])
		destinationWritten += width
		sourceRead += width
	}
	return destinationWritten, sourceRead, nil
}
