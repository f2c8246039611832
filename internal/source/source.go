// Package source reads practice text from disk.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotFile is returned when the practice path is missing or not a regular file.
var ErrNotFile = errors.New("practice file does not exist")

// Options controls how file contents are prepared for practice.
type Options struct {
	KeepTrailingNewline bool
}

// Load reads the practice text at path. Line endings are normalized to "\n" and
// a single trailing newline is removed unless opts.KeepTrailingNewline is set.
func Load(path string, opts Options) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFile, path)
		}
		return "", fmt.Errorf("failed to stat practice file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read practice file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("practice file is not valid UTF-8: %s", path)
	}
	return Normalize(string(data), opts), nil
}

// Normalize converts CRLF and CR line endings to LF and trims one trailing newline.
func Normalize(text string, opts Options) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimPrefix(text, "\ufeff")
	if !opts.KeepTrailingNewline {
		text = strings.TrimSuffix(text, "\n")
	}
	return text
}
