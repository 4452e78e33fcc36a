// Package source loads raw caption text from user-selected files.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrFileRead marks any failure to open, read or decode a caption file.
var ErrFileRead = errors.New("file read failure")

// Extensions lists the caption file extensions offered to the user.
// Content is never validated against the extension.
var Extensions = []string{".srt", ".vtt"}

// Read opens path and returns its decoded text.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrFileRead, path, err)
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Decode reads r as UTF-8, honouring a UTF-8 or UTF-16 byte order mark.
// Invalid byte sequences are replaced with U+FFFD.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("%w: decode: %w", ErrFileRead, err)
	}
	return string(data), nil
}

// IsSubtitleFile reports whether path carries one of the supported extensions.
func IsSubtitleFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Title derives a document title from a caption file path.
func Title(path string) string {
	if path == "" {
		return "untitled"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
