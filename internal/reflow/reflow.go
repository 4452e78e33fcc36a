// Package reflow turns line-oriented caption text into prose paragraphs.
package reflow

import (
	"errors"
	"regexp"
	"strings"
)

// NoContentMessage is what callers show in place of a document when ErrNoContent is returned.
const NoContentMessage = "No content provided"

const timingMarker = "-->"

// ErrNoContent is returned by Reflow when the input is empty.
var ErrNoContent = errors.New("no content provided")

var reIndex = regexp.MustCompile(`^\d+$`)

// LineKind classifies a single line of caption source.
type LineKind int

const (
	LineText LineKind = iota
	LineBlank
	LineIndex
	LineTiming
)

// Classify reports the kind of a caption line. The line is trimmed first.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case reIndex.MatchString(trimmed):
		return LineIndex
	case strings.Contains(trimmed, timingMarker):
		return LineTiming
	default:
		return LineText
	}
}

// Reflow converts raw caption text into a formatted document in the given style.
// Index, timing and blank lines are dropped; consecutive text lines are joined
// with single spaces into one paragraph. A paragraph ends when the line after a
// text line is blank, a timing line, or missing.
func Reflow(raw string, style Style) (string, error) {
	if raw == "" {
		return "", ErrNoContent
	}

	lines := strings.Split(raw, "\n")

	var doc, current strings.Builder
	for i, line := range lines {
		if Classify(line) != LineText {
			continue
		}

		current.WriteString(strings.TrimSpace(line))
		current.WriteByte(' ')

		if endsParagraph(lines, i+1) {
			doc.WriteString(style.format(strings.TrimSpace(current.String())))
			doc.WriteString("\n\n")
			current.Reset()
		}
	}

	return strings.TrimRight(doc.String(), " \t\r\n"), nil
}

func endsParagraph(lines []string, next int) bool {
	if next >= len(lines) {
		return true
	}
	trimmed := strings.TrimSpace(lines[next])
	return trimmed == "" || strings.Contains(trimmed, timingMarker)
}

// Paragraphs splits a formatted document back into its paragraphs,
// keeping any leading indentation.
func Paragraphs(doc string) []string {
	var out []string
	for _, p := range strings.Split(doc, "\n\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, strings.TrimRight(p, "\n"))
	}
	return out
}

// WithPrompt appends prompt to doc separated by a blank line. An empty prompt leaves doc unchanged.
func WithPrompt(doc, prompt string) string {
	if prompt == "" {
		return doc
	}
	return doc + "\n\n" + prompt
}
