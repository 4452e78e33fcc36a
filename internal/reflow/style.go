package reflow

import (
	"fmt"
	"strings"
)

// Style selects how paragraphs are laid out in the output document.
type Style int

const (
	StyleMarkdown Style = iota
	StyleIndented
)

const indent = "    "

func (s Style) String() string {
	switch s {
	case StyleMarkdown:
		return "Markdown"
	case StyleIndented:
		return "Indented"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Toggle returns the other style.
func (s Style) Toggle() Style {
	if s == StyleIndented {
		return StyleMarkdown
	}
	return StyleIndented
}

// ParseStyle accepts "markdown", "indented" or "indented text", case-insensitive.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return StyleMarkdown, nil
	case "indented", "indented text":
		return StyleIndented, nil
	default:
		return StyleMarkdown, fmt.Errorf("unknown output style %q", s)
	}
}

func (s Style) format(paragraph string) string {
	if s == StyleIndented {
		return indent + paragraph
	}
	return paragraph
}
