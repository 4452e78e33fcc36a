package converter

import (
	"context"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
)

// Request is one conversion of raw caption text.
type Request struct {
	Text   string
	Prompt string
	Style  reflow.Style
}

// Result carries the formatted document and the optional summary.
type Result struct {
	Document   string
	Summary    string
	Paragraphs int
}

// Converter defines the caption-to-prose operations the UI drives.
type Converter interface {
	Convert(ctx context.Context, req Request) (Result, error)
	Load(ctx context.Context, path string) (string, error)
}
