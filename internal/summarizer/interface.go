package summarizer

import "context"

// Summarizer produces a summary of a formatted document guided by a free-form prompt.
// The prompt is passed through untouched.
type Summarizer interface {
	Summarize(ctx context.Context, document, prompt string) (string, error)
}
