package exporter

import "context"

// Document is one conversion result ready to be written out.
type Document struct {
	Title  string
	Body   string
	Prompt string
}

// Exporter writes documents to disk and returns the written path.
type Exporter interface {
	Export(ctx context.Context, doc Document) (string, error)
}
