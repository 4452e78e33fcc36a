package converter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
	"github.com/nguyentantai21042004/caption-prose/internal/source"
)

// Convert reflows req.Text and, when a prompt is present, asks the summarizer for a summary.
// Empty text yields reflow.NoContentMessage as the document together with reflow.ErrNoContent.
func (c *implConverter) Convert(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()

	doc, err := reflow.Reflow(req.Text, req.Style)
	if err != nil {
		if errors.Is(err, reflow.ErrNoContent) {
			c.logger.Info(ctx, "Conversion skipped: no content")
			return Result{Document: reflow.NoContentMessage}, err
		}
		return Result{}, fmt.Errorf("reflow: %w", err)
	}

	result := Result{
		Document:   doc,
		Paragraphs: len(reflow.Paragraphs(doc)),
	}
	c.logger.Info(ctx, "Reflowed %d bytes into %d paragraphs (%s)", len(req.Text), result.Paragraphs, req.Style)

	if req.Prompt != "" && c.summarizer != nil {
		summary, err := c.summarizer.Summarize(ctx, doc, req.Prompt)
		if err != nil {
			c.logger.Warn(ctx, "Summary failed: %v", err)
		} else {
			result.Summary = summary
		}
	}

	c.logger.Debug(ctx, "Conversion finished in %s", time.Since(startTime))
	return result, nil
}

// Load reads a caption file. Failures wrap source.ErrFileRead.
func (c *implConverter) Load(ctx context.Context, path string) (string, error) {
	if !source.IsSubtitleFile(path) {
		c.logger.Warn(ctx, "Loading %s: extension is not .srt or .vtt", path)
	}

	text, err := source.Read(path)
	if err != nil {
		c.logger.Error(ctx, "Failed to load %s: %v", path, err)
		return "", err
	}

	c.logger.Info(ctx, "Loaded %s (%d bytes)", path, len(text))
	return text, nil
}
