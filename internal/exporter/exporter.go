package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
)

var unsafeName = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "")

// Export writes doc as <dir>/<title>.<format>.
func (e *implExporter) Export(ctx context.Context, doc Document) (string, error) {
	if strings.TrimSpace(doc.Body) == "" {
		return "", fmt.Errorf("nothing to export")
	}
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	title := unsafeName.Replace(strings.TrimSpace(doc.Title))
	if title == "" {
		title = "untitled"
	}
	path := filepath.Join(e.dir, title+"."+e.format)

	var err error
	switch e.format {
	case "docx":
		err = writeDocx(doc, path)
	case "md":
		err = os.WriteFile(path, []byte(markdown(doc)), 0644)
	default:
		err = os.WriteFile(path, []byte(reflow.WithPrompt(doc.Body, doc.Prompt)+"\n"), 0644)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Info(ctx, "Exported %d paragraphs to %s", len(reflow.Paragraphs(doc.Body)), path)
	return path, nil
}

func markdown(doc Document) string {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf("# %s\n\n%s\n", title, reflow.WithPrompt(doc.Body, doc.Prompt))
}
