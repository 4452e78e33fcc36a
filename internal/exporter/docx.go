package exporter

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/caption-prose/internal/reflow"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// writeDocx lays out one Word paragraph per prose paragraph under a bold title.
func writeDocx(doc Document, outputPath string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = "untitled"
	}
	addRun(d.AddParagraph(""), title, true, titleSize)

	for _, para := range reflow.Paragraphs(doc.Body) {
		addRun(d.AddParagraph(""), para, false, fontSize)
	}

	if doc.Prompt != "" {
		addRun(d.AddParagraph(""), doc.Prompt, false, fontSize)
	}

	return d.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
