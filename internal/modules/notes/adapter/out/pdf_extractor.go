package out

import (
	"context"
	"fmt"
	"strings"

	notesout "inkwell/internal/modules/notes/port/out"
	"rsc.io/pdf"
)

type LocalPDFExtractor struct{}

func NewLocalPDFExtractor() notesout.PDFExtractor {
	return &LocalPDFExtractor{}
}

// Extract pulls the text of every page, one paragraph per page.
func (e *LocalPDFExtractor) Extract(_ context.Context, path string) (string, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	pages := make([]string, 0, total)
	for number := 1; number <= total; number++ {
		page := doc.Page(number)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		parts := make([]string, 0, len(content.Text))
		for _, text := range content.Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			parts = append(parts, text.S)
		}
		if len(parts) == 0 {
			continue
		}
		pages = append(pages, strings.Join(parts, " "))
	}
	return strings.Join(pages, "\n\n"), nil
}
