package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"html"

	"inkwell/internal/modules/export/domain"
	exportout "inkwell/internal/modules/export/port/out"
	"inkwell/internal/platform/clock"
	apperrors "inkwell/internal/platform/errors"
	"inkwell/internal/platform/markdown"
)

const archiveStamp = "20060102-150405"

type ExportService struct {
	clock clock.Clock
	sink  exportout.Sink
}

func NewExportService(clk clock.Clock, sink exportout.Sink) *ExportService {
	return &ExportService{clock: clk, sink: sink}
}

// ExportDocument renders one document in the given format and hands it to
// the sink under <slug><ext>.
func (s *ExportService) ExportDocument(ctx context.Context, doc domain.Document, format domain.Format) (string, error) {
	if err := format.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := doc.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	payload, err := render(doc, format)
	if err != nil {
		return "", err
	}
	return s.sink.Write(ctx, doc.Slug+format.Ext(), payload)
}

// ExportArchive bundles every document, raw markdown plus rendered HTML,
// into one timestamped zip.
func (s *ExportService) ExportArchive(ctx context.Context, docs []domain.Document) (string, error) {
	buf := bytes.Buffer{}
	zw := zip.NewWriter(&buf)
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return "", err
		}
		for _, format := range []domain.Format{domain.FormatMarkdown, domain.FormatHTML} {
			payload, err := render(doc, format)
			if err != nil {
				return "", err
			}
			entry, err := zw.Create(doc.Slug + format.Ext())
			if err != nil {
				return "", fmt.Errorf("add archive entry: %w", err)
			}
			if _, err := entry.Write(payload); err != nil {
				return "", fmt.Errorf("write archive entry: %w", err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}

	name := fmt.Sprintf("vault-%s.zip", s.clock.Now().Format(archiveStamp))
	return s.sink.Write(ctx, name, buf.Bytes())
}

func render(doc domain.Document, format domain.Format) ([]byte, error) {
	if format == domain.FormatMarkdown {
		return []byte(doc.Content), nil
	}
	body, err := markdown.RenderHTML(doc.Content)
	if err != nil {
		return nil, err
	}
	return []byte(htmlPage(doc.Title, body)), nil
}

func htmlPage(title, body string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(title), body)
}
