package domain

import "fmt"

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

func (f Format) Validate() error {
	switch f {
	case FormatMarkdown, FormatHTML:
		return nil
	default:
		return fmt.Errorf("unknown export format: %s", f)
	}
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

// Document is a note reduced to what an export needs.
type Document struct {
	Slug    string
	Title   string
	Content string
}

func (d Document) Validate() error {
	if d.Slug == "" {
		return fmt.Errorf("document slug is required")
	}
	if d.Title == "" {
		return fmt.Errorf("document title is required")
	}
	return nil
}
