package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// converter is safe for concurrent use. Raw HTML in the source is
// dropped from the output; exports render untrusted note content.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

func RenderHTML(source string) (string, error) {
	buf := bytes.Buffer{}
	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
