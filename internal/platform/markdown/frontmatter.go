package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// SplitFrontmatter separates a leading YAML frontmatter block from the
// markdown body. Content without an opening fence is all body; an
// opening fence without a closing one is an error rather than a guess.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	rest, found := strings.CutPrefix(content, fence)
	if !found {
		return map[string]any{}, content, nil
	}
	raw, body, found := strings.Cut(rest, "\n"+fence)
	if !found {
		return nil, "", fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return meta, body, nil
}

// RenderFrontmatter writes meta between fences and appends body,
// inserting a separating newline when the body does not start with one.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var b strings.Builder
	b.WriteString(fence)
	b.Write(raw)
	b.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(body)
	return b.String(), nil
}
