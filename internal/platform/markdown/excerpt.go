package markdown

import "strings"

// Excerpt returns the first content line of a markdown body, skipping
// headings, blank lines and code fences, truncated to max runes.
func Excerpt(body string, max int) string {
	if max <= 0 {
		return ""
	}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, ">-*+ \t"))
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > max {
			return string(runes[:max-1]) + "…"
		}
		return line
	}
	return ""
}
