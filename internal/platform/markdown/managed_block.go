package markdown

import "strings"

// ReplaceManagedBlock swaps the text between startMarker and endMarker
// for generated, keeping everything outside the pair. A body without
// the markers gets the block appended after a blank line.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	block := startMarker + "\n" + generated + "\n" + endMarker

	if start := strings.Index(body, startMarker); start >= 0 {
		if end := strings.Index(body, endMarker); end > start {
			return body[:start] + block + body[end+len(endMarker):]
		}
	}

	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}
