package slug

import "strings"

// Make lowercases input and collapses every run of characters outside
// [a-z0-9] into a single hyphen. Slugs name vault files and tags, so
// the result is never empty.
func Make(input string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(input) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
