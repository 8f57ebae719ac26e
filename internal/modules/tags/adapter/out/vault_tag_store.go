package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tagsout "inkwell/internal/modules/tags/port/out"
)

type VaultTagStore struct {
	vaultPath string
}

func NewVaultTagStore(vaultPath string) tagsout.TagPageStore {
	return &VaultTagStore{vaultPath: vaultPath}
}

// AppendNoteLink adds one wikilink line to the tag's page, creating the
// page on first use. Lines are keyed by note id, so repeated syncs are
// no-ops.
func (s *VaultTagStore) AppendNoteLink(_ context.Context, tagSlug, tagName, noteTitle, noteID string) error {
	path := filepath.Join(s.vaultPath, "tags", tagSlug+".md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create tags dir: %w", err)
	}
	line := fmt.Sprintf("- [[%s]] (%s)", noteTitle, noteID)
	content := "# " + tagName + "\n\n## Notes\n"
	if b, err := os.ReadFile(path); err == nil {
		content = string(b)
	}
	if strings.Contains(content, "("+noteID+")") {
		return nil
	}
	if !strings.Contains(content, "## Notes") {
		content += "\n## Notes\n"
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write tag page: %w", err)
	}
	return nil
}
