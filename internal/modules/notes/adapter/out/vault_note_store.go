package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"inkwell/internal/modules/notes/domain"
	notesout "inkwell/internal/modules/notes/port/out"
	apperrors "inkwell/internal/platform/errors"
	"inkwell/internal/platform/markdown"
)

type VaultNoteStore struct {
	vaultPath string
	log       *zap.Logger
}

func NewVaultNoteStore(vaultPath string, log *zap.Logger) notesout.NoteStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &VaultNoteStore{vaultPath: vaultPath, log: log}
}

func (s *VaultNoteStore) Save(ctx context.Context, note domain.Note) (string, error) {
	notePath, err := s.resolvePath(ctx, note)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(notePath), 0o755); err != nil {
		return "", fmt.Errorf("create notes directory: %w", err)
	}
	rendered, err := markdown.RenderFrontmatter(toFrontmatter(note), note.Content)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write note markdown: %w", err)
	}
	s.log.Debug("note saved", zap.String("id", note.ID), zap.String("path", notePath))
	return notePath, nil
}

func (s *VaultNoteStore) FindByID(ctx context.Context, id string) (domain.Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	for _, note := range notes {
		if note.ID == id {
			return note, nil
		}
	}
	return domain.Note{}, apperrors.ErrNotFound
}

func (s *VaultNoteStore) List(_ context.Context) ([]domain.Note, error) {
	glob := filepath.Join(s.vaultPath, "notes", "*.md")
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("glob notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.Note, 0, len(matches))
	for _, path := range matches {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, splitErr)
		}
		// RenderFrontmatter writes one blank line after the closing
		// separator; drop it so content round-trips byte for byte.
		body = strings.TrimPrefix(body, "\n")
		note, convErr := fromFrontmatter(meta, body, path)
		if convErr != nil {
			return nil, fmt.Errorf("decode note %s: %w", path, convErr)
		}
		out = append(out, note)
	}
	return out, nil
}

func (s *VaultNoteStore) Delete(ctx context.Context, id string) error {
	note, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := os.Remove(note.Path); err != nil {
		return fmt.Errorf("remove note file: %w", err)
	}
	s.log.Info("note deleted", zap.String("id", id), zap.String("path", note.Path))
	return nil
}

// WriteIndex regenerates the managed listing in index.md at the vault
// root. Text outside the markers is left alone.
func (s *VaultNoteStore) WriteIndex(_ context.Context, notes []domain.Note) error {
	sorted := make([]domain.Note, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	lines := make([]string, 0, len(sorted))
	for _, note := range sorted {
		marker := ""
		if note.Favorite {
			marker = " ★"
		}
		lines = append(lines, fmt.Sprintf("- [[%s]] %s%s", note.Slug, note.Title, marker))
	}

	indexPath := filepath.Join(s.vaultPath, "index.md")
	body := "# Notes\n"
	if existing, err := os.ReadFile(indexPath); err == nil {
		body = string(existing)
	}
	body = markdown.ReplaceManagedBlock(body, domain.ManagedNotesStart, domain.ManagedNotesEnd, strings.Join(lines, "\n"))
	if err := os.WriteFile(indexPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write index.md: %w", err)
	}
	return nil
}

// resolvePath keeps a note on its original file across renames and
// steps aside when another note already owns the slug.
func (s *VaultNoteStore) resolvePath(ctx context.Context, note domain.Note) (string, error) {
	if existing, err := s.FindByID(ctx, note.ID); err == nil {
		return existing.Path, nil
	}
	notePath := filepath.Join(s.vaultPath, "notes", note.Slug+".md")
	if raw, err := os.ReadFile(notePath); err == nil {
		meta, _, splitErr := markdown.SplitFrontmatter(string(raw))
		if splitErr == nil && asString(meta["id"]) != note.ID {
			suffix := note.ID
			if len(suffix) > 8 {
				suffix = suffix[:8]
			}
			notePath = filepath.Join(s.vaultPath, "notes", note.Slug+"-"+suffix+".md")
		}
	}
	return notePath, nil
}

func toFrontmatter(note domain.Note) map[string]any {
	return map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             note.ID,
		"title":          note.Title,
		"favorite":       note.Favorite,
		"tags":           note.Tags,
		"created_at":     note.CreatedAt.Format(time.RFC3339),
		"updated_at":     note.UpdatedAt.Format(time.RFC3339),
	}
}

func fromFrontmatter(meta map[string]any, body, notePath string) (domain.Note, error) {
	note := domain.Note{
		ID:       asString(meta["id"]),
		Title:    asString(meta["title"]),
		Content:  body,
		Favorite: asBool(meta["favorite"]),
		Tags:     asStringSlice(meta["tags"]),
		Path:     notePath,
	}
	note.Slug = strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath))
	note.CreatedAt = asTime(meta["created_at"])
	note.UpdatedAt = asTime(meta["updated_at"])
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// asTime accepts both quoted RFC3339 strings and the time.Time values
// yaml produces for unquoted timestamps in hand-edited files.
func asTime(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x.UTC()
	case string:
		parsed, _ := time.Parse(time.RFC3339, x)
		return parsed
	default:
		return time.Time{}
	}
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true"
	default:
		return false
	}
}

func asStringSlice(v any) []string {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			out = append(out, asString(item))
		}
		return out
	default:
		return nil
	}
}
