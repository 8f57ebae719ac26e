package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	notesadapter "inkwell/internal/modules/notes/adapter/out"
	"inkwell/internal/modules/notes/domain"
	notesout "inkwell/internal/modules/notes/port/out"
)

func newStore(t *testing.T) (notesout.NoteStore, string) {
	t.Helper()
	dir := t.TempDir()
	return notesadapter.NewVaultNoteStore(dir, nil), dir
}

func sampleNote(id, slugName, title, content string) domain.Note {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Note{
		ID:        id,
		Slug:      slugName,
		Title:     title,
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestSaveKeepsFileAcrossRenames(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	note := sampleNote("id-1", "go-patterns", "Go Patterns", "v1")
	first, err := store.Save(ctx, note)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	note.Title = "Renamed"
	note.Slug = "renamed"
	note.Content = "v2"
	second, err := store.Save(ctx, note)
	if err != nil {
		t.Fatalf("save renamed: %v", err)
	}
	if second != first {
		t.Fatalf("expected rename to reuse %s, got %s", first, second)
	}

	files, err := filepath.Glob(filepath.Join(dir, "notes", "*.md"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected a single note file, got %v", files)
	}

	loaded, err := store.FindByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.Title != "Renamed" || loaded.Content != "v2" {
		t.Fatalf("expected updated fields, got %+v", loaded)
	}
	if loaded.Slug != "go-patterns" {
		t.Fatalf("slug must follow the file name, got %s", loaded.Slug)
	}
}

func TestSaveSidestepsSlugCollision(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	if _, err := store.Save(ctx, sampleNote("aaaa1111-0001", "todo", "Todo", "first")); err != nil {
		t.Fatalf("save first: %v", err)
	}
	path, err := store.Save(ctx, sampleNote("bbbb2222-0002", "todo", "Todo", "second"))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if filepath.Base(path) != "todo-bbbb2222.md" {
		t.Fatalf("expected id suffix on colliding slug, got %s", filepath.Base(path))
	}

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected both notes kept, got %d", len(notes))
	}
}

func TestContentRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	content := "# Heading\n\n- item one\n- item two\n\n```go\nfmt.Println(\"hi\")\n```"
	if _, err := store.Save(ctx, sampleNote("id-1", "round-trip", "Round Trip", content)); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.FindByID(ctx, "id-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if loaded.Content != content {
		t.Fatalf("content changed across save/load:\n%q\nvs\n%q", content, loaded.Content)
	}
	if !loaded.CreatedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("created_at changed across save/load: %v", loaded.CreatedAt)
	}

	if _, err := store.Save(ctx, sampleNote("id-2", "empty", "Empty", "")); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	empty, err := store.FindByID(ctx, "id-2")
	if err != nil {
		t.Fatalf("find empty: %v", err)
	}
	if empty.Content != "" {
		t.Fatalf("expected empty content to round-trip, got %q", empty.Content)
	}
}

func TestWriteIndexPreservesSurroundingText(t *testing.T) {
	store, dir := newStore(t)
	ctx := context.Background()

	indexPath := filepath.Join(dir, "index.md")
	if err := os.WriteFile(indexPath, []byte("# My Vault\n\nKept intro.\n"), 0o644); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	alpha := sampleNote("id-1", "alpha", "Alpha", "")
	alpha.Favorite = true
	beta := sampleNote("id-2", "beta", "Beta", "")
	if err := store.WriteIndex(ctx, []domain.Note{beta, alpha}); err != nil {
		t.Fatalf("write index: %v", err)
	}

	raw, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Kept intro.") {
		t.Fatalf("expected surrounding text kept, got:\n%s", content)
	}
	alphaLine := strings.Index(content, "- [[alpha]] Alpha ★")
	betaLine := strings.Index(content, "- [[beta]] Beta")
	if alphaLine < 0 || betaLine < 0 || alphaLine > betaLine {
		t.Fatalf("expected sorted link lines, got:\n%s", content)
	}

	if err := store.WriteIndex(ctx, []domain.Note{beta}); err != nil {
		t.Fatalf("rewrite index: %v", err)
	}
	raw, err = os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("reread index: %v", err)
	}
	content = string(raw)
	if strings.Contains(content, "[[alpha]]") {
		t.Fatalf("expected alpha dropped from regenerated block, got:\n%s", content)
	}
	if got := strings.Count(content, domain.ManagedNotesStart); got != 1 {
		t.Fatalf("expected a single managed block, found %d markers", got)
	}
}
