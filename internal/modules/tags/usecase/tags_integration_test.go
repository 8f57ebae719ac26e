package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tagsadapter "inkwell/internal/modules/tags/adapter/out"
	tagsin "inkwell/internal/modules/tags/port/in"
	"inkwell/internal/modules/tags/service"
	"inkwell/internal/modules/tags/usecase"
)

func newTagsUsecase(t *testing.T) (*usecase.Interactor, string) {
	t.Helper()
	dir := t.TempDir()
	projector, err := tagsadapter.NewSQLiteEdgeProjector(filepath.Join(dir, ".inkwell", "inkwell.db"))
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	pages := tagsadapter.NewVaultTagStore(dir)
	svc := service.NewTagService(pages, projector, nil)
	return usecase.NewInteractor(svc), dir
}

func syncNote(t *testing.T, uc *usecase.Interactor, id, title string, tags ...string) {
	t.Helper()
	err := uc.SyncNote(context.Background(), tagsin.SyncNoteInput{NoteID: id, NoteTitle: title, Tags: tags})
	if err != nil {
		t.Fatalf("sync note %s: %v", id, err)
	}
}

func TestSyncNoteProjectsTagMembership(t *testing.T) {
	uc, _ := newTagsUsecase(t)
	ctx := context.Background()

	syncNote(t, uc, "n1", "Go Patterns", "go", "programming")
	syncNote(t, uc, "n2", "Go Concurrency", "go")
	syncNote(t, uc, "n3", "Cooking Basics", "cooking")

	tags, err := uc.ListTags(ctx, 0)
	if err != nil {
		t.Fatalf("list tags: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(tags))
	}
	if tags[0].Slug != "go" || tags[0].NoteCount != 2 {
		t.Fatalf("expected go with 2 notes first, got %+v", tags[0])
	}
	if tags[1].Slug != "cooking" || tags[2].Slug != "programming" {
		t.Fatalf("expected singleton tags ordered by slug, got %s then %s", tags[1].Slug, tags[2].Slug)
	}

	notes, err := uc.NotesWithTag(ctx, "go")
	if err != nil {
		t.Fatalf("notes with tag: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes tagged go, got %d", len(notes))
	}
	if notes[0].Title != "Go Concurrency" || notes[1].Title != "Go Patterns" {
		t.Fatalf("expected title order, got %s then %s", notes[0].Title, notes[1].Title)
	}

	none, err := uc.NotesWithTag(ctx, "unknown")
	if err != nil {
		t.Fatalf("notes with unknown tag: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no notes for unknown tag, got %d", len(none))
	}
}

func TestResyncReplacesNoteEdges(t *testing.T) {
	uc, _ := newTagsUsecase(t)
	ctx := context.Background()

	syncNote(t, uc, "n1", "Go Patterns", "go")
	syncNote(t, uc, "n1", "Go Patterns", "draft")

	goNotes, err := uc.NotesWithTag(ctx, "go")
	if err != nil {
		t.Fatalf("notes with tag: %v", err)
	}
	if len(goNotes) != 0 {
		t.Fatalf("expected go edges replaced, still %d", len(goNotes))
	}
	draftNotes, err := uc.NotesWithTag(ctx, "draft")
	if err != nil {
		t.Fatalf("notes with tag: %v", err)
	}
	if len(draftNotes) != 1 {
		t.Fatalf("expected 1 draft note, got %d", len(draftNotes))
	}

	syncNote(t, uc, "n1", "Go Patterns")
	draftNotes, err = uc.NotesWithTag(ctx, "draft")
	if err != nil {
		t.Fatalf("notes with tag: %v", err)
	}
	if len(draftNotes) != 0 {
		t.Fatalf("expected empty sync to clear edges, still %d", len(draftNotes))
	}
}

func TestRemoveNoteClearsMembership(t *testing.T) {
	uc, _ := newTagsUsecase(t)
	ctx := context.Background()

	syncNote(t, uc, "n1", "Go Patterns", "go")
	if err := uc.RemoveNote(ctx, "n1"); err != nil {
		t.Fatalf("remove note: %v", err)
	}

	notes, err := uc.NotesWithTag(ctx, "go")
	if err != nil {
		t.Fatalf("notes with tag: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes after removal, got %d", len(notes))
	}
}

func TestRelatedWalksSharedTags(t *testing.T) {
	uc, _ := newTagsUsecase(t)
	ctx := context.Background()

	syncNote(t, uc, "n1", "Go Patterns", "go", "programming")
	syncNote(t, uc, "n2", "Go Concurrency", "go")
	syncNote(t, uc, "n4", "Programming Tips", "programming")
	syncNote(t, uc, "n3", "Cooking Basics", "cooking")

	related, err := uc.Related(ctx, "n2")
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected 2 related notes, got %d", len(related))
	}
	if related[0].NoteID != "n1" || related[0].Distance != 1 || related[0].Via != "go" {
		t.Fatalf("expected n1 at distance 1 via go, got %+v", related[0])
	}
	if related[1].NoteID != "n4" || related[1].Distance != 2 || related[1].Via != "programming" {
		t.Fatalf("expected n4 at distance 2 via programming, got %+v", related[1])
	}

	none, err := uc.Related(ctx, "missing")
	if err != nil {
		t.Fatalf("related for unknown note: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no related notes for unknown note, got %d", len(none))
	}
}

func TestSyncNoteWritesTagPages(t *testing.T) {
	uc, dir := newTagsUsecase(t)

	syncNote(t, uc, "n1", "Go Patterns", "go")
	syncNote(t, uc, "n1", "Go Patterns", "go")

	raw, err := os.ReadFile(filepath.Join(dir, "tags", "go.md"))
	if err != nil {
		t.Fatalf("read tag page: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "# go") {
		t.Fatalf("expected tag heading, got:\n%s", content)
	}
	if !strings.Contains(content, "## Notes") {
		t.Fatalf("expected notes section, got:\n%s", content)
	}
	if got := strings.Count(content, "- [[Go Patterns]] (n1)"); got != 1 {
		t.Fatalf("expected exactly one link line, got %d in:\n%s", got, content)
	}
}
