package usecase_test

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	exportadapter "inkwell/internal/modules/export/adapter/out"
	exportin "inkwell/internal/modules/export/port/in"
	"inkwell/internal/modules/export/service"
	"inkwell/internal/modules/export/usecase"
	notesadapter "inkwell/internal/modules/notes/adapter/out"
	notesdto "inkwell/internal/modules/notes/dto"
	notesin "inkwell/internal/modules/notes/port/in"
	notesservice "inkwell/internal/modules/notes/service"
	notesusecase "inkwell/internal/modules/notes/usecase"
	tagsdto "inkwell/internal/modules/tags/dto"
	tagsin "inkwell/internal/modules/tags/port/in"
	apperrors "inkwell/internal/platform/errors"
)

type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// fixedClock keeps archive names deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type seqIDs struct {
	n int
}

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("note-%02d", g.n)
}

type noopTags struct{}

func (noopTags) SyncNote(context.Context, tagsin.SyncNoteInput) error { return nil }

func (noopTags) RemoveNote(context.Context, string) error { return nil }

func (noopTags) ListTags(context.Context, int) ([]tagsdto.TagOutput, error) { return nil, nil }

func (noopTags) NotesWithTag(context.Context, string) ([]tagsdto.TaggedNoteOutput, error) {
	return nil, nil
}

func (noopTags) Related(context.Context, string) ([]tagsdto.RelatedNoteOutput, error) {
	return nil, nil
}

func newExportUsecase(t *testing.T) (exportin.Usecase, notesin.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	index, err := notesadapter.NewSQLiteNoteIndex(filepath.Join(dir, ".inkwell", "inkwell.db"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	notesSvc := notesservice.NewNoteService(
		&tickingClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		&seqIDs{},
		notesadapter.NewVaultNoteStore(dir, nil),
		index,
		notesadapter.NewOSFileReader(),
		notesadapter.NewLocalPDFExtractor(),
	)
	notesUC := notesusecase.NewInteractor(notesSvc, noopTags{})

	exportsDir := filepath.Join(dir, "exports")
	svc := service.NewExportService(
		fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		exportadapter.NewOSSink(exportsDir, nil),
	)
	return usecase.NewInteractor(svc, notesUC), notesUC, exportsDir
}

func mustCreate(t *testing.T, notes notesin.Usecase, title, content string) notesdto.NoteDetailOutput {
	t.Helper()
	note, err := notes.Create(context.Background(), notesdto.CreateNoteInput{Title: title, Content: content})
	if err != nil {
		t.Fatalf("create %s: %v", title, err)
	}
	return note
}

func TestExportNoteMarkdownKeepsContentVerbatim(t *testing.T) {
	t.Parallel()
	uc, notes, exportsDir := newExportUsecase(t)
	ctx := context.Background()

	content := "# Heading\n\nBody with `code` and a [[wiki link]].\n"
	note := mustCreate(t, notes, "Raw Export", content)

	out, err := uc.ExportNote(ctx, note.ID, "markdown")
	if err != nil {
		t.Fatalf("export note: %v", err)
	}
	if out.Path != filepath.Join(exportsDir, "raw-export.md") {
		t.Fatalf("unexpected export path %s", out.Path)
	}
	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != content {
		t.Fatalf("markdown export altered content:\n%s", data)
	}
}

func TestExportNoteHTMLRendersAndEscapes(t *testing.T) {
	t.Parallel()
	uc, notes, _ := newExportUsecase(t)
	ctx := context.Background()

	content := strings.Join([]string{
		"# Plan",
		"",
		"| Step | Done |",
		"| --- | --- |",
		"| render | yes |",
		"",
		"~~abandoned~~ idea",
		"",
		"<script>alert(1)</script>",
	}, "\n")
	note := mustCreate(t, notes, "Q3 <Plan> & Notes", content)

	out, err := uc.ExportNote(ctx, note.ID, "html")
	if err != nil {
		t.Fatalf("export note: %v", err)
	}
	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	page := string(data)

	if !strings.HasPrefix(page, "<!doctype html>") {
		t.Fatalf("expected full html page, got:\n%s", page)
	}
	if !strings.Contains(page, "<title>Q3 &lt;Plan&gt; &amp; Notes</title>") {
		t.Fatalf("expected escaped title, got:\n%s", page)
	}
	if !strings.Contains(page, "<table>") {
		t.Fatalf("expected table extension output, got:\n%s", page)
	}
	if !strings.Contains(page, "<del>abandoned</del>") {
		t.Fatalf("expected strikethrough output, got:\n%s", page)
	}
	if strings.Contains(page, "<script>") {
		t.Fatalf("raw html must stay escaped, got:\n%s", page)
	}
}

func TestExportAllWritesEveryNote(t *testing.T) {
	t.Parallel()
	uc, notes, exportsDir := newExportUsecase(t)
	ctx := context.Background()

	mustCreate(t, notes, "Zeta", "z")
	mustCreate(t, notes, "Alpha", "a")

	outputs, err := uc.ExportAll(ctx, "markdown")
	if err != nil {
		t.Fatalf("export all: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(outputs))
	}
	if filepath.Base(outputs[0].Path) != "alpha.md" || filepath.Base(outputs[1].Path) != "zeta.md" {
		t.Fatalf("expected title order, got %v", outputs)
	}
	for _, out := range outputs {
		if _, err := os.Stat(out.Path); err != nil {
			t.Fatalf("missing export %s: %v", out.Path, err)
		}
	}
	entries, err := os.ReadDir(exportsDir)
	if err != nil {
		t.Fatalf("read exports dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 files in exports dir, got %d", len(entries))
	}
}

func TestExportArchiveBundlesMarkdownAndHTML(t *testing.T) {
	t.Parallel()
	uc, notes, exportsDir := newExportUsecase(t)
	ctx := context.Background()

	mustCreate(t, notes, "First Note", "first body")
	mustCreate(t, notes, "Second Note", "second body")

	out, err := uc.ExportArchive(ctx)
	if err != nil {
		t.Fatalf("export archive: %v", err)
	}
	if out.Path != filepath.Join(exportsDir, "vault-20250601-120000.zip") {
		t.Fatalf("unexpected archive path %s", out.Path)
	}

	reader, err := zip.OpenReader(out.Path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer reader.Close()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		names = append(names, file.Name)
	}
	sort.Strings(names)
	want := []string{"first-note.html", "first-note.md", "second-note.html", "second-note.md"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}

	entry, err := reader.Open("first-note.md")
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer entry.Close()
	data, err := io.ReadAll(entry)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(data) != "first body" {
		t.Fatalf("unexpected entry content %q", data)
	}
}

func TestExportValidation(t *testing.T) {
	t.Parallel()
	uc, notes, _ := newExportUsecase(t)
	ctx := context.Background()

	note := mustCreate(t, notes, "Only Note", "body")

	if _, err := uc.ExportNote(ctx, note.ID, "docx"); !errors.Is(err, apperrors.ErrInvalidInput) || !strings.Contains(err.Error(), "unknown export format") {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := uc.ExportAll(ctx, ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := uc.ExportNote(ctx, "missing", "markdown"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
