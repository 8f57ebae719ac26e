package usecase_test

import (
	"context"
	"testing"
	"time"

	editoradapter "inkwell/internal/modules/editor/adapter/out"
	"inkwell/internal/modules/editor/domain"
	"inkwell/internal/modules/editor/dto"
	editorout "inkwell/internal/modules/editor/port/out"
	"inkwell/internal/modules/editor/service"
	"inkwell/internal/modules/editor/usecase"
)

type fakeTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, fn func()) editorout.Timer {
	timer := &fakeTimer{fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

type recordingWriter struct {
	restored []domain.Snapshot
}

func (w *recordingWriter) ApplySnapshot(_ context.Context, _ string, snap domain.Snapshot) error {
	w.restored = append(w.restored, snap)
	return nil
}

// The walkthrough: a note holding {T, C} is edited to C1 and then to C2
// within the quiet interval, undone back to C, and redone to C2.
func TestEditUndoRedoWalkthrough(t *testing.T) {
	t.Parallel()
	store := editoradapter.NewMemoryHistoryStore()
	sched := &fakeScheduler{}
	writer := &recordingWriter{}
	uc := usecase.NewInteractor(service.NewEditorService(store, sched, writer, 0))
	ctx := context.Background()

	content := "C"
	apply := func(next string) func(context.Context) error {
		return func(context.Context) error {
			content = next
			return nil
		}
	}

	if err := uc.OnEdit(ctx, "doc1", dto.SnapshotInput{Title: "T", Content: "C"}, apply("C1")); err != nil {
		t.Fatalf("first edit: %v", err)
	}
	if got := store.History("doc1").Past; len(got) != 1 || got[0].Content != "C" {
		t.Fatalf("expected past [{T C}], got %+v", got)
	}

	if err := uc.OnEdit(ctx, "doc1", dto.SnapshotInput{Title: "T", Content: "C1"}, apply("C2")); err != nil {
		t.Fatalf("second edit: %v", err)
	}
	if got := store.History("doc1").Past; len(got) != 1 {
		t.Fatalf("expected the second edit to coalesce, got %d snapshots", len(got))
	}
	if content != "C2" {
		t.Fatalf("expected the buffer to hold C2, got %q", content)
	}

	snap, ok, err := uc.Undo(ctx, "doc1", dto.SnapshotInput{Title: "T", Content: content})
	if err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if snap.Content != "C" {
		t.Fatalf("expected undo to return C, got %q", snap.Content)
	}
	rec := store.History("doc1")
	if len(rec.Past) != 0 || len(rec.Future) != 1 || rec.Future[0].Content != "C2" {
		t.Fatalf("unexpected record after undo: %+v", rec)
	}
	if uc.CanUndo("doc1") || !uc.CanRedo("doc1") {
		t.Fatalf("expected only redo to be available after undo")
	}
	content = snap.Content

	snap, ok, err = uc.Redo(ctx, "doc1", dto.SnapshotInput{Title: "T", Content: content})
	if err != nil || !ok {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if snap.Content != "C2" {
		t.Fatalf("expected redo to return C2, got %q", snap.Content)
	}
	if len(writer.restored) != 2 {
		t.Fatalf("expected two restores through the writer, got %d", len(writer.restored))
	}

	status := uc.Status("doc1")
	if !status.CanUndo || status.CanRedo || status.PastDepth != 1 {
		t.Fatalf("unexpected status after the walkthrough: %+v", status)
	}
}

func TestStatusOnUnknownDocumentIsEmpty(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewEditorService(editoradapter.NewMemoryHistoryStore(), &fakeScheduler{}, &recordingWriter{}, 0))

	status := uc.Status("missing")
	if status.CanUndo || status.CanRedo || status.PastDepth != 0 || status.FutureDepth != 0 {
		t.Fatalf("expected an empty status, got %+v", status)
	}
}
