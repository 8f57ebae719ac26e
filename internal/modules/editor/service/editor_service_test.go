package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	editoradapter "inkwell/internal/modules/editor/adapter/out"
	"inkwell/internal/modules/editor/domain"
	editorout "inkwell/internal/modules/editor/port/out"
	"inkwell/internal/modules/editor/service"
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

// fire runs the latest armed timer the way the runtime would after the
// quiet interval, unless it was cancelled.
func (s *fakeScheduler) fire() {
	if len(s.timers) == 0 {
		return
	}
	timer := s.timers[len(s.timers)-1]
	if timer.stopped || timer.fired {
		return
	}
	timer.fired = true
	timer.fn()
}

type applied struct {
	documentID string
	snap       domain.Snapshot
}

type fakeWriter struct {
	applied []applied
	err     error
}

func (w *fakeWriter) ApplySnapshot(_ context.Context, documentID string, snap domain.Snapshot) error {
	if w.err != nil {
		return w.err
	}
	w.applied = append(w.applied, applied{documentID: documentID, snap: snap})
	return nil
}

func newService() (*service.EditorService, *editoradapter.MemoryHistoryStore, *fakeScheduler, *fakeWriter) {
	store := editoradapter.NewMemoryHistoryStore()
	sched := &fakeScheduler{}
	writer := &fakeWriter{}
	return service.NewEditorService(store, sched, writer, 0), store, sched, writer
}

func edit(t *testing.T, svc *service.EditorService, documentID string, before domain.Snapshot) {
	t.Helper()
	if err := svc.OnEdit(context.Background(), documentID, before, nil); err != nil {
		t.Fatalf("on edit: %v", err)
	}
}

func TestBurstCoalescesIntoOneUndoStep(t *testing.T) {
	t.Parallel()
	svc, store, _, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Title: "T", Content: "C"})
	edit(t, svc, "doc", domain.Snapshot{Title: "T", Content: "C1"})
	edit(t, svc, "doc", domain.Snapshot{Title: "T", Content: "C12"})

	rec := store.History("doc")
	if len(rec.Past) != 1 {
		t.Fatalf("expected one snapshot for the burst, got %d", len(rec.Past))
	}
	if rec.Past[0].Content != "C" {
		t.Fatalf("expected the pre-burst content, got %q", rec.Past[0].Content)
	}
}

func TestPauseSplitsSessions(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	sched.fire()
	edit(t, svc, "doc", domain.Snapshot{Content: "C1"})

	rec := store.History("doc")
	if len(rec.Past) != 2 {
		t.Fatalf("expected two snapshots after a pause, got %d", len(rec.Past))
	}
	if rec.Past[0].Content != "C" || rec.Past[1].Content != "C1" {
		t.Fatalf("unexpected past stack: %+v", rec.Past)
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	sched.fire()
	if _, ok, err := svc.Undo(context.Background(), "doc", domain.Snapshot{Content: "C1"}); err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if !svc.CanRedo("doc") {
		t.Fatalf("expected redo to be available after undo")
	}

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})

	if svc.CanRedo("doc") {
		t.Fatalf("expected a fresh edit to clear the redo stack")
	}
	if got := len(store.History("doc").Future); got != 0 {
		t.Fatalf("expected empty future stack, got %d entries", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	t.Parallel()
	svc, _, sched, writer := newService()

	edit(t, svc, "doc", domain.Snapshot{Title: "T", Content: "C"})
	sched.fire()

	snap, ok, err := svc.Undo(context.Background(), "doc", domain.Snapshot{Title: "T", Content: "C1"})
	if err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if snap.Content != "C" {
		t.Fatalf("expected undo to restore C, got %q", snap.Content)
	}

	snap, ok, err = svc.Redo(context.Background(), "doc", domain.Snapshot{Title: "T", Content: "C"})
	if err != nil || !ok {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if snap.Content != "C1" {
		t.Fatalf("expected redo to restore C1, got %q", snap.Content)
	}

	if len(writer.applied) != 2 {
		t.Fatalf("expected two writer applications, got %d", len(writer.applied))
	}
	if !svc.CanUndo("doc") || svc.CanRedo("doc") {
		t.Fatalf("expected undo available and redo empty after the round trip")
	}
}

func TestUndoRedoOnEmptyHistoryAreNoOps(t *testing.T) {
	t.Parallel()
	svc, _, _, writer := newService()

	if _, ok, err := svc.Undo(context.Background(), "doc", domain.Snapshot{}); err != nil || ok {
		t.Fatalf("expected undo no-op, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := svc.Redo(context.Background(), "doc", domain.Snapshot{}); err != nil || ok {
		t.Fatalf("expected redo no-op, got ok=%v err=%v", ok, err)
	}
	if len(writer.applied) != 0 {
		t.Fatalf("expected no writer calls, got %d", len(writer.applied))
	}
	if svc.CanUndo("doc") || svc.CanRedo("doc") {
		t.Fatalf("expected empty availability on a fresh document")
	}
}

func TestFocusChangeKeepsSnapshotAndSplitsSession(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	edit(t, svc, "a", domain.Snapshot{Content: "A"})
	svc.OnFocusChange("b")
	edit(t, svc, "b", domain.Snapshot{Content: "B"})
	sched.fire()
	edit(t, svc, "a", domain.Snapshot{Content: "A1"})

	if got := store.History("a").Past; len(got) != 2 || got[0].Content != "A" {
		t.Fatalf("unexpected history for document a: %+v", got)
	}
	if got := store.History("b").Past; len(got) != 1 || got[0].Content != "B" {
		t.Fatalf("unexpected history for document b: %+v", got)
	}
}

func TestDocumentDeletedPurgesHistory(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	sched.fire()
	svc.OnDocumentDeleted("doc")

	if svc.CanUndo("doc") || svc.CanRedo("doc") {
		t.Fatalf("expected no availability after deletion")
	}
	if got := store.History("doc"); len(got.Past) != 0 || len(got.Future) != 0 {
		t.Fatalf("expected empty record after deletion, got %+v", got)
	}
	svc.OnDocumentDeleted("doc")
}

func TestLateTimerFromReplacedSessionIsIgnored(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	first := sched.timers[0]
	// The first timer fires but its callback is still in flight when the
	// session is flushed and a new one begins.
	first.fired = true
	svc.OnFocusChange("doc")
	edit(t, svc, "doc", domain.Snapshot{Content: "C1"})
	first.fn()
	edit(t, svc, "doc", domain.Snapshot{Content: "C12"})

	rec := store.History("doc")
	if len(rec.Past) != 2 {
		t.Fatalf("expected the late callback to be ignored, got %d snapshots", len(rec.Past))
	}
}

func TestHistoryDepthIsBounded(t *testing.T) {
	t.Parallel()
	svc, store, sched, _ := newService()

	for i := 0; i < domain.MaxDepth+5; i++ {
		edit(t, svc, "doc", domain.Snapshot{Content: fmt.Sprintf("v%d", i)})
		sched.fire()
	}

	rec := store.History("doc")
	if len(rec.Past) != domain.MaxDepth {
		t.Fatalf("expected %d snapshots, got %d", domain.MaxDepth, len(rec.Past))
	}
	if rec.Past[0].Content != "v5" {
		t.Fatalf("expected the oldest snapshots to be dropped, got %q", rec.Past[0].Content)
	}
}

func TestCheckpointEndsSessionAndRecordsUndoPoint(t *testing.T) {
	t.Parallel()
	svc, store, _, _ := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	svc.Checkpoint("doc", domain.Snapshot{Content: "C1"})
	edit(t, svc, "doc", domain.Snapshot{Content: "transformed"})

	rec := store.History("doc")
	if len(rec.Past) != 3 {
		t.Fatalf("expected checkpoint to close the session, got %d snapshots", len(rec.Past))
	}
	if rec.Past[1].Content != "C1" {
		t.Fatalf("expected the checkpointed state, got %q", rec.Past[1].Content)
	}
}

func TestFailedRestoreLeavesHistoryUntouched(t *testing.T) {
	t.Parallel()
	svc, store, sched, writer := newService()

	edit(t, svc, "doc", domain.Snapshot{Content: "C"})
	sched.fire()
	writer.err = errors.New("disk full")

	if _, ok, err := svc.Undo(context.Background(), "doc", domain.Snapshot{Content: "C1"}); err == nil || ok {
		t.Fatalf("expected undo to fail, got ok=%v err=%v", ok, err)
	}
	rec := store.History("doc")
	if len(rec.Past) != 1 || len(rec.Future) != 0 {
		t.Fatalf("expected history unchanged after a failed restore, got %+v", rec)
	}
}

func TestApplyEditErrorPropagates(t *testing.T) {
	t.Parallel()
	svc, store, _, _ := newService()

	wantErr := errors.New("write failed")
	err := svc.OnEdit(context.Background(), "doc", domain.Snapshot{Content: "C"}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped apply error, got %v", err)
	}
	// The capture already happened; it still describes a real state.
	if got := len(store.History("doc").Past); got != 1 {
		t.Fatalf("expected the snapshot to remain, got %d", got)
	}
}
