package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inkwell/internal/modules/editor/domain"
	editorout "inkwell/internal/modules/editor/port/out"
)

// QuietInterval is how long typing must pause before the open session
// ends and the next edit starts a new undo step.
const QuietInterval = 1000 * time.Millisecond

// EditorService owns the undo/redo rules: one history record per
// document, at most one pending typing session at a time, the pre-edit
// snapshot captured once at session start.
//
// Every method runs to completion under one mutex so the rules hold
// whether calls come from the TUI event loop, CLI commands, or the
// timer goroutine. Collaborators invoked while it is held (the writer,
// edit closures) must not call back into the service.
type EditorService struct {
	mu     sync.Mutex
	store  editorout.HistoryStore
	sched  editorout.Scheduler
	writer editorout.DocumentWriter
	quiet  time.Duration

	pending editorout.Timer
	gen     uint64
}

func NewEditorService(store editorout.HistoryStore, sched editorout.Scheduler, writer editorout.DocumentWriter, quiet time.Duration) *EditorService {
	if quiet <= 0 {
		quiet = QuietInterval
	}
	return &EditorService{store: store, sched: sched, writer: writer, quiet: quiet}
}

// OnEdit handles one change event on the focused document. When no
// session is pending it pushes before as the undo point for the burst
// that starts here. The quiet-interval timer is always replaced, then
// the edit itself is applied through fn.
func (s *EditorService) OnEdit(ctx context.Context, documentID string, before domain.Snapshot, fn func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		s.store.PushPast(documentID, before)
	} else {
		s.pending.Stop()
	}
	s.gen++
	gen := s.gen
	s.pending = s.sched.AfterFunc(s.quiet, func() { s.expire(gen) })

	if fn == nil {
		return nil
	}
	if err := fn(ctx); err != nil {
		return fmt.Errorf("apply edit: %w", err)
	}
	return nil
}

// expire ends the typing session the timer was armed for. A replaced
// timer can already have fired and be waiting on the mutex; the
// generation check keeps it from ending a newer session.
func (s *EditorService) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.pending = nil
	}
}

// Undo restores the latest undo point, moving the caller's current state
// onto the redo stack. Reports false when the past stack is empty. A
// writer failure leaves history exactly as it was.
func (s *EditorService) Undo(ctx context.Context, documentID string, current domain.Snapshot) (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()

	rec := s.store.History(documentID)
	if !rec.CanUndo() {
		return domain.Snapshot{}, false, nil
	}
	snap := rec.Past[len(rec.Past)-1]
	if err := s.writer.ApplySnapshot(ctx, documentID, snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("restore undo snapshot: %w", err)
	}
	rec.Past = rec.Past[:len(rec.Past)-1]
	rec.Future = append([]domain.Snapshot{current}, rec.Future...)
	return snap, true, nil
}

// Redo reverses the latest Undo, moving the caller's current state back
// onto the undo stack. Reports false when the future stack is empty.
func (s *EditorService) Redo(ctx context.Context, documentID string, current domain.Snapshot) (domain.Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()

	rec := s.store.History(documentID)
	if !rec.CanRedo() {
		return domain.Snapshot{}, false, nil
	}
	snap := rec.Future[0]
	if err := s.writer.ApplySnapshot(ctx, documentID, snap); err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("restore redo snapshot: %w", err)
	}
	rec.Future = rec.Future[1:]
	rec.Past = append(rec.Past, current)
	return snap, true, nil
}

func (s *EditorService) CanUndo(documentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.History(documentID).CanUndo()
}

func (s *EditorService) CanRedo(documentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.History(documentID).CanRedo()
}

// Depths reports the undo and redo stack sizes for status displays.
func (s *EditorService) Depths(documentID string) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.store.History(documentID)
	return len(rec.Past), len(rec.Future)
}

// Checkpoint ends any open typing session and records current as an
// undo point. Assist transforms call it before applying their result so
// the pre-transform state is always one undo away.
func (s *EditorService) Checkpoint(documentID string, current domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
	s.store.PushPast(documentID, current)
}

// OnFocusChange abandons the pending typing session. A snapshot already
// pushed for the previous document stays valid.
func (s *EditorService) OnFocusChange(_ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

// OnDocumentDeleted drops all history for documentID.
func (s *EditorService) OnDocumentDeleted(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.RemoveHistory(documentID)
}

// flushLocked cancels the pending timer, closing the open typing
// session immediately. Callers hold s.mu.
func (s *EditorService) flushLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}
