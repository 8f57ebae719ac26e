package out

import (
	"context"
	"time"

	"inkwell/internal/modules/editor/domain"
)

// HistoryStore keeps per-document edit history for the life of the
// process. Implementations need no locking; the service serializes all
// access.
type HistoryStore interface {
	// History returns the live record for documentID, creating an empty
	// one when absent.
	History(documentID string) *domain.HistoryRecord
	// PushPast appends snap to the past stack, dropping the oldest entry
	// beyond domain.MaxDepth, and clears the future stack. This is the
	// only operation that clears redo state.
	PushPast(documentID string, snap domain.Snapshot)
	// RemoveHistory forgets documentID. Idempotent.
	RemoveHistory(documentID string)
}

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler defers callbacks by the typing quiet interval.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// DocumentWriter persists a restored snapshot to the owning document.
type DocumentWriter interface {
	ApplySnapshot(ctx context.Context, documentID string, snap domain.Snapshot) error
}
