package domain

// Snapshot is an immutable capture of a document's editable fields.
type Snapshot struct {
	Title   string
	Content string
}

// MaxDepth bounds each history stack. Pushing past it drops the oldest
// undo entry. The redo stack can never outgrow it because undo and redo
// only move entries between the two stacks.
const MaxDepth = 100

// HistoryRecord holds one document's undo and redo stacks. Past is
// ordered oldest first, Future soonest-redo first.
type HistoryRecord struct {
	Past   []Snapshot
	Future []Snapshot
}

func (r *HistoryRecord) CanUndo() bool {
	return len(r.Past) > 0
}

func (r *HistoryRecord) CanRedo() bool {
	return len(r.Future) > 0
}
