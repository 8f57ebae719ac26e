package in

import (
	"context"

	"inkwell/internal/modules/editor/dto"
)

type Usecase interface {
	// OnEdit must be called for every change event on a document. It
	// records before as an undo point when the edit opens a new typing
	// session, then applies the edit through fn.
	OnEdit(ctx context.Context, documentID string, before dto.SnapshotInput, fn func(context.Context) error) error
	// Undo restores the latest undo point. current is the document state
	// at the moment of the command; it becomes redoable. Reports false
	// when there is nothing to undo.
	Undo(ctx context.Context, documentID string, current dto.SnapshotInput) (dto.SnapshotOutput, bool, error)
	// Redo reverses the latest Undo. Reports false when there is nothing
	// to redo.
	Redo(ctx context.Context, documentID string, current dto.SnapshotInput) (dto.SnapshotOutput, bool, error)
	CanUndo(documentID string) bool
	CanRedo(documentID string) bool
	Status(documentID string) dto.HistoryStatusOutput
	// Checkpoint ends any open typing session and records current as an
	// undo point. Assist transforms call it before applying a result.
	Checkpoint(documentID string, current dto.SnapshotInput)
	// OnFocusChange must be called when the edited document changes.
	OnFocusChange(documentID string)
	// OnDocumentDeleted must be called after a document is removed.
	OnDocumentDeleted(documentID string)
}
