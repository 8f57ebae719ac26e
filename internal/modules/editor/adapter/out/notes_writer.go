package out

import (
	"context"

	"inkwell/internal/modules/editor/domain"
	notesdto "inkwell/internal/modules/notes/dto"
	notesin "inkwell/internal/modules/notes/port/in"
)

// NotesWriterAdapter lets the editor core restore snapshots through the
// notes module without reaching into its internals.
type NotesWriterAdapter struct {
	notes notesin.Usecase
}

func NewNotesWriterAdapter(notes notesin.Usecase) NotesWriterAdapter {
	return NotesWriterAdapter{notes: notes}
}

func (a NotesWriterAdapter) ApplySnapshot(ctx context.Context, documentID string, snap domain.Snapshot) error {
	_, err := a.notes.Update(ctx, notesdto.UpdateNoteInput{
		ID:      documentID,
		Title:   snap.Title,
		Content: snap.Content,
	})
	return err
}
