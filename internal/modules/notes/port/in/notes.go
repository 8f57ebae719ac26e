package in

import (
	"context"

	"inkwell/internal/modules/notes/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateNoteInput) (dto.NoteDetailOutput, error)
	Get(ctx context.Context, id string) (dto.NoteDetailOutput, error)
	Update(ctx context.Context, input dto.UpdateNoteInput) (dto.NoteDetailOutput, error)
	Delete(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (dto.NoteDetailOutput, error)
	List(ctx context.Context, input dto.ListNotesInput) ([]dto.NoteOutput, error)
	ImportFile(ctx context.Context, input dto.ImportFileInput) (dto.NoteDetailOutput, error)
	ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.NoteDetailOutput, error)
	Reindex(ctx context.Context) error
}
