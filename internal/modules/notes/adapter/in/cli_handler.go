package in

import (
	"context"

	"inkwell/internal/modules/notes/dto"
	notesin "inkwell/internal/modules/notes/port/in"
)

type CLIHandler struct {
	usecase notesin.Usecase
}

func NewCLIHandler(usecase notesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, title, content string, tags []string) (dto.NoteDetailOutput, error) {
	return h.usecase.Create(ctx, dto.CreateNoteInput{Title: title, Content: content, Tags: tags})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.NoteDetailOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Update(ctx context.Context, id, title, content string) (dto.NoteDetailOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateNoteInput{ID: id, Title: title, Content: content})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) ToggleFavorite(ctx context.Context, id string) (dto.NoteDetailOutput, error) {
	return h.usecase.ToggleFavorite(ctx, id)
}

func (h CLIHandler) List(ctx context.Context, search string, favoriteOnly bool, tag, sortBy, order string) ([]dto.NoteOutput, error) {
	return h.usecase.List(ctx, dto.ListNotesInput{
		Search:       search,
		FavoriteOnly: favoriteOnly,
		Tag:          tag,
		SortBy:       sortBy,
		Order:        order,
	})
}

func (h CLIHandler) ImportFile(ctx context.Context, path, title string, tags []string) (dto.NoteDetailOutput, error) {
	return h.usecase.ImportFile(ctx, dto.ImportFileInput{Path: path, Title: title, Tags: tags})
}

func (h CLIHandler) ImportPDF(ctx context.Context, path, title string, tags []string) (dto.NoteDetailOutput, error) {
	return h.usecase.ImportPDF(ctx, dto.ImportPDFInput{Path: path, Title: title, Tags: tags})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
