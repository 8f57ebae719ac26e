package usecase

import (
	"context"
	"fmt"

	"inkwell/internal/modules/export/domain"
	"inkwell/internal/modules/export/dto"
	"inkwell/internal/modules/export/service"
	notesdto "inkwell/internal/modules/notes/dto"
	notesin "inkwell/internal/modules/notes/port/in"
	apperrors "inkwell/internal/platform/errors"
)

type Interactor struct {
	svc   *service.ExportService
	notes notesin.Usecase
}

func NewInteractor(svc *service.ExportService, notes notesin.Usecase) *Interactor {
	return &Interactor{svc: svc, notes: notes}
}

func (i *Interactor) ExportNote(ctx context.Context, noteID, format string) (dto.ExportFileOutput, error) {
	f := domain.Format(format)
	if err := f.Validate(); err != nil {
		return dto.ExportFileOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	note, err := i.notes.Get(ctx, noteID)
	if err != nil {
		return dto.ExportFileOutput{}, err
	}
	path, err := i.svc.ExportDocument(ctx, toDocument(note), f)
	if err != nil {
		return dto.ExportFileOutput{}, err
	}
	return dto.ExportFileOutput{NoteID: note.ID, Path: path}, nil
}

func (i *Interactor) ExportAll(ctx context.Context, format string) ([]dto.ExportFileOutput, error) {
	f := domain.Format(format)
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	docs, ids, err := i.collect(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.ExportFileOutput, 0, len(docs))
	for idx, doc := range docs {
		path, err := i.svc.ExportDocument(ctx, doc, f)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, dto.ExportFileOutput{NoteID: ids[idx], Path: path})
	}
	return outputs, nil
}

func (i *Interactor) ExportArchive(ctx context.Context) (dto.ExportFileOutput, error) {
	docs, _, err := i.collect(ctx)
	if err != nil {
		return dto.ExportFileOutput{}, err
	}
	path, err := i.svc.ExportArchive(ctx, docs)
	if err != nil {
		return dto.ExportFileOutput{}, err
	}
	return dto.ExportFileOutput{Path: path}, nil
}

// collect pulls full note bodies for every indexed note, sorted by title so
// export order is stable.
func (i *Interactor) collect(ctx context.Context) ([]domain.Document, []string, error) {
	listed, err := i.notes.List(ctx, notesdto.ListNotesInput{SortBy: "title", Order: "asc"})
	if err != nil {
		return nil, nil, err
	}
	docs := make([]domain.Document, 0, len(listed))
	ids := make([]string, 0, len(listed))
	for _, item := range listed {
		note, err := i.notes.Get(ctx, item.ID)
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, toDocument(note))
		ids = append(ids, note.ID)
	}
	return docs, ids, nil
}

func toDocument(note notesdto.NoteDetailOutput) domain.Document {
	return domain.Document{
		Slug:    note.Slug,
		Title:   note.Title,
		Content: note.Content,
	}
}
