package usecase

import (
	"context"

	"inkwell/internal/modules/notes/domain"
	"inkwell/internal/modules/notes/dto"
	notesin "inkwell/internal/modules/notes/port/in"
	"inkwell/internal/modules/notes/service"
	tagsin "inkwell/internal/modules/tags/port/in"
	"inkwell/internal/platform/slug"
)

type Interactor struct {
	svc  *service.NoteService
	tags tagsin.Usecase
}

func NewInteractor(svc *service.NoteService, tags tagsin.Usecase) notesin.Usecase {
	return &Interactor{svc: svc, tags: tags}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateNoteInput) (dto.NoteDetailOutput, error) {
	note, err := i.svc.Create(ctx, input.Title, input.Content, input.Tags)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.syncTags(ctx, note)
	return toDetail(note), nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.NoteDetailOutput, error) {
	note, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	return toDetail(note), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateNoteInput) (dto.NoteDetailOutput, error) {
	note, err := i.svc.Update(ctx, input.ID, input.Title, input.Content)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.syncTags(ctx, note)
	return toDetail(note), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	if err := i.svc.Delete(ctx, id); err != nil {
		return err
	}
	if i.tags != nil {
		_ = i.tags.RemoveNote(ctx, id)
	}
	return nil
}

func (i *Interactor) ToggleFavorite(ctx context.Context, id string) (dto.NoteDetailOutput, error) {
	note, err := i.svc.ToggleFavorite(ctx, id)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	return toDetail(note), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListNotesInput) ([]dto.NoteOutput, error) {
	query := domain.ListQuery{
		Search:       input.Search,
		FavoriteOnly: input.FavoriteOnly,
		SortBy:       domain.SortField(input.SortBy),
		Order:        domain.SortOrder(input.Order),
	}
	if input.Tag != "" && i.tags != nil {
		tagged, err := i.tags.NotesWithTag(ctx, slug.Make(input.Tag))
		if err != nil {
			return nil, err
		}
		if len(tagged) == 0 {
			return []dto.NoteOutput{}, nil
		}
		ids := make([]string, 0, len(tagged))
		for _, member := range tagged {
			ids = append(ids, member.NoteID)
		}
		query.IDs = ids
	}
	notes, err := i.svc.List(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, dto.NoteOutput{
			ID:        note.ID,
			Slug:      note.Slug,
			Title:     note.Title,
			Excerpt:   note.Excerpt(),
			Favorite:  note.Favorite,
			UpdatedAt: note.UpdatedAt,
		})
	}
	return out, nil
}

func (i *Interactor) ImportFile(ctx context.Context, input dto.ImportFileInput) (dto.NoteDetailOutput, error) {
	note, err := i.svc.ImportFile(ctx, input.Path, input.Title, input.Tags)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.syncTags(ctx, note)
	return toDetail(note), nil
}

func (i *Interactor) ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.NoteDetailOutput, error) {
	note, err := i.svc.ImportPDF(ctx, input.Path, input.Title, input.Tags)
	if err != nil {
		return dto.NoteDetailOutput{}, err
	}
	i.syncTags(ctx, note)
	return toDetail(note), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	notes, err := i.svc.Reindex(ctx)
	if err != nil {
		return err
	}
	for _, note := range notes {
		i.syncTags(ctx, note)
	}
	return nil
}

func (i *Interactor) syncTags(ctx context.Context, note domain.Note) {
	if i.tags == nil {
		return
	}
	_ = i.tags.SyncNote(ctx, tagsin.SyncNoteInput{
		NoteID:    note.ID,
		NoteTitle: note.Title,
		Tags:      note.Tags,
	})
}

func toDetail(note domain.Note) dto.NoteDetailOutput {
	return dto.NoteDetailOutput{
		ID:        note.ID,
		Slug:      note.Slug,
		Title:     note.Title,
		Content:   note.Content,
		Favorite:  note.Favorite,
		Tags:      note.Tags,
		Path:      note.Path,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
