package usecase

import (
	"context"

	"inkwell/internal/modules/tags/domain"
	"inkwell/internal/modules/tags/dto"
	tagsin "inkwell/internal/modules/tags/port/in"
	"inkwell/internal/modules/tags/service"
)

type Interactor struct {
	svc *service.TagService
}

func NewInteractor(svc *service.TagService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) SyncNote(ctx context.Context, input tagsin.SyncNoteInput) error {
	return i.svc.SyncNote(ctx, input.NoteID, input.NoteTitle, input.Tags)
}

func (i *Interactor) RemoveNote(ctx context.Context, noteID string) error {
	return i.svc.RemoveNote(ctx, noteID)
}

func (i *Interactor) ListTags(ctx context.Context, limit int) ([]dto.TagOutput, error) {
	tags, err := i.svc.ListTags(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagOutput, 0, len(tags))
	for _, tag := range tags {
		out = append(out, dto.TagOutput{Slug: tag.Slug, Name: tag.Name, NoteCount: tag.NoteCount})
	}
	return out, nil
}

func (i *Interactor) NotesWithTag(ctx context.Context, tagSlug string) ([]dto.TaggedNoteOutput, error) {
	notes, err := i.svc.NotesWithTag(ctx, tagSlug)
	if err != nil {
		return nil, err
	}
	return toTaggedNotes(notes), nil
}

func (i *Interactor) Related(ctx context.Context, noteID string) ([]dto.RelatedNoteOutput, error) {
	related, err := i.svc.Related(ctx, noteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RelatedNoteOutput, 0, len(related))
	for _, item := range related {
		out = append(out, dto.RelatedNoteOutput{
			NoteID:   item.NoteID,
			Title:    item.Title,
			Distance: item.Distance,
			Via:      item.Via,
		})
	}
	return out, nil
}

func toTaggedNotes(notes []domain.TaggedNote) []dto.TaggedNoteOutput {
	out := make([]dto.TaggedNoteOutput, 0, len(notes))
	for _, note := range notes {
		out = append(out, dto.TaggedNoteOutput{NoteID: note.NoteID, Title: note.Title})
	}
	return out
}
