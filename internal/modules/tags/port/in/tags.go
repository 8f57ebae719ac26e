package in

import (
	"context"

	"inkwell/internal/modules/tags/dto"
)

type SyncNoteInput struct {
	NoteID    string
	NoteTitle string
	Tags      []string
}

type Usecase interface {
	// SyncNote makes the tag pages and the edge projection reflect the
	// note's current tag set. An empty set clears the note's edges.
	SyncNote(ctx context.Context, input SyncNoteInput) error
	RemoveNote(ctx context.Context, noteID string) error
	ListTags(ctx context.Context, limit int) ([]dto.TagOutput, error)
	NotesWithTag(ctx context.Context, tagSlug string) ([]dto.TaggedNoteOutput, error)
	Related(ctx context.Context, noteID string) ([]dto.RelatedNoteOutput, error)
}
