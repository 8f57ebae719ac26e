package out

import (
	"context"

	"inkwell/internal/modules/tags/domain"
)

type TagPageStore interface {
	AppendNoteLink(ctx context.Context, tagSlug, tagName, noteTitle, noteID string) error
}

type EdgeProjector interface {
	// ReplaceNoteEdges swaps the note's edge set atomically.
	ReplaceNoteEdges(ctx context.Context, noteID string, edges []domain.Edge) error
	RemoveNote(ctx context.Context, noteID string) error
	ListTags(ctx context.Context, limit int) ([]domain.TagSummary, error)
	NotesWithTag(ctx context.Context, tagSlug string) ([]domain.TaggedNote, error)
	Related(ctx context.Context, noteID string, depth int) ([]domain.RelatedNote, error)
}
