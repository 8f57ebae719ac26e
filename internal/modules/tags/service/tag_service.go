package service

import (
	"context"
	"strings"

	"inkwell/internal/modules/tags/domain"
	tagsout "inkwell/internal/modules/tags/port/out"
	"inkwell/internal/platform/slug"
	"inkwell/internal/platform/tx"
)

// RelatedDepth is how many shared-tag hops the Related search walks.
const RelatedDepth = 2

type TagService struct {
	pages     tagsout.TagPageStore
	projector tagsout.EdgeProjector
	txm       tx.Manager
}

func NewTagService(pages tagsout.TagPageStore, projector tagsout.EdgeProjector, txm tx.Manager) *TagService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &TagService{pages: pages, projector: projector, txm: txm}
}

func (s *TagService) SyncNote(ctx context.Context, noteID, noteTitle string, tags []string) error {
	edges := make([]domain.Edge, 0, len(tags))
	return s.txm.Within(ctx, func(ctx context.Context) error {
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			tagSlug := slug.Make(tag)
			if err := s.pages.AppendNoteLink(ctx, tagSlug, tag, noteTitle, noteID); err != nil {
				return err
			}
			edges = append(edges, domain.Edge{
				NoteID:    noteID,
				NoteTitle: noteTitle,
				TagSlug:   tagSlug,
				TagName:   tag,
			})
		}
		return s.projector.ReplaceNoteEdges(ctx, noteID, edges)
	})
}

func (s *TagService) RemoveNote(ctx context.Context, noteID string) error {
	return s.projector.RemoveNote(ctx, noteID)
}

func (s *TagService) ListTags(ctx context.Context, limit int) ([]domain.TagSummary, error) {
	return s.projector.ListTags(ctx, limit)
}

func (s *TagService) NotesWithTag(ctx context.Context, tagSlug string) ([]domain.TaggedNote, error) {
	tagSlug = strings.TrimSpace(tagSlug)
	if tagSlug == "" {
		return []domain.TaggedNote{}, nil
	}
	return s.projector.NotesWithTag(ctx, tagSlug)
}

func (s *TagService) Related(ctx context.Context, noteID string) ([]domain.RelatedNote, error) {
	noteID = strings.TrimSpace(noteID)
	if noteID == "" {
		return []domain.RelatedNote{}, nil
	}
	return s.projector.Related(ctx, noteID, RelatedDepth)
}
