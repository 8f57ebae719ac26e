package in

import (
	"context"

	"inkwell/internal/modules/tags/dto"
	tagsin "inkwell/internal/modules/tags/port/in"
)

type CLIHandler struct {
	uc tagsin.Usecase
}

func NewCLIHandler(uc tagsin.Usecase) CLIHandler {
	return CLIHandler{uc: uc}
}

func (h CLIHandler) ListTags(ctx context.Context, limit int) ([]dto.TagOutput, error) {
	return h.uc.ListTags(ctx, limit)
}

func (h CLIHandler) NotesWithTag(ctx context.Context, tagSlug string) ([]dto.TaggedNoteOutput, error) {
	return h.uc.NotesWithTag(ctx, tagSlug)
}

func (h CLIHandler) Related(ctx context.Context, noteID string) ([]dto.RelatedNoteOutput, error) {
	return h.uc.Related(ctx, noteID)
}
