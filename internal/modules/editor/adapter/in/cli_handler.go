package in

import (
	"context"

	"inkwell/internal/modules/editor/dto"
	editorin "inkwell/internal/modules/editor/port/in"
)

type CLIHandler struct {
	usecase editorin.Usecase
}

func NewCLIHandler(usecase editorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// OnEdit routes one command-line edit through the history core so the
// same session rules hold outside the TUI.
func (h CLIHandler) OnEdit(ctx context.Context, documentID string, before dto.SnapshotInput, fn func(context.Context) error) error {
	return h.usecase.OnEdit(ctx, documentID, before, fn)
}

func (h CLIHandler) Checkpoint(documentID string, current dto.SnapshotInput) {
	h.usecase.Checkpoint(documentID, current)
}

func (h CLIHandler) OnDocumentDeleted(documentID string) {
	h.usecase.OnDocumentDeleted(documentID)
}

func (h CLIHandler) Status(documentID string) dto.HistoryStatusOutput {
	return h.usecase.Status(documentID)
}
