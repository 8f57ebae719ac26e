package in

import (
	"context"

	"inkwell/internal/modules/export/dto"
	exportin "inkwell/internal/modules/export/port/in"
)

// CLIHandler adapts the export usecase for cobra commands.
type CLIHandler struct {
	uc exportin.Usecase
}

func NewCLIHandler(uc exportin.Usecase) CLIHandler {
	return CLIHandler{uc: uc}
}

func (h CLIHandler) ExportNote(ctx context.Context, noteID, format string) (dto.ExportFileOutput, error) {
	return h.uc.ExportNote(ctx, noteID, format)
}

func (h CLIHandler) ExportAll(ctx context.Context, format string) ([]dto.ExportFileOutput, error) {
	return h.uc.ExportAll(ctx, format)
}

func (h CLIHandler) ExportArchive(ctx context.Context) (dto.ExportFileOutput, error) {
	return h.uc.ExportArchive(ctx)
}
