package in

import (
	"context"

	"inkwell/internal/modules/export/dto"
)

type Usecase interface {
	// ExportNote writes a single note in the given format and returns the
	// written path.
	ExportNote(ctx context.Context, noteID, format string) (dto.ExportFileOutput, error)
	// ExportAll exports every note in the vault in the given format.
	ExportAll(ctx context.Context, format string) ([]dto.ExportFileOutput, error)
	// ExportArchive bundles the whole vault, markdown plus rendered HTML,
	// into a single zip file.
	ExportArchive(ctx context.Context) (dto.ExportFileOutput, error)
}
