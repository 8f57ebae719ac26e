package out

import (
	"context"

	"inkwell/internal/modules/notes/domain"
)

type NoteStore interface {
	Save(ctx context.Context, note domain.Note) (string, error)
	FindByID(ctx context.Context, id string) (domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Delete(ctx context.Context, id string) error
	// WriteIndex regenerates the managed listing in the vault's index.md.
	WriteIndex(ctx context.Context, notes []domain.Note) error
}

type NoteIndex interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, note domain.Note) error
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, query domain.ListQuery) ([]domain.Note, error)
}

type FileReader interface {
	Read(ctx context.Context, path string) (string, error)
}

type PDFExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
