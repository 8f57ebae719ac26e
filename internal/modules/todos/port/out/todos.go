package out

import (
	"context"

	"inkwell/internal/modules/todos/domain"
)

// TodoStore persists the full todo list as one document.
type TodoStore interface {
	Load(ctx context.Context) ([]domain.Todo, error)
	Save(ctx context.Context, todos []domain.Todo) error
}
