package in

import (
	"context"

	"inkwell/internal/modules/todos/dto"
)

type Usecase interface {
	Add(ctx context.Context, text string) (dto.TodoOutput, error)
	// List returns todos in creation order. Done entries are filtered
	// out unless includeDone is set.
	List(ctx context.Context, includeDone bool) ([]dto.TodoOutput, error)
	Toggle(ctx context.Context, id string) (dto.TodoOutput, error)
	Remove(ctx context.Context, id string) error
	// ClearDone removes every completed todo and reports how many went.
	ClearDone(ctx context.Context) (int, error)
}
