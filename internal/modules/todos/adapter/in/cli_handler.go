package in

import (
	"context"

	"inkwell/internal/modules/todos/dto"
	todosin "inkwell/internal/modules/todos/port/in"
)

type CLIHandler struct {
	uc todosin.Usecase
}

func NewCLIHandler(uc todosin.Usecase) CLIHandler {
	return CLIHandler{uc: uc}
}

func (h CLIHandler) Add(ctx context.Context, text string) (dto.TodoOutput, error) {
	return h.uc.Add(ctx, text)
}

func (h CLIHandler) List(ctx context.Context, includeDone bool) ([]dto.TodoOutput, error) {
	return h.uc.List(ctx, includeDone)
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (dto.TodoOutput, error) {
	return h.uc.Toggle(ctx, id)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.uc.Remove(ctx, id)
}

func (h CLIHandler) ClearDone(ctx context.Context) (int, error) {
	return h.uc.ClearDone(ctx)
}
