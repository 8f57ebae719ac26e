package usecase

import (
	"context"

	"inkwell/internal/modules/todos/domain"
	"inkwell/internal/modules/todos/dto"
	todosin "inkwell/internal/modules/todos/port/in"
	"inkwell/internal/modules/todos/service"
)

type Interactor struct {
	svc *service.TodoService
}

func NewInteractor(svc *service.TodoService) todosin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, text string) (dto.TodoOutput, error) {
	todo, err := i.svc.Add(ctx, text)
	if err != nil {
		return dto.TodoOutput{}, err
	}
	return toOutput(todo), nil
}

func (i *Interactor) List(ctx context.Context, includeDone bool) ([]dto.TodoOutput, error) {
	todos, err := i.svc.List(ctx, includeDone)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TodoOutput, 0, len(todos))
	for _, todo := range todos {
		out = append(out, toOutput(todo))
	}
	return out, nil
}

func (i *Interactor) Toggle(ctx context.Context, id string) (dto.TodoOutput, error) {
	todo, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return dto.TodoOutput{}, err
	}
	return toOutput(todo), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) ClearDone(ctx context.Context) (int, error) {
	return i.svc.ClearDone(ctx)
}

func toOutput(todo domain.Todo) dto.TodoOutput {
	return dto.TodoOutput{
		ID:        todo.ID,
		Text:      todo.Text,
		Done:      todo.Done,
		CreatedAt: todo.CreatedAt,
		DoneAt:    todo.DoneAt,
	}
}
