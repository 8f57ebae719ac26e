package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/modules/todos/domain"
	todosout "inkwell/internal/modules/todos/port/out"
	"inkwell/internal/platform/clock"
	apperrors "inkwell/internal/platform/errors"
	"inkwell/internal/platform/id"
)

type TodoService struct {
	clock clock.Clock
	idGen id.Generator
	store todosout.TodoStore
}

func NewTodoService(clock clock.Clock, idGen id.Generator, store todosout.TodoStore) *TodoService {
	return &TodoService{clock: clock, idGen: idGen, store: store}
}

func (s *TodoService) Add(ctx context.Context, text string) (domain.Todo, error) {
	todo := domain.Todo{
		ID:        s.idGen.New(),
		Text:      strings.TrimSpace(text),
		CreatedAt: s.clock.Now(),
	}
	if err := todo.Validate(); err != nil {
		return domain.Todo{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	todos, err := s.store.Load(ctx)
	if err != nil {
		return domain.Todo{}, err
	}
	todos = append(todos, todo)
	if err := s.store.Save(ctx, todos); err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context, includeDone bool) ([]domain.Todo, error) {
	todos, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if includeDone {
		return todos, nil
	}
	open := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if !todo.Done {
			open = append(open, todo)
		}
	}
	return open, nil
}

func (s *TodoService) Toggle(ctx context.Context, todoID string) (domain.Todo, error) {
	todos, err := s.store.Load(ctx)
	if err != nil {
		return domain.Todo{}, err
	}
	for i := range todos {
		if todos[i].ID != todoID {
			continue
		}
		todos[i].Done = !todos[i].Done
		if todos[i].Done {
			doneAt := s.clock.Now()
			todos[i].DoneAt = &doneAt
		} else {
			todos[i].DoneAt = nil
		}
		if err := s.store.Save(ctx, todos); err != nil {
			return domain.Todo{}, err
		}
		return todos[i], nil
	}
	return domain.Todo{}, apperrors.ErrNotFound
}

func (s *TodoService) Remove(ctx context.Context, todoID string) error {
	todos, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range todos {
		if todos[i].ID != todoID {
			continue
		}
		todos = append(todos[:i], todos[i+1:]...)
		return s.store.Save(ctx, todos)
	}
	return apperrors.ErrNotFound
}

func (s *TodoService) ClearDone(ctx context.Context) (int, error) {
	todos, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	kept := make([]domain.Todo, 0, len(todos))
	for _, todo := range todos {
		if !todo.Done {
			kept = append(kept, todo)
		}
	}
	cleared := len(todos) - len(kept)
	if cleared == 0 {
		return 0, nil
	}
	if err := s.store.Save(ctx, kept); err != nil {
		return 0, err
	}
	return cleared, nil
}
