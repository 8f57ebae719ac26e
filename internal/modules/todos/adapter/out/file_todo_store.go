package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"inkwell/internal/modules/todos/domain"
	todosout "inkwell/internal/modules/todos/port/out"
)

type FileTodoStore struct {
	path string
}

func NewFileTodoStore(todosPath string) todosout.TodoStore {
	return &FileTodoStore{path: todosPath}
}

func (s *FileTodoStore) Load(_ context.Context) ([]domain.Todo, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Todo{}, nil
		}
		return nil, fmt.Errorf("read todos: %w", err)
	}
	todos := []domain.Todo{}
	if err := json.Unmarshal(payload, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}

// Save replaces the whole document through a temp file rename so a
// crash mid-write never leaves a truncated list behind.
func (s *FileTodoStore) Save(_ context.Context, todos []domain.Todo) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create todos dir: %w", err)
	}
	payload, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write todos: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace todos: %w", err)
	}
	return nil
}
