package domain

import (
	"fmt"
	"time"
)

// Todo is a single checklist entry. Todos live outside the note files
// in one JSON document, so they never carry vault paths.
type Todo struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
}

func (t Todo) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("id is required")
	}
	if t.Text == "" {
		return fmt.Errorf("todo text is required")
	}
	return nil
}
