package dto

import "time"

type TodoOutput struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt time.Time
	DoneAt    *time.Time
}
