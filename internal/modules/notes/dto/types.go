package dto

import "time"

type CreateNoteInput struct {
	Title   string
	Content string
	Tags    []string
}

type UpdateNoteInput struct {
	ID      string
	Title   string
	Content string
}

type ImportFileInput struct {
	Path  string
	Title string
	Tags  []string
}

type ImportPDFInput struct {
	Path  string
	Title string
	Tags  []string
}

type ListNotesInput struct {
	Search       string
	FavoriteOnly bool
	Tag          string
	SortBy       string
	Order        string
}

type NoteOutput struct {
	ID        string
	Slug      string
	Title     string
	Excerpt   string
	Favorite  bool
	UpdatedAt time.Time
}

type NoteDetailOutput struct {
	ID        string
	Slug      string
	Title     string
	Content   string
	Favorite  bool
	Tags      []string
	Path      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
