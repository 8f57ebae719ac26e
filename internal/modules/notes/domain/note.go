package domain

import (
	"fmt"
	"strings"
	"time"

	"inkwell/internal/platform/markdown"
)

const (
	ManagedNotesStart = "<!-- inkwell:notes:start -->"
	ManagedNotesEnd   = "<!-- inkwell:notes:end -->"
	SchemaVersion     = 1
	ExcerptLimit      = 120
)

type SortField string

const (
	SortByUpdated SortField = "updated"
	SortByCreated SortField = "created"
	SortByTitle   SortField = "title"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type Note struct {
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

func (f SortField) Validate() error {
	switch f {
	case SortByUpdated, SortByCreated, SortByTitle:
		return nil
	default:
		return fmt.Errorf("unsupported sort field %q", string(f))
	}
}

func (o SortOrder) Validate() error {
	switch o {
	case OrderAsc, OrderDesc:
		return nil
	default:
		return fmt.Errorf("unsupported sort order %q", string(o))
	}
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(n.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

// Excerpt returns the first content line for list display.
func (n Note) Excerpt() string {
	return markdown.Excerpt(n.Content, ExcerptLimit)
}

// ListQuery narrows and orders List results. IDs, when non-nil,
// restricts results to that set; the tag filter resolves to one before
// the query reaches the index.
type ListQuery struct {
	Search       string
	FavoriteOnly bool
	IDs          []string
	SortBy       SortField
	Order        SortOrder
}

// Normalized fills zero values with the default ordering and validates
// the rest: most recently updated first, titles alphabetical.
func (q ListQuery) Normalized() (ListQuery, error) {
	if q.SortBy == "" {
		q.SortBy = SortByUpdated
	}
	if q.Order == "" {
		if q.SortBy == SortByTitle {
			q.Order = OrderAsc
		} else {
			q.Order = OrderDesc
		}
	}
	if err := q.SortBy.Validate(); err != nil {
		return ListQuery{}, err
	}
	if err := q.Order.Validate(); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}
