package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkwell/internal/modules/notes/domain"
	notesout "inkwell/internal/modules/notes/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteNoteIndex struct {
	db *sql.DB
}

func NewSQLiteNoteIndex(dbPath string) (notesout.NoteIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteNoteIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *SQLiteNoteIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS notes (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  favorite INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes(updated_at);
CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

func (s *SQLiteNoteIndex) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("reset notes: %w", err)
	}
	return nil
}

func (s *SQLiteNoteIndex) Upsert(ctx context.Context, note domain.Note) error {
	const stmt = `
INSERT INTO notes (id, slug, title, content, favorite, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  slug=excluded.slug,
  title=excluded.title,
  content=excluded.content,
  favorite=excluded.favorite,
  created_at=excluded.created_at,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		note.ID,
		note.Slug,
		note.Title,
		note.Content,
		boolToInt(note.Favorite),
		note.CreatedAt.Format(time.RFC3339),
		note.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

func (s *SQLiteNoteIndex) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete note row: %w", err)
	}
	return nil
}

func (s *SQLiteNoteIndex) Query(ctx context.Context, query domain.ListQuery) ([]domain.Note, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, slug, title, content, favorite, created_at, updated_at FROM notes`)

	var clauses []string
	var args []any
	if search := strings.TrimSpace(query.Search); search != "" {
		clauses = append(clauses, `(title LIKE ? OR content LIKE ?)`)
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if query.FavoriteOnly {
		clauses = append(clauses, `favorite = 1`)
	}
	if query.IDs != nil {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(query.IDs)), ", ")
		clauses = append(clauses, `id IN (`+placeholders+`)`)
		for _, id := range query.IDs {
			args = append(args, id)
		}
	}
	if len(clauses) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(clauses, ` AND `))
	}
	sb.WriteString(` ORDER BY ` + orderClause(query.SortBy, query.Order))

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Note
	for rows.Next() {
		var note domain.Note
		var favorite int
		var createdAt, updatedAt string
		if err := rows.Scan(&note.ID, &note.Slug, &note.Title, &note.Content, &favorite, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		note.Favorite = favorite != 0
		note.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		note.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		out = append(out, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate note rows: %w", err)
	}
	return out, nil
}

// orderClause maps the validated query enums onto column expressions.
// Values outside the enums never reach this point.
func orderClause(field domain.SortField, order domain.SortOrder) string {
	column := "updated_at"
	switch field {
	case domain.SortByCreated:
		column = "created_at"
	case domain.SortByTitle:
		column = "title COLLATE NOCASE"
	}
	direction := "DESC"
	if order == domain.OrderAsc {
		direction = "ASC"
	}
	return column + " " + direction
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
