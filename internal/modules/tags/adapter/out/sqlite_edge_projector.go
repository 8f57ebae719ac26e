package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"inkwell/internal/modules/tags/domain"

	_ "modernc.org/sqlite"
)

type SQLiteEdgeProjector struct {
	db *sql.DB
}

func NewSQLiteEdgeProjector(dbPath string) (*SQLiteEdgeProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	p := &SQLiteEdgeProjector{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SQLiteEdgeProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS note_tags (
  note_id TEXT NOT NULL,
  note_title TEXT NOT NULL,
  tag_slug TEXT NOT NULL,
  tag_name TEXT NOT NULL,
  PRIMARY KEY (note_id, tag_slug)
);
CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag_slug);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create note_tags table: %w", err)
	}
	return nil
}

func (p *SQLiteEdgeProjector) ReplaceNoteEdges(ctx context.Context, noteID string, edges []domain.Edge) error {
	txn, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin edge replace: %w", err)
	}
	defer func() { _ = txn.Rollback() }()

	if _, err := txn.ExecContext(ctx, `DELETE FROM note_tags WHERE note_id = ?`, noteID); err != nil {
		return fmt.Errorf("clear note edges: %w", err)
	}
	const stmt = `INSERT INTO note_tags (note_id, note_title, tag_slug, tag_name) VALUES (?, ?, ?, ?)`
	for _, edge := range edges {
		if _, err := txn.ExecContext(ctx, stmt, edge.NoteID, edge.NoteTitle, edge.TagSlug, edge.TagName); err != nil {
			return fmt.Errorf("insert note edge: %w", err)
		}
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit edge replace: %w", err)
	}
	return nil
}

func (p *SQLiteEdgeProjector) RemoveNote(ctx context.Context, noteID string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM note_tags WHERE note_id = ?`, noteID); err != nil {
		return fmt.Errorf("remove note edges: %w", err)
	}
	return nil
}

func (p *SQLiteEdgeProjector) ListTags(ctx context.Context, limit int) ([]domain.TagSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := p.db.QueryContext(ctx, `
SELECT tag_slug, MAX(tag_name) AS tag_name, COUNT(*) AS note_count
FROM note_tags
GROUP BY tag_slug
ORDER BY note_count DESC, tag_slug ASC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TagSummary, 0, limit)
	for rows.Next() {
		item := domain.TagSummary{}
		if err := rows.Scan(&item.Slug, &item.Name, &item.NoteCount); err != nil {
			return nil, fmt.Errorf("scan tag summary: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag summary: %w", err)
	}
	return out, nil
}

func (p *SQLiteEdgeProjector) NotesWithTag(ctx context.Context, tagSlug string) ([]domain.TaggedNote, error) {
	rows, err := p.db.QueryContext(ctx, `
SELECT note_id, note_title
FROM note_tags
WHERE tag_slug = ?
ORDER BY note_title COLLATE NOCASE ASC;
`, tagSlug)
	if err != nil {
		return nil, fmt.Errorf("notes with tag: %w", err)
	}
	defer rows.Close()

	out := []domain.TaggedNote{}
	for rows.Next() {
		item := domain.TaggedNote{}
		if err := rows.Scan(&item.NoteID, &item.Title); err != nil {
			return nil, fmt.Errorf("scan tagged note: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tagged notes: %w", err)
	}
	return out, nil
}

// Related walks the note/tag edge set breadth first: every note sharing
// a tag with the start is at distance one, notes sharing a tag with
// those at distance two, and so on up to depth.
func (p *SQLiteEdgeProjector) Related(ctx context.Context, noteID string, depth int) ([]domain.RelatedNote, error) {
	if depth < 1 {
		depth = 1
	}
	noteTags, tagNotes, titles, err := p.loadAdjacency(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := noteTags[noteID]; !ok {
		return []domain.RelatedNote{}, nil
	}

	type queueItem struct {
		ID   string
		Dist int
	}
	seen := map[string]struct{}{noteID: {}}
	queue := []queueItem{{ID: noteID}}
	out := []domain.RelatedNote{}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.Dist >= depth {
			continue
		}
		for _, tagSlug := range sortedKeys(noteTags[item.ID]) {
			for _, nextID := range sortedKeys(tagNotes[tagSlug]) {
				if _, ok := seen[nextID]; ok {
					continue
				}
				seen[nextID] = struct{}{}
				out = append(out, domain.RelatedNote{
					NoteID:   nextID,
					Title:    titles[nextID],
					Distance: item.Dist + 1,
					Via:      tagSlug,
				})
				queue = append(queue, queueItem{ID: nextID, Dist: item.Dist + 1})
			}
		}
	}
	return out, nil
}

func (p *SQLiteEdgeProjector) loadAdjacency(ctx context.Context) (map[string]map[string]struct{}, map[string]map[string]struct{}, map[string]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT note_id, note_title, tag_slug FROM note_tags`)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load edges: %w", err)
	}
	defer rows.Close()

	noteTags := map[string]map[string]struct{}{}
	tagNotes := map[string]map[string]struct{}{}
	titles := map[string]string{}
	for rows.Next() {
		var noteID, noteTitle, tagSlug string
		if err := rows.Scan(&noteID, &noteTitle, &tagSlug); err != nil {
			return nil, nil, nil, fmt.Errorf("scan edge: %w", err)
		}
		if noteTags[noteID] == nil {
			noteTags[noteID] = map[string]struct{}{}
		}
		noteTags[noteID][tagSlug] = struct{}{}
		if tagNotes[tagSlug] == nil {
			tagNotes[tagSlug] = map[string]struct{}{}
		}
		tagNotes[tagSlug][noteID] = struct{}{}
		titles[noteID] = noteTitle
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("iterate edges: %w", err)
	}
	return noteTags, tagNotes, titles, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
