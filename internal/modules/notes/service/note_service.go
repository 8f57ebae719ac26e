package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"inkwell/internal/modules/notes/domain"
	notesout "inkwell/internal/modules/notes/port/out"
	"inkwell/internal/platform/clock"
	"inkwell/internal/platform/id"
	"inkwell/internal/platform/slug"
)

type NoteService struct {
	clock clock.Clock
	idGen id.Generator
	store notesout.NoteStore
	index notesout.NoteIndex
	files notesout.FileReader
	pdf   notesout.PDFExtractor
}

func NewNoteService(clock clock.Clock, idGen id.Generator, store notesout.NoteStore, index notesout.NoteIndex, files notesout.FileReader, pdf notesout.PDFExtractor) *NoteService {
	return &NoteService{clock: clock, idGen: idGen, store: store, index: index, files: files, pdf: pdf}
}

func (s *NoteService) Create(ctx context.Context, title, content string, tags []string) (domain.Note, error) {
	title = strings.TrimSpace(title)
	now := s.clock.Now()
	note := domain.Note{
		ID:        s.idGen.New(),
		Slug:      slug.Make(title),
		Title:     title,
		Content:   content,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	path, err := s.store.Save(ctx, note)
	if err != nil {
		return domain.Note{}, err
	}
	note.Path = path
	if err := s.index.Upsert(ctx, note); err != nil {
		return domain.Note{}, err
	}
	if err := s.refreshIndexPage(ctx); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, noteID string) (domain.Note, error) {
	return s.store.FindByID(ctx, noteID)
}

func (s *NoteService) Update(ctx context.Context, noteID, title, content string) (domain.Note, error) {
	note, err := s.store.FindByID(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	note.Title = strings.TrimSpace(title)
	note.Content = content
	note.UpdatedAt = s.clock.Now()
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	path, err := s.store.Save(ctx, note)
	if err != nil {
		return domain.Note{}, err
	}
	note.Path = path
	if err := s.index.Upsert(ctx, note); err != nil {
		return domain.Note{}, err
	}
	if err := s.refreshIndexPage(ctx); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (s *NoteService) ToggleFavorite(ctx context.Context, noteID string) (domain.Note, error) {
	note, err := s.store.FindByID(ctx, noteID)
	if err != nil {
		return domain.Note{}, err
	}
	note.Favorite = !note.Favorite
	note.UpdatedAt = s.clock.Now()
	path, err := s.store.Save(ctx, note)
	if err != nil {
		return domain.Note{}, err
	}
	note.Path = path
	if err := s.index.Upsert(ctx, note); err != nil {
		return domain.Note{}, err
	}
	if err := s.refreshIndexPage(ctx); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, noteID string) error {
	if _, err := s.store.FindByID(ctx, noteID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, noteID); err != nil {
		return err
	}
	if err := s.index.Delete(ctx, noteID); err != nil {
		return err
	}
	return s.refreshIndexPage(ctx)
}

func (s *NoteService) List(ctx context.Context, query domain.ListQuery) ([]domain.Note, error) {
	query, err := query.Normalized()
	if err != nil {
		return nil, err
	}
	return s.index.Query(ctx, query)
}

func (s *NoteService) ImportFile(ctx context.Context, path, title string, tags []string) (domain.Note, error) {
	if strings.TrimSpace(path) == "" {
		return domain.Note{}, fmt.Errorf("file path is required")
	}
	content, err := s.files.Read(ctx, path)
	if err != nil {
		return domain.Note{}, err
	}
	return s.Create(ctx, importTitle(title, path), content, tags)
}

func (s *NoteService) ImportPDF(ctx context.Context, path, title string, tags []string) (domain.Note, error) {
	if strings.TrimSpace(path) == "" {
		return domain.Note{}, fmt.Errorf("file path is required")
	}
	content, err := s.pdf.Extract(ctx, path)
	if err != nil {
		return domain.Note{}, err
	}
	return s.Create(ctx, importTitle(title, path), content, tags)
}

// Reindex rebuilds the projection and the vault index page from the
// note files on disk. The files are the source of truth.
func (s *NoteService) Reindex(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.index.Reset(ctx); err != nil {
		return nil, err
	}
	for _, note := range notes {
		if err := s.index.Upsert(ctx, note); err != nil {
			return nil, err
		}
	}
	if err := s.store.WriteIndex(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) refreshIndexPage(ctx context.Context) error {
	notes, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	return s.store.WriteIndex(ctx, notes)
}

func importTitle(title, path string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func normalizeTags(tags []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
