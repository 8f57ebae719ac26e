package out

import (
	"inkwell/internal/modules/editor/domain"
)

// MemoryHistoryStore holds history records for the life of the process.
// Records are never persisted; a restart begins with clean stacks.
type MemoryHistoryStore struct {
	records map[string]*domain.HistoryRecord
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{records: map[string]*domain.HistoryRecord{}}
}

func (s *MemoryHistoryStore) History(documentID string) *domain.HistoryRecord {
	rec, ok := s.records[documentID]
	if !ok {
		rec = &domain.HistoryRecord{}
		s.records[documentID] = rec
	}
	return rec
}

func (s *MemoryHistoryStore) PushPast(documentID string, snap domain.Snapshot) {
	rec := s.History(documentID)
	rec.Past = append(rec.Past, snap)
	if len(rec.Past) > domain.MaxDepth {
		rec.Past = rec.Past[len(rec.Past)-domain.MaxDepth:]
	}
	rec.Future = nil
}

func (s *MemoryHistoryStore) RemoveHistory(documentID string) {
	delete(s.records, documentID)
}
