package store

import (
	"context"
	"sync"

	"agenda/internal/model"
)

// MemoryStore keeps items in process memory. Insertion order is preserved;
// replacing an existing id keeps its original position.
type MemoryStore struct {
	mu sync.Mutex

	items map[string]model.AgendaItem
	order []string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: map[string]model.AgendaItem{},
	}
}

func (s *MemoryStore) Save(_ context.Context, item model.AgendaItem) error {
	if !item.HasID() {
		return errMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	return nil
}

func (s *MemoryStore) FindAll(_ context.Context) ([]model.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AgendaItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore) FindByDay(_ context.Context, day string) ([]model.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.AgendaItem{}
	for _, id := range s.order {
		if it := s.items[id]; it.Day == day {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (model.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return model.AgendaItem{}, ErrNotFound
	}
	return it, nil
}

func (s *MemoryStore) DropAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = map[string]model.AgendaItem{}
	s.order = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }
