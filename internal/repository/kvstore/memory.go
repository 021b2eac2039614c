package kvstore

import (
	"context"
	"strings"
	"sync"

	"github.com/medicore/hospital-api/internal/model"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]model.Record
}

// NewMemoryStore returns an in-process Store used for tests and local runs.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string]model.Record)}
}

func (s *memoryStore) Get(_ context.Context, key string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (s *memoryStore) Set(_ context.Context, key string, value model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value.Clone()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *memoryStore) GetByPrefix(_ context.Context, prefix string) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.Record, 0)
	for key, rec := range s.data {
		if strings.HasPrefix(key, prefix) {
			records = append(records, rec.Clone())
		}
	}
	return records, nil
}
