package store

import (
	"context"
	"encoding/json"
	"sync"

	"hotel-frontdesk/models"
)

// MemoryStore keeps the serialized blob in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	version int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*models.HotelState, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, 0, ErrStateNotFound
	}
	var state models.HotelState
	if err := json.Unmarshal(s.data, &state); err != nil {
		return nil, 0, err
	}
	return &state, s.version, nil
}

func (s *MemoryStore) Save(_ context.Context, state *models.HotelState, expected int64) (int64, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != expected {
		return 0, ErrVersionConflict
	}
	s.data = raw
	s.version++
	return s.version, nil
}
