package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

// MemoryStore keeps sessions in process memory. freecache evicts the oldest
// entries once the cache is full, which logs those callers out.
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore(sizeBytes int) *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (s *MemoryStore) Get(_ context.Context, token string) (Marker, error) {
	val, err := s.cache.Get([]byte(token))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return Marker{}, ErrSessionNotFound
		}
		return Marker{}, fmt.Errorf("memory store get: %w", err)
	}
	return Marker{Username: string(val)}, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, marker Marker) error {
	// no expiry, sessions live until logout or teardown
	if err := s.cache.Set([]byte(token), []byte(marker.Username), 0); err != nil {
		return fmt.Errorf("memory store set: %w", err)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.cache.Del([]byte(token))
	return nil
}

func (s *MemoryStore) Teardown(_ context.Context) error {
	s.cache.Clear()
	return nil
}

func (s *MemoryStore) Count() int64 {
	return s.cache.EntryCount()
}
