// Package memory is a process-local kv.Store. Nothing survives a restart.
package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"mydahanu/directory/internal/kv"
)

type Store struct {
	items *cache.Cache
}

var _ kv.Store = (*Store)(nil)

func NewStore() *Store {
	// No expiration and no janitor goroutine.
	return &Store{items: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.items.Set(key, value, cache.NoExpiration)
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

func (s *Store) Close() error {
	s.items.Flush()
	return nil
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	return s.items.ItemCount()
}
