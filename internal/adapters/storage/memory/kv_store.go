package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petcare-marketplace/internal/ports/kv"
)

var (
	ErrEmptyKey = errors.New("key required")
)

type kvStore struct {
	mu    sync.RWMutex
	byKey map[string]string
}

func NewKVStore() kv.Store {
	return &kvStore{
		byKey: make(map[string]string),
	}
}

// NewKVStoreFrom arranca con contenido previo (tests / fixtures).
func NewKVStoreFrom(seed map[string]string) kv.Store {
	s := &kvStore{byKey: make(map[string]string, len(seed))}
	for k, v := range seed {
		s.byKey[k] = v
	}
	return s
}

func (s *kvStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byKey[key]
	return v, ok, nil
}

func (s *kvStore) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byKey[key] = value
	return nil
}

func (s *kvStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byKey, key)
	return nil
}
