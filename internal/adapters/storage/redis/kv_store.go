package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// cmdable es el subconjunto de comandos que usamos; permite un fake en tests.
type cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// KVStore guarda cada colección bajo "<prefix>:<key>", sin TTL.
type KVStore struct {
	store  cmdable
	raw    *redis.Client
	prefix string
}

// Open parsea la URL, verifica conectividad y devuelve el store.
func Open(ctx context.Context, url, prefix string) (*KVStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &KVStore{store: raw, raw: raw, prefix: strings.TrimSpace(prefix)}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.store.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value, 0).Err()
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	return s.store.Del(ctx, s.key(key)).Err()
}

func (s *KVStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

func (s *KVStore) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}
