package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"globalstore/internal/domain"
)

type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a CartStore that keeps the cart document under a
// single Redis key. This is the shared-slot variant: several shells over
// the same key see each other's writes, last write wins. A ttl of zero
// means the cart never expires.
func NewRedisStore(client *redis.Client, key string, ttl time.Duration) CartStore {
	return &redisStore{client: client, key: key, ttl: ttl}
}

// Load reads and decodes the stored cart document.
func (s *redisStore) Load(ctx context.Context) (*domain.CartState, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read cart key: %w", err)
	}

	state := &domain.CartState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode cart key: %w", err)
	}

	return state, nil
}

// Save serializes the cart document and overwrites the key.
func (s *redisStore) Save(ctx context.Context, state *domain.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode cart state: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart key: %w", err)
	}

	return nil
}

// Clear deletes the key. Clearing an empty slot is a no-op.
func (s *redisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart key: %w", err)
	}
	return nil
}
