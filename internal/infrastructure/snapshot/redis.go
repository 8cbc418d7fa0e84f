package snapshot

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/avaheights/society-portal/internal/domain/providers"
	redisclient "github.com/avaheights/society-portal/internal/infrastructure/clients/redis"
)

const redisKeyPrefix = "society:snapshot:"

// RedisStore keeps one Redis key per slot. Snapshots carry no TTL; Redis is
// treated as durable storage here, not a cache.
type RedisStore struct {
	client *redisclient.Client
}

var _ providers.SnapshotStore = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed snapshot store
func NewRedisStore(client *redisclient.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load returns the slot contents
func (s *RedisStore) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	data, err := s.client.Client().Get(ctx, redisKeyPrefix+slot).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load snapshot %s: %w", slot, err)
	}
	return data, true, nil
}

// Save replaces the slot contents
func (s *RedisStore) Save(ctx context.Context, slot string, data []byte) error {
	if err := s.client.Client().Set(ctx, redisKeyPrefix+slot, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", slot, err)
	}
	return nil
}

// Delete removes the slot
func (s *RedisStore) Delete(ctx context.Context, slot string) error {
	if err := s.client.Client().Del(ctx, redisKeyPrefix+slot).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", slot, err)
	}
	return nil
}
