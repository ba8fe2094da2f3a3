package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// RedisLocationStore persists each shopper session's origin location.
// Entries expire with the session TTL so stale locations age out on
// their own.
type RedisLocationStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisLocationStore creates a new Redis-backed location store
func NewRedisLocationStore(client *redis.Client, ttl time.Duration) *RedisLocationStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisLocationStore{
		client:    client,
		keyPrefix: "session:location:",
		ttl:       ttl,
	}
}

// Get returns the persisted location for the session, or shared.ErrNotFound
func (s *RedisLocationStore) Get(ctx context.Context, sessionKey string) (discovery.Location, error) {
	value, err := s.client.Get(ctx, s.keyPrefix+sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", shared.ErrNotFound
		}
		return "", fmt.Errorf("failed to read session location: %w", err)
	}
	return discovery.Location(value), nil
}

// Set persists the session's location, refreshing its TTL
func (s *RedisLocationStore) Set(ctx context.Context, sessionKey string, loc discovery.Location) error {
	if err := s.client.Set(ctx, s.keyPrefix+sessionKey, string(loc), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist session location: %w", err)
	}
	return nil
}

// Ensure RedisLocationStore implements LocationStore
var _ discovery.LocationStore = (*RedisLocationStore)(nil)
