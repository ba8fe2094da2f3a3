package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/redis/go-redis/v9"
)

// RedisBasketStore keeps each session's basket as a Redis list of JSON
// lines. The basket lives exactly as long as the session.
type RedisBasketStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisBasketStore creates a new Redis-backed basket store
func NewRedisBasketStore(client *redis.Client, ttl time.Duration) *RedisBasketStore {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisBasketStore{
		client:    client,
		keyPrefix: "session:basket:",
		ttl:       ttl,
	}
}

// Add appends the item to the session basket and refreshes the basket TTL
func (s *RedisBasketStore) Add(ctx context.Context, sessionKey string, item discovery.BasketItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode basket item: %w", err)
	}

	key := s.keyPrefix + sessionKey
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append basket item: %w", err)
	}
	return nil
}

// Items returns the session basket in insertion order
func (s *RedisBasketStore) Items(ctx context.Context, sessionKey string) ([]discovery.BasketItem, error) {
	lines, err := s.client.LRange(ctx, s.keyPrefix+sessionKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read basket: %w", err)
	}

	items := make([]discovery.BasketItem, 0, len(lines))
	for _, line := range lines {
		var item discovery.BasketItem
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, fmt.Errorf("failed to decode basket item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Ensure RedisBasketStore implements BasketStore
var _ discovery.BasketStore = (*RedisBasketStore)(nil)
