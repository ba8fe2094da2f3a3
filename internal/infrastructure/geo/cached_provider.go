package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Unconfirmed2/nearbuy-sub000/internal/domain/discovery"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// noRouteSentinel marks destination pairs the routing service could not
// connect, so repeated misses do not hammer the provider
const noRouteSentinel = "no-route"

// CachedProvider is a Redis read-through cache in front of a
// discovery.DistanceProvider. Cache failures fall through to the inner
// provider, they never fail a lookup on their own.
type CachedProvider struct {
	inner  discovery.DistanceProvider
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProvider creates a new CachedProvider
func NewCachedProvider(inner discovery.DistanceProvider, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	return &CachedProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Distance returns the cached route length or resolves and caches it
func (p *CachedProvider) Distance(ctx context.Context, origin discovery.Location, destination string) (float64, error) {
	key := fmt.Sprintf("geo:distance:%s|%s", origin, destination)
	return p.lookup(ctx, key, func() (float64, error) {
		return p.inner.Distance(ctx, origin, destination)
	})
}

// TravelTime returns the cached travel duration or resolves and caches it
func (p *CachedProvider) TravelTime(ctx context.Context, origin discovery.Location, destination string, mode discovery.TravelMode) (float64, error) {
	key := fmt.Sprintf("geo:time:%s:%s|%s", mode, origin, destination)
	return p.lookup(ctx, key, func() (float64, error) {
		return p.inner.TravelTime(ctx, origin, destination, mode)
	})
}

func (p *CachedProvider) lookup(ctx context.Context, key string, resolve func() (float64, error)) (float64, error) {
	cached, err := p.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == noRouteSentinel {
			return 0, discovery.ErrNoRoute
		}
		if value, parseErr := strconv.ParseFloat(cached, 64); parseErr == nil {
			return value, nil
		}
		p.logger.Warn("discarding unparseable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		p.logger.Debug("geo cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := resolve()
	if err != nil {
		if errors.Is(err, discovery.ErrNoRoute) {
			p.store(ctx, key, noRouteSentinel)
		}
		return 0, err
	}

	p.store(ctx, key, strconv.FormatFloat(value, 'f', -1, 64))
	return value, nil
}

func (p *CachedProvider) store(ctx context.Context, key, value string) {
	if err := p.client.Set(ctx, key, value, p.ttl).Err(); err != nil {
		p.logger.Debug("geo cache write failed", zap.String("key", key), zap.Error(err))
	}
}
