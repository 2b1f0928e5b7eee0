// Package redis caches geocoding results in Redis in front of a ports.Geocoder.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	KeyPrefix            = "parcel:geocode:"
	DefaultTTL           = 24 * time.Hour
	DefaultLookupTimeout = 10 * time.Second
)

type cachedCoordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CachingGeocoder decorates a Geocoder with a Redis read-through cache.
// Redis failures degrade to a direct lookup. Only successful lookups are stored.
//
// Concurrent misses for one locality share a single upstream lookup. That
// lookup is detached from the callers' cancellation and bounded by
// lookupTimeout; a cancelled caller only stops waiting for it.
type CachingGeocoder struct {
	next          ports.Geocoder
	client        redis.UniversalClient
	ttl           time.Duration
	lookupTimeout time.Duration
	group         singleflight.Group
	logger        *slog.Logger
}

var _ ports.Geocoder = (*CachingGeocoder)(nil)

func NewCachingGeocoder(
	next ports.Geocoder,
	client redis.UniversalClient,
	ttl time.Duration,
	lookupTimeout time.Duration,
	logger *slog.Logger,
) (*CachingGeocoder, error) {
	if next == nil {
		return nil, errors.New("geocoder is nil")
	}
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CachingGeocoder{
		next:          next,
		client:        client,
		ttl:           ttl,
		lookupTimeout: lookupTimeout,
		logger:        logger.With("component", "geocode_cache"),
	}, nil
}

// Key is the Redis key for a locality.
func Key(locality kernel.Locality) string {
	return KeyPrefix + locality.Key()
}

func (c *CachingGeocoder) Geocode(ctx context.Context, locality kernel.Locality) (kernel.Coordinate, error) {
	if err := locality.Validate(); err != nil {
		return kernel.Coordinate{}, err
	}

	key := Key(locality)
	if coord, ok := c.get(ctx, key); ok {
		return coord, nil
	}

	results := c.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.lookupTimeout)
		defer cancel()

		coord, err := c.next.Geocode(lookupCtx, locality)
		if err != nil {
			return kernel.Coordinate{}, err
		}
		c.set(lookupCtx, key, coord)
		return coord, nil
	})

	select {
	case <-ctx.Done():
		return kernel.Coordinate{}, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return kernel.Coordinate{}, res.Err
		}
		return res.Val.(kernel.Coordinate), nil
	}
}

func (c *CachingGeocoder) get(ctx context.Context, key string) (kernel.Coordinate, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return kernel.Coordinate{}, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "geocode cache read failed", "key", key, "error", err)
		return kernel.Coordinate{}, false
	}

	var cached cachedCoordinate
	if err = json.Unmarshal(raw, &cached); err != nil {
		c.logger.WarnContext(ctx, "geocode cache entry is corrupt", "key", key, "error", err)
		return kernel.Coordinate{}, false
	}

	coord, err := kernel.NewCoordinate(cached.Lat, cached.Lon)
	if err != nil {
		c.logger.WarnContext(ctx, "geocode cache entry is out of range", "key", key, "error", err)
		return kernel.Coordinate{}, false
	}

	return coord, true
}

func (c *CachingGeocoder) set(ctx context.Context, key string, coord kernel.Coordinate) {
	raw, err := json.Marshal(cachedCoordinate{Lat: coord.Lat(), Lon: coord.Lon()})
	if err != nil {
		c.logger.WarnContext(ctx, "geocode cache encode failed", "key", key, "error", err)
		return
	}

	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "geocode cache write failed", "key", key, "error", err)
	}
}

// NewClient opens a client and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return client, nil
}
