package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Derived payloads are valid for the lifetime of their snapshot version, so
// the TTL only bounds how long dead versions linger.
const DashboardCacheTTL = 15 * time.Minute

// CacheService provides a Redis cache-aside layer for rendered dashboard
// payloads, keyed by section and snapshot version.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetSection retrieves a cached dashboard section payload. Returns nil if
// not cached or cache is disabled.
func (c *CacheService) GetSection(ctx context.Context, section, version string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, sectionKey(section, version)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetSection stores a rendered dashboard section payload.
func (c *CacheService) SetSection(ctx context.Context, section, version string, data []byte) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, sectionKey(section, version), data, DashboardCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func sectionKey(section, version string) string {
	return fmt.Sprintf("dashboard:%s:%s", section, version)
}
