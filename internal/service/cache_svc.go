package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is a thin Redis layer. The only thing cached is the quota
// exhaustion flag: once the day's ceiling is hit, repeated denials are
// served without touching Postgres. Scraped pages are deliberately never
// cached (staleness tolerance is unspecified upstream).
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService connects to Redis. If redisURL is empty or the connection
// fails, operations become no-ops and the quota gate falls back to hitting
// the database every time.
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

// QuotaExhausted reports whether the given day is flagged as exhausted.
func (c *CacheService) QuotaExhausted(ctx context.Context, day string) bool {
	if c.rdb == nil {
		return false
	}
	n, err := c.rdb.Exists(ctx, quotaKey(day)).Result()
	return err == nil && n > 0
}

// MarkQuotaExhausted flags the day as exhausted until it expires.
func (c *CacheService) MarkQuotaExhausted(ctx context.Context, day string, ttl time.Duration) {
	if c.rdb == nil || ttl <= 0 {
		return
	}
	if err := c.rdb.Set(ctx, quotaKey(day), "1", ttl).Err(); err != nil {
		log.Printf("cache: quota flag set error: %v", err)
	}
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func quotaKey(day string) string {
	return "quota:exhausted:" + day
}
