package data

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	linkCachePrefix = "link:"
	tombstone       = "-"
	minCacheTTL     = time.Second
)

// LinkCache caches links by code. Implementations treat every failure as a
// miss; callers never see cache errors.
type LinkCache interface {
	// Get returns the cached link; false on miss or tombstone.
	Get(ctx context.Context, code string) (*domain.Link, bool)
	// Add caches link unless the key already holds a value.
	Add(ctx context.Context, link *domain.Link)
	// Tombstone marks code deleted so Add cannot repopulate it.
	Tombstone(ctx context.Context, code string)
}

// Compile-time interface checks
var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *log.Helper
	now func() time.Time
}

// NewLinkCache returns a Redis cache, or a no-op cache when Redis is not
// configured.
func NewLinkCache(data *Data, logger log.Logger) LinkCache {
	if data.rdb == nil {
		return &noopLinkCache{}
	}
	return NewRedisLinkCache(data.rdb, data.cacheTTL, logger)
}

// NewRedisLinkCache creates a new Redis-based link cache.
func NewRedisLinkCache(rdb *redis.Client, ttl time.Duration, logger log.Logger) *RedisLinkCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisLinkCache{
		rdb: rdb,
		ttl: ttl,
		log: log.NewHelper(logger),
		now: time.Now,
	}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	OriginalURL string     `json:"original_url"`
	ClickCount  int64      `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func cacheKey(code string) string {
	return linkCachePrefix + code
}

// Get retrieves a link from Redis.
func (c *RedisLinkCache) Get(ctx context.Context, code string) (*domain.Link, bool) {
	data, err := c.rdb.Get(ctx, cacheKey(code)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithContext(ctx).Warnf("failed to get link %s from cache: %v", code, err)
		}
		return nil, false
	}
	if string(data) == tombstone {
		return nil, false
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.log.WithContext(ctx).Warnf("failed to unmarshal cached link %s: %v", code, err)
		return nil, false
	}

	return &domain.Link{
		ID:          cached.ID,
		Code:        cached.Code,
		OriginalURL: cached.OriginalURL,
		ClickCount:  cached.ClickCount,
		CreatedAt:   cached.CreatedAt,
		ExpiresAt:   cached.ExpiresAt,
		DeletedAt:   cached.DeletedAt,
	}, true
}

// Add stores link with SET NX so a tombstone written by a concurrent delete wins.
func (c *RedisLinkCache) Add(ctx context.Context, link *domain.Link) {
	data, err := json.Marshal(cachedLink{
		ID:          link.ID,
		Code:        link.Code,
		OriginalURL: link.OriginalURL,
		ClickCount:  link.ClickCount,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		DeletedAt:   link.DeletedAt,
	})
	if err != nil {
		c.log.WithContext(ctx).Warnf("failed to marshal link %s for cache: %v", link.Code, err)
		return
	}

	if err := c.rdb.SetNX(ctx, cacheKey(link.Code), data, c.ttlFor(link)).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("failed to cache link %s: %v", link.Code, err)
	}
}

// Tombstone overwrites the entry for code with a deletion marker.
func (c *RedisLinkCache) Tombstone(ctx context.Context, code string) {
	if err := c.rdb.Set(ctx, cacheKey(code), tombstone, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("failed to tombstone link %s in cache: %v", code, err)
	}
}

// ttlFor keeps entries no longer than the link lives, but at least a second
// so an expired link still answers from the cache briefly.
func (c *RedisLinkCache) ttlFor(link *domain.Link) time.Duration {
	ttl := c.ttl
	if link.ExpiresAt != nil {
		if remaining := link.ExpiresAt.Sub(c.now()); remaining < ttl {
			ttl = remaining
		}
	}
	return max(ttl, minCacheTTL)
}

// noopLinkCache is used when Redis is not configured.
type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, string) (*domain.Link, bool) { return nil, false }

func (noopLinkCache) Add(context.Context, *domain.Link) {}

func (noopLinkCache) Tombstone(context.Context, string) {}
