// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"admin_backend/internal/feature/dashboard/domain/entity"
	"admin_backend/internal/feature/dashboard/usecase"
)

// CachingStatisticsRepository decorates a StatisticsRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Cache failures never fail the request.
type CachingStatisticsRepository struct {
	inner usecase.StatisticsRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingStatisticsRepository decorates a StatisticsRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If key is empty, it uses "statistics:all".
func NewCachingStatisticsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatisticsRepository, key string) *CachingStatisticsRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if key == "" {
		key = "statistics:all"
	}
	return &CachingStatisticsRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   key,
	}
}

// List retrieves statistics, checking cache first then falling back to the database.
func (c *CachingStatisticsRepository) List(ctx context.Context) ([]entity.Statistic, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Statistic
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}
