// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"advisor_backend/internal/feature/recommendations/domain/entity"
	"advisor_backend/internal/feature/recommendations/usecase"
)

// CachingRecommendationRepository decorates a RecommendationRepository with
// Redis caching of the latest-by-symbol lookup. The decorator is transparent:
// writes go to the underlying store first and invalidate the symbol's cache
// entry, and a nil Redis client disables caching entirely.
type CachingRecommendationRepository struct {
	inner     usecase.RecommendationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RecommendationRepository = (*CachingRecommendationRepository)(nil)

// NewCachingRecommendationRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "recommendations".
func NewCachingRecommendationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecommendationRepository, namespace string) *CachingRecommendationRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recommendations"
	}
	return &CachingRecommendationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Save stores the recommendation and invalidates the symbol's cached latest entry.
func (c *CachingRecommendationRepository) Save(ctx context.Context, rec entity.DailyRecommendation) (bool, error) {
	inserted, err := c.inner.Save(ctx, rec)
	if err != nil {
		return false, err
	}
	if c.rdb != nil && inserted {
		_ = c.rdb.Del(ctx, c.cacheKey(rec.Symbol)).Err() // Best effort
	}
	return inserted, nil
}

// LatestBySymbol retrieves the latest recommendation, checking the cache
// first and falling back to the database. Not-found results are not cached.
func (c *CachingRecommendationRepository) LatestBySymbol(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
	if c.rdb == nil {
		return c.inner.LatestBySymbol(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.DailyRecommendation
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.LatestBySymbol(ctx, symbol)
	if err != nil {
		return entity.DailyRecommendation{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a symbol's latest recommendation.
func (c *CachingRecommendationRepository) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:latest:%s", c.namespace, safe(symbol))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
