package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"advisor_backend/internal/feature/recommendations/adapters"
	"advisor_backend/internal/feature/recommendations/usecase"
	"advisor_backend/internal/platform/cache"
)

// NewRecommendationRepository creates a RecommendationRepository implementation.
// If Redis is available, the gorm repository is wrapped with a cache of the
// latest-by-symbol lookup that expires at the next EOD rollover.
func NewRecommendationRepository(rdb *redis.Client, db *gorm.DB) usecase.RecommendationRepository {
	repo := adapters.NewRecommendationRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingRecommendationRepository(rdb, cache.TimeUntilNextMidnightUTC(), repo, "recommendations")
}
