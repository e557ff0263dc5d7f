package usecase

import (
	"context"

	"advisor_backend/internal/feature/recommendations/domain/entity"
)

// LatestUsecase reads the most recent stored recommendation for a symbol.
type LatestUsecase struct {
	recs RecommendationRepository
}

// NewLatestUsecase creates a new LatestUsecase.
func NewLatestUsecase(recs RecommendationRepository) *LatestUsecase {
	return &LatestUsecase{recs: recs}
}

// Latest returns the newest recommendation for the symbol, or
// domain.ErrNotFound when none exists.
func (lu *LatestUsecase) Latest(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
	return lu.recs.LatestBySymbol(ctx, symbol)
}
