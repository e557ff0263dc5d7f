package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"advisor_backend/internal/feature/recommendations/domain"
	"advisor_backend/internal/feature/recommendations/domain/entity"
	"advisor_backend/internal/feature/recommendations/usecase"
)

type recommendationGorm struct {
	db *gorm.DB
}

var _ usecase.RecommendationRepository = (*recommendationGorm)(nil)

func NewRecommendationRepository(db *gorm.DB) *recommendationGorm {
	return &recommendationGorm{db: db}
}

type RecommendationModel struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:32;not null;uniqueIndex:rec_sym_date_model,priority:1"`
	TradeDate time.Time `gorm:"not null;uniqueIndex:rec_sym_date_model,priority:2"`
	ModelName string    `gorm:"size:64;not null;uniqueIndex:rec_sym_date_model,priority:3"`

	Recommendation string  `gorm:"size:8;not null"`
	Rationale      string  `gorm:"type:text;not null"`
	ChangePercent  float64 `gorm:"not null"`
	WindowDays     int     `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (RecommendationModel) TableName() string {
	return "daily_recommendations"
}

func toEntity(m RecommendationModel) entity.DailyRecommendation {
	return entity.DailyRecommendation{
		ID:             m.ID,
		Symbol:         m.Symbol,
		TradeDate:      m.TradeDate,
		ModelName:      m.ModelName,
		Recommendation: m.Recommendation,
		Rationale:      m.Rationale,
		ChangePercent:  m.ChangePercent,
		WindowDays:     m.WindowDays,
		CreatedAt:      m.CreatedAt,
	}
}

// Save inserts the recommendation if none exists for
// (symbol, trade date, model name) and reports whether a row was created.
// A duplicate submission is an idempotent no-op, not an error.
func (r *recommendationGorm) Save(ctx context.Context, rec entity.DailyRecommendation) (bool, error) {
	m := RecommendationModel{
		Symbol:         rec.Symbol,
		TradeDate:      rec.TradeDate,
		ModelName:      rec.ModelName,
		Recommendation: rec.Recommendation,
		Rationale:      rec.Rationale,
		ChangePercent:  rec.ChangePercent,
		WindowDays:     rec.WindowDays,
	}

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "trade_date"}, {Name: "model_name"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// LatestBySymbol returns the newest recommendation for the symbol, ordered by
// trade date and tie-broken by creation time.
func (r *recommendationGorm) LatestBySymbol(ctx context.Context, symbol string) (entity.DailyRecommendation, error) {
	var m RecommendationModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("trade_date DESC, created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DailyRecommendation{}, domain.ErrNotFound
		}
		return entity.DailyRecommendation{}, err
	}
	return toEntity(m), nil
}
