package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"advisor_backend/internal/feature/prices/adapters/fmp/dto"
	"advisor_backend/internal/feature/prices/domain"
	"advisor_backend/internal/feature/prices/domain/entity"
)

type eodPriceGorm struct {
	db *gorm.DB
}

func NewEodPriceRepository(db *gorm.DB) *eodPriceGorm {
	return &eodPriceGorm{db: db}
}

type EodPriceModel struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:32;not null;uniqueIndex:eod_sym_date,priority:1"`
	TradeDate time.Time `gorm:"not null;uniqueIndex:eod_sym_date,priority:2"`

	Open  float64 `gorm:"not null"`
	High  float64 `gorm:"not null"`
	Low   float64 `gorm:"not null"`
	Close float64 `gorm:"not null"`

	Vwap          *float64
	Volume        *int64
	ChangeAbs     *float64
	ChangePercent *float64

	IngestedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (EodPriceModel) TableName() string {
	return "eod_prices"
}

func toEntity(m EodPriceModel) entity.EodPrice {
	return entity.EodPrice{
		ID:            m.ID,
		Symbol:        m.Symbol,
		TradeDate:     m.TradeDate,
		Open:          m.Open,
		High:          m.High,
		Low:           m.Low,
		Close:         m.Close,
		Vwap:          m.Vwap,
		Volume:        m.Volume,
		ChangeAbs:     m.ChangeAbs,
		ChangePercent: m.ChangePercent,
		IngestedAt:    m.IngestedAt,
	}
}

// Upsert inserts the candle if no row exists for (symbol, trade date) and
// reports whether a row was created. The unique index is the authoritative
// guard: a concurrent insert for the same key surfaces as a conflict that is
// swallowed by the ON CONFLICT clause and reported as "already exists".
//
// Optional payload fields are mapped the way the upstream schema overlaps:
// vwap prefers adjClose over vwap, change_abs prefers change over changeOverTime.
func (r *eodPriceGorm) Upsert(ctx context.Context, symbol string, bar dto.EodBar) (bool, error) {
	tradeDate, err := time.Parse("2006-01-02", bar.Date)
	if err != nil {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidDate, bar.Date)
	}

	m := EodPriceModel{
		Symbol:        symbol,
		TradeDate:     tradeDate,
		Open:          bar.Open,
		High:          bar.High,
		Low:           bar.Low,
		Close:         bar.Close,
		Vwap:          coalesce(bar.AdjClose, bar.Vwap),
		Volume:        bar.Volume,
		ChangeAbs:     coalesce(bar.Change, bar.ChangeOverTime),
		ChangePercent: bar.ChangePercent,
	}

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "trade_date"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// LastN returns up to n most recent candles for the symbol, newest first.
func (r *eodPriceGorm) LastN(ctx context.Context, symbol string, n int) ([]entity.EodPrice, error) {
	var rows []EodPriceModel
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("trade_date DESC").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.EodPrice, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func coalesce(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}
