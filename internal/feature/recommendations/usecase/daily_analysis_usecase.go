package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	fmpdto "advisor_backend/internal/feature/prices/adapters/fmp/dto"
	pricesentity "advisor_backend/internal/feature/prices/domain/entity"
	"advisor_backend/internal/feature/recommendations/domain/entity"
)

const (
	// WindowDays is the size of the trailing candle window supplied to the model.
	WindowDays = 7
)

// MarketRepository fetches EOD data from the market-data provider.
// Following Go convention, interfaces are defined by the consumer (usecase).
type MarketRepository interface {
	FetchEODForDate(ctx context.Context, symbol string, day time.Time) (fmpdto.EodBar, error)
}

// PriceRepository abstracts the EOD price store.
type PriceRepository interface {
	// Upsert inserts the candle if absent for its natural key and reports
	// whether a row was created.
	Upsert(ctx context.Context, symbol string, bar fmpdto.EodBar) (bool, error)
	// LastN returns up to n most recent candles for the symbol, newest first.
	LastN(ctx context.Context, symbol string, n int) ([]pricesentity.EodPrice, error)
}

// Analyzer produces a structured recommendation from an ordered candle window.
type Analyzer interface {
	Analyze(ctx context.Context, data []entity.CandleSnapshot, model string) (entity.Advice, error)
}

// RecommendationRepository abstracts the recommendation store.
type RecommendationRepository interface {
	// Save inserts the recommendation if absent for its natural key and
	// reports whether a row was created.
	Save(ctx context.Context, rec entity.DailyRecommendation) (bool, error)
	// LatestBySymbol returns the newest recommendation for the symbol.
	LatestBySymbol(ctx context.Context, symbol string) (entity.DailyRecommendation, error)
}

// DailyAnalysisUsecase runs the daily pipeline: fetch today's candle, persist
// it, read the trailing window, ask the model for a recommendation, and store
// the result. One call is one attempt; every stage failure is fatal and both
// persistence stages are idempotent on their natural keys, so re-running the
// job is the only recovery mechanism and is always safe.
type DailyAnalysisUsecase struct {
	market MarketRepository
	prices PriceRepository
	engine Analyzer
	recs   RecommendationRepository
}

// NewDailyAnalysisUsecase creates a new DailyAnalysisUsecase.
func NewDailyAnalysisUsecase(market MarketRepository, prices PriceRepository, engine Analyzer, recs RecommendationRepository) *DailyAnalysisUsecase {
	return &DailyAnalysisUsecase{market: market, prices: prices, engine: engine, recs: recs}
}

// Run executes one pipeline attempt for the symbol. Errors wrap the stage
// sentinels from errors.go so the caller can tell the stages apart.
func (du *DailyAnalysisUsecase) Run(ctx context.Context, symbol, modelName string) error {
	today := time.Now().UTC()

	bar, err := du.market.FetchEODForDate(ctx, symbol, today)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	slog.Info("fetched EOD", "symbol", symbol, "date", bar.Date)

	inserted, err := du.prices.Upsert(ctx, symbol, bar)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	if inserted {
		slog.Info("EOD inserted", "symbol", symbol, "date", bar.Date)
	} else {
		slog.Info("EOD exists", "symbol", symbol, "date", bar.Date)
	}

	window, err := du.prices.LastN(ctx, symbol, WindowDays)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoPriceData, err)
	}
	if len(window) == 0 {
		return ErrNoPriceData
	}

	// The window is read newest-first; the model expects oldest-first.
	data := make([]entity.CandleSnapshot, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		data = append(data, toSnapshot(window[i]))
	}

	advice, err := du.engine.Analyze(ctx, data, modelName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	slog.Info("LLM analysis result", "symbol", symbol,
		"recommendation", advice.Recommendation, "window_days", advice.WindowDays)

	// Keyed by the newest trade date in the window, i.e. the first row of the
	// newest-first read.
	saved, err := du.recs.Save(ctx, entity.DailyRecommendation{
		Symbol:         symbol,
		TradeDate:      window[0].TradeDate,
		ModelName:      modelName,
		Recommendation: advice.Recommendation,
		Rationale:      advice.Rationale,
		ChangePercent:  advice.ChangePercent,
		WindowDays:     advice.WindowDays,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if saved {
		slog.Info("recommendation saved", "symbol", symbol, "trade_date", window[0].TradeDate.Format("2006-01-02"))
	} else {
		slog.Info("recommendation duplicate, skipped", "symbol", symbol, "trade_date", window[0].TradeDate.Format("2006-01-02"))
	}
	return nil
}

// toSnapshot renames stored fields to the upstream schema the model is
// prompted with.
func toSnapshot(p pricesentity.EodPrice) entity.CandleSnapshot {
	return entity.CandleSnapshot{
		Change:        p.ChangeAbs,
		ChangePercent: p.ChangePercent,
		Close:         p.Close,
		Date:          p.TradeDate.Format("2006-01-02"),
		High:          p.High,
		Low:           p.Low,
		Open:          p.Open,
		Symbol:        p.Symbol,
		Volume:        p.Volume,
		Vwap:          p.Vwap,
	}
}
