// Package usecase implements the business logic for the prices feature.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"advisor_backend/internal/shared/ratelimiter"
)

// MarketAPI abstracts the upstream market-data provider.
// Following Go convention, the interface is defined by the consumer (usecase).
type MarketAPI interface {
	// HistoricalRange returns the raw upstream array for a date window.
	HistoricalRange(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error)
}

// FetchUsecase proxies on-demand historical-EOD lookups to the provider,
// throttled so a burst of requests cannot exhaust the upstream quota.
type FetchUsecase struct {
	market      MarketAPI
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewFetchUsecase creates a new FetchUsecase.
func NewFetchUsecase(market MarketAPI, rateLimiter ratelimiter.RateLimiterInterface) *FetchUsecase {
	return &FetchUsecase{market: market, rateLimiter: rateLimiter}
}

// HistoricalEOD fetches the raw EOD array for the window [from, to].
// Range validation happens at the transport layer; by the time this runs the
// window is known to be well-formed.
func (fu *FetchUsecase) HistoricalEOD(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error) {
	fu.rateLimiter.WaitIfNeeded()
	return fu.market.HistoricalRange(ctx, symbol, from, to)
}
