package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// mockMarketAPI is a mock implementation of the MarketAPI interface.
type mockMarketAPI struct {
	HistoricalRangeFunc  func(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error)
	HistoricalRangeCalls int
}

func (m *mockMarketAPI) HistoricalRange(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error) {
	m.HistoricalRangeCalls++
	if m.HistoricalRangeFunc != nil {
		return m.HistoricalRangeFunc(ctx, symbol, from, to)
	}
	return nil, errors.New("HistoricalRangeFunc is not implemented")
}

// mockRateLimiter is a mock implementation of the RateLimiterInterface.
type mockRateLimiter struct {
	WaitIfNeededCalls int
}

func (m *mockRateLimiter) WaitIfNeeded() {
	m.WaitIfNeededCalls++
}

func TestFetchUsecase_HistoricalEOD(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

	market := &mockMarketAPI{
		HistoricalRangeFunc: func(ctx context.Context, symbol string, f, u time.Time) ([]json.RawMessage, error) {
			if symbol != "BTCUSD" || !f.Equal(from) || !u.Equal(to) {
				t.Errorf("unexpected args: %s %v %v", symbol, f, u)
			}
			return []json.RawMessage{json.RawMessage(`{"date":"2025-09-16"}`)}, nil
		},
	}
	limiter := &mockRateLimiter{}

	fu := NewFetchUsecase(market, limiter)
	items, err := fu.HistoricalEOD(context.Background(), "BTCUSD", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 element, got %d", len(items))
	}
	// The limiter must gate every upstream call.
	if limiter.WaitIfNeededCalls != 1 {
		t.Errorf("expected 1 limiter wait, got %d", limiter.WaitIfNeededCalls)
	}
	if market.HistoricalRangeCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", market.HistoricalRangeCalls)
	}
}

func TestFetchUsecase_HistoricalEOD_PropagatesError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("upstream down")
	market := &mockMarketAPI{
		HistoricalRangeFunc: func(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error) {
			return nil, wantErr
		},
	}

	fu := NewFetchUsecase(market, &mockRateLimiter{})
	_, err := fu.HistoricalEOD(context.Background(), "BTCUSD", time.Now(), time.Now())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}
