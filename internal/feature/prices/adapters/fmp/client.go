package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"advisor_backend/internal/feature/prices/adapters/fmp/dto"
	"advisor_backend/internal/feature/prices/usecase"
)

// Market fetches end-of-day price data from the FMP stable API.
type Market struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Market implements the usecase interface.
var _ usecase.MarketAPI = (*Market)(nil)

// NewMarket creates a new Market with the given configuration and HTTP client.
func NewMarket(cfg Config, client *http.Client) *Market {
	return &Market{cfg: cfg, client: client}
}

// HistoricalRange calls the historical-price-eod endpoint for the given date
// window and returns the raw upstream array elements without reshaping them.
func (m *Market) HistoricalRange(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error) {
	if m.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	q.Set("apikey", m.cfg.APIKey)

	u := fmt.Sprintf("%s/historical-price-eod/full?%s", m.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &UpstreamHTTPError{Status: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamTransport, err)
	}

	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, ErrInvalidUpstreamJSON
	}
	// A JSON null also unmarshals into a slice, so the type of the probe is
	// the authoritative array check.
	if _, ok := probe.([]any); !ok {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidUpstreamPayload)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidUpstreamPayload)
	}
	return items, nil
}

// FetchEODForDate fetches the single EOD candle for one calendar day.
// It scopes the historical window to that day, expects a non-empty array
// and validates only the first element's date field; all other fields are
// returned as received.
func (m *Market) FetchEODForDate(ctx context.Context, symbol string, day time.Time) (dto.EodBar, error) {
	items, err := m.HistoricalRange(ctx, symbol, day, day)
	if err != nil {
		return dto.EodBar{}, err
	}
	if len(items) == 0 {
		return dto.EodBar{}, fmt.Errorf("%w: expected a non-empty array", ErrInvalidUpstreamPayload)
	}

	var bar dto.EodBar
	if err := json.Unmarshal(items[0], &bar); err != nil {
		return dto.EodBar{}, fmt.Errorf("%w: %v", ErrInvalidUpstreamPayload, err)
	}
	if _, err := time.Parse("2006-01-02", bar.Date); err != nil {
		return dto.EodBar{}, fmt.Errorf("%w: missing or non-ISO date %q", ErrInvalidUpstreamPayload, bar.Date)
	}
	return bar, nil
}
