// Package di provides dependency injection factories for creating application components.
package di

import (
	"advisor_backend/internal/feature/prices/adapters/fmp"
	infrahttp "advisor_backend/internal/platform/http"
)

// NewMarket creates a fully configured FMP market client with HTTP client.
func NewMarket() *fmp.Market {
	cfg := fmp.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return fmp.NewMarket(cfg, httpClient)
}
