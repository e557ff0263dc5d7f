// Package handler provides the HTTP handlers for the prices feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"advisor_backend/internal/feature/prices/adapters/fmp"
	"advisor_backend/internal/feature/prices/transport/http/dto"
)

// DefaultSymbol is used when the request does not name a symbol.
const DefaultSymbol = "BTCUSD"

// FetchUsecase defines the on-demand fetch operations used by this handler.
// Following Go convention, the interface is defined by the consumer (handler).
type FetchUsecase interface {
	HistoricalEOD(ctx context.Context, symbol string, from, to time.Time) ([]json.RawMessage, error)
}

// EodHandler handles on-demand historical-EOD proxy requests.
type EodHandler struct {
	uc FetchUsecase
}

// NewEodHandler creates a new EodHandler with the given usecase.
func NewEodHandler(uc FetchUsecase) *EodHandler {
	return &EodHandler{uc: uc}
}

// HistoricalEOD validates the requested date window, proxies the query to the
// market-data provider, and returns the raw upstream array.
//
// GET /api/fmp/historical-eod?symbol=BTCUSD&from=2025-09-01&to=2025-09-16
//
// Validation failures return 400 with a stable error code and never reach the
// provider. Upstream failures map to the upstream status (or 502).
func (h *EodHandler) HistoricalEOD(c *gin.Context) {
	symbol := strings.TrimSpace(c.DefaultQuery("symbol", DefaultSymbol))
	if symbol == "" {
		symbol = DefaultSymbol
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request must include 'from' and 'to' as ISO YYYY-MM-DD strings",
		})
		return
	}

	from, err1 := time.Parse("2006-01-02", fromStr)
	to, err2 := time.Parse("2006-01-02", toStr)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_date",
			Message: "Dates must be ISO YYYY-MM-DD",
		})
		return
	}

	if from.After(to) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "invalid_range",
			Message: "'from' date cannot be after 'to' date",
		})
		return
	}

	items, err := h.uc.HistoricalEOD(c.Request.Context(), symbol, from, to)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoricalEodResponse{
		Status: "ok",
		Symbol: symbol,
		From:   from.Format("2006-01-02"),
		To:     to.Format("2006-01-02"),
		Count:  len(items),
		Data:   items,
	})
}

// writeUpstreamError maps the FMP client error taxonomy onto the wire envelope.
func writeUpstreamError(c *gin.Context, err error) {
	var httpErr *fmp.UpstreamHTTPError
	switch {
	case errors.Is(err, fmp.ErrMissingAPIKey):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "missing_api_key",
			Message: "Set FMP_API_KEY in environment",
		})
	case errors.As(err, &httpErr):
		c.JSON(httpErr.Status, dto.ErrorResponse{
			Error:   "upstream_http_error",
			Status:  httpErr.Status,
			Message: err.Error(),
		})
	case errors.Is(err, fmp.ErrInvalidUpstreamJSON):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: "invalid_upstream_json",
		})
	case errors.Is(err, fmp.ErrInvalidUpstreamPayload):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "invalid_upstream_payload",
			Message: "Expected an array",
		})
	default:
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "upstream_request_failed",
			Message: err.Error(),
		})
	}
}
