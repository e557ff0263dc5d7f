// Package handler provides the HTTP handlers for the recommendations feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"advisor_backend/internal/feature/recommendations/domain"
	"advisor_backend/internal/feature/recommendations/domain/entity"
	"advisor_backend/internal/feature/recommendations/transport/http/dto"
)

// DefaultSymbol is used when the request does not name a symbol.
const DefaultSymbol = "BTCUSD"

// LatestUsecase defines the read operations used by this handler.
type LatestUsecase interface {
	Latest(ctx context.Context, symbol string) (entity.DailyRecommendation, error)
}

// RecommendationHandler handles recommendation read requests.
type RecommendationHandler struct {
	uc LatestUsecase
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(uc LatestUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// Latest returns the newest stored recommendation for a symbol.
//
// GET /api/recommendations/latest?symbol=BTCUSD
func (h *RecommendationHandler) Latest(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", DefaultSymbol)

	rec, err := h.uc.Latest(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: "No recommendation found for criteria",
				Symbol:  symbol,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RecommendationResponse{
		ID:             rec.ID,
		Symbol:         rec.Symbol,
		TradeDate:      rec.TradeDate.Format("2006-01-02"),
		ModelName:      rec.ModelName,
		Recommendation: rec.Recommendation,
		Rationale:      rec.Rationale,
		ChangePercent:  rec.ChangePercent,
		WindowDays:     rec.WindowDays,
		CreatedAt:      rec.CreatedAt.Format(time.RFC3339),
	})
}
