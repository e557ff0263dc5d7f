package router

import (
	"github.com/gin-gonic/gin"

	priceshandler "advisor_backend/internal/feature/prices/transport/handler"
	recshandler "advisor_backend/internal/feature/recommendations/transport/handler"
	"advisor_backend/internal/platform/http/handler"
)

// NewRouter registers every route explicitly, in a fixed order, at startup.
func NewRouter(eod *priceshandler.EodHandler, recs *recshandler.RecommendationHandler) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		// 導通確認用
		api.GET("/ping", handler.Ping)
		// オンデマンドのEOD取得（FMPへのプロキシ）
		api.GET("/fmp/historical-eod", eod.HistoricalEOD)
		// 最新のレコメンデーション取得
		api.GET("/recommendations/latest", recs.Latest)
	}

	return r
}
