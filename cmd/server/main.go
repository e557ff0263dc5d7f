package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"advisor_backend/internal/app/di"
	"advisor_backend/internal/app/router"
	priceshandler "advisor_backend/internal/feature/prices/transport/handler"
	pricesusecase "advisor_backend/internal/feature/prices/usecase"
	recshandler "advisor_backend/internal/feature/recommendations/transport/handler"
	recsusecase "advisor_backend/internal/feature/recommendations/usecase"
	infradb "advisor_backend/internal/platform/db"
	infraredis "advisor_backend/internal/platform/redis"
	"advisor_backend/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	market := di.NewMarket()
	recRepo := di.NewRecommendationRepository(rdb, db)

	// Usecase
	fetchUC := pricesusecase.NewFetchUsecase(market, ratelimiter.NewRateLimiter(60, time.Minute))
	latestUC := recsusecase.NewLatestUsecase(recRepo)

	// Handler
	eodH := priceshandler.NewEodHandler(fetchUC)
	recsH := recshandler.NewRecommendationHandler(latestUC)

	// ルータ生成
	router := router.NewRouter(eodH, recsH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
