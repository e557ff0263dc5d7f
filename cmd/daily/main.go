// Command daily runs one attempt of the daily pipeline: fetch today's EOD
// candle, persist it, analyze the trailing window with the configured model,
// and store the recommendation. Each stage failure terminates the run with a
// distinct exit code; re-running is always safe because both writes are
// idempotent on their natural keys.
//
// With -schedule the command instead stays resident and runs the pipeline on
// the given cron expression, for deployments without an external scheduler.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"advisor_backend/internal/app/di"
	pricesadapters "advisor_backend/internal/feature/prices/adapters"
	"advisor_backend/internal/feature/recommendations/adapters/gemini"
	"advisor_backend/internal/feature/recommendations/usecase"
	infradb "advisor_backend/internal/platform/db"
)

// Exit codes, one per pipeline stage.
const (
	exitOK      = 0
	exitUnknown = 1
	exitFetch   = 2
	exitPersist = 3
	exitNoData  = 4
	exitSave    = 5
	exitAnalyze = 6
)

func main() {
	_ = godotenv.Load()

	schedule := flag.String("schedule", "", "cron expression; when set, run resident on this schedule instead of once")
	flag.Parse()

	symbol := os.Getenv("SYMBOL")
	if symbol == "" {
		symbol = "BTCUSD"
	}

	geminiCfg := gemini.LoadConfig()

	db := infradb.OpenDB()
	market := di.NewMarket()
	priceRepo := pricesadapters.NewEodPriceRepository(db)
	recRepo := di.NewRecommendationRepository(nil, db)
	// Lazy so that a bad Gemini credential fails the analysis stage, after
	// today's candle has been fetched and persisted.
	engine := gemini.NewLazyAnalyzer(geminiCfg)
	uc := usecase.NewDailyAnalysisUsecase(market, priceRepo, engine, recRepo)

	run := func() int {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := uc.Run(ctx, symbol, geminiCfg.Model); err != nil {
			log.Printf("ERROR: %v", err)
			return exitCode(err)
		}
		log.Printf("daily analysis ok: symbol=%s model=%s", symbol, geminiCfg.Model)
		return exitOK
	}

	if *schedule == "" {
		os.Exit(run())
	}

	c := cron.New()
	if _, err := c.AddFunc(*schedule, func() {
		if code := run(); code != exitOK {
			log.Printf("scheduled run failed with code %d", code)
		}
	}); err != nil {
		log.Fatalf("invalid -schedule %q: %v", *schedule, err)
	}
	log.Printf("scheduler started: %q symbol=%s", *schedule, symbol)
	c.Run()
}

// exitCode maps a pipeline stage error to the process exit status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrFetchFailed):
		return exitFetch
	case errors.Is(err, usecase.ErrPersistFailed):
		return exitPersist
	case errors.Is(err, usecase.ErrNoPriceData):
		return exitNoData
	case errors.Is(err, usecase.ErrAnalysisFailed):
		return exitAnalyze
	case errors.Is(err, usecase.ErrSaveFailed):
		return exitSave
	default:
		return exitUnknown
	}
}
