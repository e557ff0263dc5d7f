// Package usecase implements the business logic for the recommendations feature.
package usecase

import "errors"

// Stage errors for the daily analysis pipeline. Each stage failure is fatal
// for the run; the batch binary maps them to distinct process exit codes.
var (
	// ErrFetchFailed wraps a failure to fetch today's candle from the provider.
	ErrFetchFailed = errors.New("fetching EOD failed")

	// ErrPersistFailed wraps a failure to store the fetched candle.
	ErrPersistFailed = errors.New("upserting EOD failed")

	// ErrNoPriceData indicates the trailing window is empty; no analysis is
	// attempted without data.
	ErrNoPriceData = errors.New("no price data available for analysis")

	// ErrAnalysisFailed wraps a failure of the model analysis call.
	ErrAnalysisFailed = errors.New("LLM analysis failed")

	// ErrSaveFailed wraps a failure to store the resulting recommendation.
	ErrSaveFailed = errors.New("saving recommendation failed")
)
