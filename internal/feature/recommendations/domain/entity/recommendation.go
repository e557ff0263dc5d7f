// Package entity defines the domain models for the recommendations feature.
package entity

import "time"

// Advice is the structured result of one model analysis: exactly the four
// fields the model is instructed to return as strict JSON.
type Advice struct {
	Recommendation string  `json:"recommendation"` // one of "buy", "sell", "hold"
	Rationale      string  `json:"rationale"`      // short free text, prompt-bounded to ~50 words
	ChangePercent  float64 `json:"change_percent"` // (last_close - first_close) / first_close
	WindowDays     int     `json:"window_days"`    // number of candles considered
}

// DailyRecommendation is one stored recommendation, keyed by
// (symbol, trade date, model name). Rows are append-only.
type DailyRecommendation struct {
	ID             uint
	Symbol         string
	TradeDate      time.Time
	ModelName      string
	Recommendation string
	Rationale      string
	ChangePercent  float64
	WindowDays     int
	CreatedAt      time.Time
}
