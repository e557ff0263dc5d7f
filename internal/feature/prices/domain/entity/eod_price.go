// Package entity defines the domain models for the prices feature.
package entity

import "time"

// EodPrice represents one end-of-day candle for a traded symbol.
// Rows are append-only and keyed by (symbol, trade date); optional
// fields stay nil when the upstream payload omits them.
type EodPrice struct {
	ID            uint      // Surrogate identifier for lookup convenience
	Symbol        string    // Traded symbol (e.g., "BTCUSD")
	TradeDate     time.Time // Calendar date of the candle (UTC midnight)
	Open          float64   // Opening price
	High          float64   // Highest price of the day
	Low           float64   // Lowest price of the day
	Close         float64   // Closing price
	Vwap          *float64  // Volume-weighted average price, if provided
	Volume        *int64    // Trading volume, if provided
	ChangeAbs     *float64  // Absolute close-to-close change, if provided
	ChangePercent *float64  // Relative close-to-close change, if provided
	IngestedAt    time.Time // Server-assigned ingestion timestamp
}
