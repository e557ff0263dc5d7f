// Package dto defines the wire types returned by the FMP historical-EOD endpoint.
package dto

// EodBar is a single element of the FMP historical-price-eod array.
// Only Date is validated by the client; every other field is passed
// through as-is and may be absent in the upstream response.
type EodBar struct {
	Symbol         string   `json:"symbol,omitempty"`
	Date           string   `json:"date"`
	Open           float64  `json:"open"`
	High           float64  `json:"high"`
	Low            float64  `json:"low"`
	Close          float64  `json:"close"`
	AdjClose       *float64 `json:"adjClose,omitempty"`
	Volume         *int64   `json:"volume,omitempty"`
	Change         *float64 `json:"change,omitempty"`
	ChangePercent  *float64 `json:"changePercent,omitempty"`
	ChangeOverTime *float64 `json:"changeOverTime,omitempty"`
	Vwap           *float64 `json:"vwap,omitempty"`
}
