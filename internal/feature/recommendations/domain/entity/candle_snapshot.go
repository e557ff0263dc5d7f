package entity

// CandleSnapshot is one day of stored EOD data in the shape the analysis
// model is prompted with. Field names follow the upstream provider schema,
// which is what the model's instruction set describes.
type CandleSnapshot struct {
	Change        *float64 `json:"change"`
	ChangePercent *float64 `json:"changePercent"`
	Close         float64  `json:"close"`
	Date          string   `json:"date"`
	High          float64  `json:"high"`
	Low           float64  `json:"low"`
	Open          float64  `json:"open"`
	Symbol        string   `json:"symbol"`
	Volume        *int64   `json:"volume"`
	Vwap          *float64 `json:"vwap"`
}
