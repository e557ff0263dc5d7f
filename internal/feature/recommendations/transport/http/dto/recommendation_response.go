package dto

// RecommendationResponse is the flattened wire shape of a stored recommendation.
type RecommendationResponse struct {
	ID             uint    `json:"id"`
	Symbol         string  `json:"symbol"`
	TradeDate      string  `json:"trade_date"` // ISO YYYY-MM-DD
	ModelName      string  `json:"model_name"`
	Recommendation string  `json:"recommendation"`
	Rationale      string  `json:"rationale"`
	ChangePercent  float64 `json:"change_percent"`
	WindowDays     int     `json:"window_days"`
	CreatedAt      string  `json:"created_at"` // RFC 3339
}

// ErrorResponse is the JSON error envelope for the recommendations endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Symbol  string `json:"symbol,omitempty"`
}
