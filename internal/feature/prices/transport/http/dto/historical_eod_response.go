package dto

import "encoding/json"

// HistoricalEodResponse wraps the raw upstream EOD array for the proxy endpoint.
type HistoricalEodResponse struct {
	Status string            `json:"status"` // always "ok" on success
	Symbol string            `json:"symbol"` // echoed symbol
	From   string            `json:"from"`   // echoed window start (ISO date)
	To     string            `json:"to"`     // echoed window end (ISO date)
	Count  int               `json:"count"`  // number of upstream elements
	Data   []json.RawMessage `json:"data"`   // upstream array, passed through as-is
}

// ErrorResponse is the JSON error envelope for the prices endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`             // stable machine-readable code
	Message string `json:"message,omitempty"` // human-readable detail
	Status  int    `json:"status,omitempty"`  // upstream HTTP status, when relevant
}
