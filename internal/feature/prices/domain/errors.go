// Package domain defines domain-level errors for the prices feature.
package domain

import "errors"

var (
	// ErrInvalidDate is returned when an upstream payload's date field
	// cannot be parsed as an ISO YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid trade date")
)
