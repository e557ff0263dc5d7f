// Package domain defines domain-level errors for the recommendations feature.
package domain

import "errors"

var (
	// ErrNotFound indicates that no recommendation exists for the given symbol.
	ErrNotFound = errors.New("recommendation not found")
)
