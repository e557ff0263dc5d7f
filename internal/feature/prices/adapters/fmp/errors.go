package fmp

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when no FMP API key is configured.
	ErrMissingAPIKey = errors.New("missing_api_key: set FMP_API_KEY in environment")

	// ErrUpstreamTransport is returned when the request to FMP fails
	// before an HTTP status is received (DNS, connect, timeout).
	ErrUpstreamTransport = errors.New("upstream_request_failed")

	// ErrInvalidUpstreamJSON is returned when the FMP response body is not JSON.
	ErrInvalidUpstreamJSON = errors.New("invalid_upstream_json")

	// ErrInvalidUpstreamPayload is returned when the FMP response is JSON but
	// not the expected shape: not an array, an empty array, or a first element
	// without a parseable ISO date.
	ErrInvalidUpstreamPayload = errors.New("invalid_upstream_payload")
)

// UpstreamHTTPError reports a non-2xx status from the FMP API.
type UpstreamHTTPError struct {
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream_http_error: fmp returned status %d", e.Status)
}
