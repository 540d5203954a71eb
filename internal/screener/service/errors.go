package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTickerRequired is returned when a quote is requested without a ticker.
	ErrTickerRequired = errors.New("Ticker required")
	// ErrNoData is returned when the quote service has no result for a ticker.
	ErrNoData = errors.New("No data found")
	// ErrKVNotConfigured is returned before any I/O when the store credentials are missing.
	ErrKVNotConfigured = errors.New("KV not configured")
	// ErrLoadFailed is returned when the store answers a read with a non-2xx status.
	ErrLoadFailed = errors.New("Failed to load")
	// ErrSaveFailed is returned when the store answers a write with a non-2xx status.
	ErrSaveFailed = errors.New("Failed to save")
)

// UpstreamError carries a non-2xx status from the quote service so it can be passed through.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Yahoo API error: %d", e.StatusCode)
}
