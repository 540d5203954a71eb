package repository

import (
	"errors"
	"fmt"
)

// ErrStoreNotConfigured is returned by a store built without credentials.
var ErrStoreNotConfigured = errors.New("store not configured")

// StatusError reports a non-2xx response from an upstream HTTP API.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code %d", e.Op, e.StatusCode)
}
