package utils

import (
	"time"
)

// NowMillis returns the current time as Unix epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ToPointer returns a pointer to a copy of v.
func ToPointer[T any](v T) *T {
	return &v
}
