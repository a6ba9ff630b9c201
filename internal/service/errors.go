package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no record matches a short code.
var ErrNotFound = errors.New("short link not found")

// ExpiredError is returned when a record exists but its expiry has passed.
// It carries the expiration timestamp so callers can display it.
type ExpiredError struct {
	ExpiresAt time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("short link expired at %s", e.ExpiresAt.Format(time.RFC3339))
}
