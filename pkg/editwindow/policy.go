// Package editwindow decides whether a guest may still modify their own
// uploads for an event. The rule is a pure date calculation: mutation is
// allowed through the end of the day eventDate + grace days.
package editwindow

import (
	"fmt"
	"time"
)

// DefaultGraceDays is used when no per-deployment override is configured.
const DefaultGraceDays = 1

// Policy is immutable after construction; invalid grace periods are
// rejected here so Allow stays a total function.
type Policy struct {
	graceDays int
}

// NewPolicy creates a policy with the given grace period in days.
func NewPolicy(graceDays int) (Policy, error) {
	if graceDays < 0 {
		return Policy{}, fmt.Errorf("grace period must not be negative, got %d", graceDays)
	}
	return Policy{graceDays: graceDays}, nil
}

// GraceDays returns the configured grace period.
func (p Policy) GraceDays() int {
	return p.graceDays
}

// Deadline returns the first instant at which mutation is no longer allowed:
// midnight after the last grace day, in the event date's location.
func (p Policy) Deadline(eventDate time.Time) time.Time {
	startOfDay := time.Date(
		eventDate.Year(), eventDate.Month(), eventDate.Day(),
		0, 0, 0, 0, eventDate.Location(),
	)
	return startOfDay.AddDate(0, 0, p.graceDays+1)
}

// Allow reports whether a guest-owned resource of an event dated eventDate
// is still mutable at the instant now.
func (p Policy) Allow(now, eventDate time.Time) bool {
	return now.Before(p.Deadline(eventDate))
}
