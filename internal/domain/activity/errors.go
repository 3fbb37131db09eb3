package activity

import (
	"errors"
	"fmt"
)

// Rejection taxonomy for the dispatch chain. The first failing check wins
// and its error is what the caller sees.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrActorNotFound     = errors.New("actor not found")
	ErrActorInactive     = errors.New("actor is not active for scheduling")
	ErrSchedulerDisabled = errors.New("fleet scheduler is disabled")
	ErrKindNotEnabled    = errors.New("activity kind is not enabled")
	ErrNotImplemented    = errors.New("activity kind is not implemented on this path")
	ErrGenerator         = errors.New("content generator failed")
	ErrRunInProgress     = errors.New("a fleet run is already in progress")
)

// OutOfHoursError rejects a dispatch outside the applicable hour window.
// Distinct from rate limiting so callers can tell "try again later today"
// from "quota exhausted".
type OutOfHoursError struct {
	Hour        int
	ActiveHours []int
}

func (e *OutOfHoursError) Error() string {
	return fmt.Sprintf("not active at UTC hour %d (active hours: %v)", e.Hour, e.ActiveHours)
}

// RateLimitError rejects a dispatch whose window ceiling is reached. It
// carries the observed count and the ceiling for diagnostics.
type RateLimitError struct {
	Kind    Kind
	Window  Window
	Count   int
	Ceiling int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s limit reached for this %s (%d/%d)", e.Kind, e.Window, e.Count, e.Ceiling)
}
