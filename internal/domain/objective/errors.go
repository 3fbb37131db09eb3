package objective

import "errors"

var (
	ErrNotFound     = errors.New("objective not found")
	ErrWindowClosed = errors.New("objective application window is closed")
	ErrCapacityFull = errors.New("objective application capacity is full")
	ErrTeamSize     = errors.New("team size outside the objective's bounds")
)
