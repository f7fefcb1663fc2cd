package calendar

import "errors"

// ErrUserNotFound signals that the requested booking page does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidMonth signals a month outside 1..12.
var ErrInvalidMonth = errors.New("month out of range")

// ErrBadClock signals a wall-clock string that is not "HH:MM".
var ErrBadClock = errors.New("malformed clock time")

// ValidationError carries the first violated submission rule. Only the first
// violation is reported, never an aggregate of all of them.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
