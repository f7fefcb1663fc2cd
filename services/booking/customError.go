package booking

import "errors"

// ErrUserNotFound signals a booking against a page that does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrNameTooShort signals a visitor name shorter than three characters.
var ErrNameTooShort = errors.New("name must be at least 3 characters")

// ErrInvalidEmail signals an address that fails the email grammar.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrPastDate signals an appointment in the past.
var ErrPastDate = errors.New("cannot schedule in the past")

// ErrOutsideAvailability signals a time the host never offers.
var ErrOutsideAvailability = errors.New("time is outside the host's availability")

// ErrSlotTaken signals a time already booked by someone else.
var ErrSlotTaken = errors.New("time slot already booked")
