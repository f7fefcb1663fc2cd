package user

import "errors"

// ErrUsernameTaken signals a claim on a handle that already exists.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidUsername signals a handle that fails the format rules.
var ErrInvalidUsername = errors.New("username must be at least 3 lowercase letters, digits or hyphens")

// ErrUserNotFound signals a lookup for a user that does not exist.
var ErrUserNotFound = errors.New("user not found")
