package auth

import "errors"

// ErrInvalidState signals a callback with an unknown or expired state value.
var ErrInvalidState = errors.New("invalid or expired oauth state")

// ErrUnclaimedSignIn signals a first sign-in with no previously claimed
// username to adopt.
var ErrUnclaimedSignIn = errors.New("no claimed username for this sign-in")

// ErrInvalidSession signals a bearer token with no live session behind it.
var ErrInvalidSession = errors.New("invalid session")
