package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a duplicate unique key.
	ErrConflict = errors.New("already exists")
	// ErrTooLarge indicates a request body over the accepted size.
	ErrTooLarge = errors.New("request body too large")
)
