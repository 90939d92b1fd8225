package author

import "errors"

// Repository-level errors
var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrEmailAlreadyExists = errors.New("author already exists")
)

// Service-level errors
var (
	// Returned for both unknown email and wrong password so a caller
	// cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
