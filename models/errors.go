package models

import "errors"

// Service-level error taxonomy. Handlers map these to HTTP statuses;
// the error text doubles as the response message.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("not authorized")
	ErrNotFound           = errors.New("project not found")
)
