package common

import "errors"

// Common application errors. Services wrap these with context via %w; handlers
// translate them to HTTP statuses and hide everything else behind a generic
// server error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)
