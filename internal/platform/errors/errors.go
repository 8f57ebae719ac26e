package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrActionUnknown       = errors.New("unknown assist action")
	ErrProviderUnavailable = errors.New("assist provider unavailable")
)
