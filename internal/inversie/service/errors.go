package service

import "errors"

// The HTTP layer maps these onto status codes. Services wrap them with
// fmt.Errorf("%w: ...") to add the field or reason.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrSessionInvalid     = errors.New("session expired or invalid")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
)
