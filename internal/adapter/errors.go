package adapter

import "errors"

// Sentinel errors mapped from provider API status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("wrong master password")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrGone                = errors.New("activation handle expired")
	ErrLocked              = errors.New("vault is locked")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotImplemented      = errors.New("not implemented")

	// ErrEmptyAddress is returned by NewHTTPProviderAdapter for a blank address.
	ErrEmptyAddress = errors.New("empty provider address")
	// ErrUnlockRejected wraps a non-success unlock verdict.
	ErrUnlockRejected = errors.New("unlock rejected")
)
