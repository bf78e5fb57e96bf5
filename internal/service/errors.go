package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAccountNotFound is returned when an operation names a user id that
	// is not logged in on this device.
	ErrAccountNotFound = errors.New("account not found")

	// ErrVaultLocked is returned by vault operations on a locked vault.
	ErrVaultLocked = errors.New("vault is locked")

	ErrCipherNotLogin = errors.New("cipher is not a login")
)
