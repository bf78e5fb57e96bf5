package intent

import "errors"

var (
	// ErrInvalidParams is returned by NewManager when the signing key,
	// issuer or TTL is missing.
	ErrInvalidParams = errors.New("invalid params for activation handles")

	// ErrInvalidHandle is returned for handles that fail signature, issuer
	// or shape checks.
	ErrInvalidHandle = errors.New("invalid activation handle")

	// ErrHandleExpired is returned for handles past their TTL.
	ErrHandleExpired = errors.New("activation handle expired")

	// ErrActionMismatch is returned by ResolveAction when a valid handle was
	// issued for a different action.
	ErrActionMismatch = errors.New("activation handle issued for another action")
)
