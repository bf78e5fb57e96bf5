package credential

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-provider/models"
)

// Sentinels for matching reported errors with errors.Is. They match any
// operation.
var (
	// ErrUnknown covers every unexpected condition: no active user, an
	// unparseable request, a collaborator failure.
	ErrUnknown = &models.CredentialError{Kind: models.CredentialErrorUnknown}

	// ErrCancellation is reported when the caller cancels a request.
	ErrCancellation = &models.CredentialError{Kind: models.CredentialErrorCancellation}

	// ErrUnsupported is reported for operations the provider does not
	// implement.
	ErrUnsupported = &models.CredentialError{Kind: models.CredentialErrorUnsupported}
)

var errMissingRpID = errors.New("request options carry no rpId")

// UnknownError returns an unknown-kind error for op.
func UnknownError(op models.CredentialOp, message string) *models.CredentialError {
	return &models.CredentialError{Op: op, Kind: models.CredentialErrorUnknown, Message: message}
}

// CancellationError returns a cancellation error for op.
func CancellationError(op models.CredentialOp) *models.CredentialError {
	return &models.CredentialError{Op: op, Kind: models.CredentialErrorCancellation}
}

// UnsupportedError returns an unsupported-operation error for op.
func UnsupportedError(op models.CredentialOp) *models.CredentialError {
	return &models.CredentialError{Op: op, Kind: models.CredentialErrorUnsupported}
}

// toCredentialError maps any error onto the reported taxonomy. Errors that
// are not already credential errors become unknown errors without their
// message, so internal details never reach the caller.
func toCredentialError(op models.CredentialOp, err error) *models.CredentialError {
	var ce *models.CredentialError
	if errors.As(err, &ce) {
		out := *ce
		if out.Op == "" {
			out.Op = op
		}
		return &out
	}

	if errors.Is(err, context.Canceled) {
		return CancellationError(op)
	}

	return UnknownError(op, "")
}
