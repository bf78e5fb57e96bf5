package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/intent"
	"github.com/MKhiriev/go-pass-provider/internal/service"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/models"
)

// statusClientClosedRequest is the de facto status for requests abandoned
// by the caller.
const statusClientClosedRequest = 499

var errorStatusMap = map[error]int{
	ErrUnknownCredentialType:   http.StatusBadRequest,
	ErrUnknownLifecycleState:   http.StatusBadRequest,
	ErrUnknownCompletionStatus: http.StatusBadRequest,
	ErrEmptyUserID:             http.StatusBadRequest,

	credential.ErrUnknown:      http.StatusUnprocessableEntity,
	credential.ErrCancellation: statusClientClosedRequest,
	credential.ErrUnsupported:  http.StatusNotImplemented,

	intent.ErrInvalidHandle:  http.StatusForbidden,
	intent.ErrActionMismatch: http.StatusForbidden,
	intent.ErrHandleExpired:  http.StatusGone,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrAccountNotFound:     http.StatusNotFound,
	service.ErrVaultLocked:         http.StatusLocked,
	service.ErrCipherNotLogin:      http.StatusUnprocessableEntity,

	models.ErrInvalidVaultTimeout:       http.StatusBadRequest,
	models.ErrInvalidVaultTimeoutAction: http.StatusBadRequest,

	crypto.ErrCryptoNotInitialized: http.StatusLocked,

	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrCipherNotFound:  http.StatusNotFound,
	store.ErrCipherNotSaved:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// statusFromUnlockResult maps a failed unlock onto a status. Success is
// never passed here.
func statusFromUnlockResult(result models.VaultUnlockResult) int {
	switch result {
	case models.VaultUnlockResultAuthenticationError:
		return http.StatusUnauthorized
	case models.VaultUnlockResultInvalidStateError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
