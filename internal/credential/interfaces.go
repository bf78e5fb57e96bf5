package credential

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_mock.go -package=mock

// Fido2Processor builds passkey entries. requestCode is shared with the
// other processors of the same request.
type Fido2Processor interface {
	// ProcessCreateCredentialRequest returns nil when the request carries
	// no usable creation options.
	ProcessCreateCredentialRequest(
		ctx context.Context,
		requestCode *atomic.Int32,
		userState *models.UserState,
		request models.BeginCreatePublicKeyCredentialRequest,
	) (*models.BeginCreateCredentialResponse, error)

	ProcessGetCredentialRequest(
		ctx context.Context,
		requestCode *atomic.Int32,
		activeUserID string,
		options []models.BeginGetPublicKeyCredentialOption,
	) ([]models.CredentialEntry, error)
}

// PasswordProcessor builds username/password entries.
type PasswordProcessor interface {
	ProcessCreateCredentialRequest(
		ctx context.Context,
		requestCode *atomic.Int32,
		userState *models.UserState,
		request models.BeginCreatePasswordCredentialRequest,
	) (*models.BeginCreateCredentialResponse, error)

	ProcessGetCredentialRequest(
		ctx context.Context,
		requestCode *atomic.Int32,
		activeUserID string,
		callingApp *models.CallingAppInfo,
		options []models.BeginGetPasswordOption,
	) ([]models.CredentialEntry, error)
}

// AuthRepository exposes the accounts on the device.
type AuthRepository interface {
	// UserState returns nil when no account is logged in.
	UserState() *models.UserState
}

// IntentManager creates activation handles.
type IntentManager interface {
	CreatePendingIntent(action string, requestCode int32, extras models.PendingIntentExtras) (models.PendingIntent, error)
}

// VaultRepository gives access to the active user's passkeys.
type VaultRepository interface {
	// GetFido2Ciphers returns the user's non-deleted ciphers that carry
	// passkeys.
	GetFido2Ciphers(ctx context.Context, userID string) ([]models.Cipher, error)
	DecryptFido2CredentialAutofillViews(ctx context.Context, userID string, ciphers ...models.Cipher) ([]models.Fido2CredentialAutofillView, error)
}

// AutofillCipherProvider finds logins for a URI.
type AutofillCipherProvider interface {
	GetLoginAutofillCiphers(ctx context.Context, userID, uri string) ([]models.LoginCredential, error)
}

// ActivityHost is the screen that resumed from an activation handle.
type ActivityHost interface {
	SetResult(code models.ActivityResultCode, result models.ActivityResult)
	Finish()
}
