package service

import (
	"context"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -mock_names=AuthRepository=MockServiceAuthRepository,VaultRepository=MockServiceVaultRepository,AutofillCipherProvider=MockServiceAutofillCipherProvider,SettingsRepository=MockServiceSettingsRepository

// AuthRepository exposes the accounts on the device with their current lock
// state.
type AuthRepository interface {
	// UserState returns nil when no account is logged in.
	UserState() *models.UserState
	SwitchAccount(ctx context.Context, userID string) error
}

// SettingsRepository holds per-user vault timeout settings. Accounts without
// stored settings use the configured defaults.
type SettingsRepository interface {
	VaultTimeoutFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeout]
	VaultTimeoutActionFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeoutAction]
	SetVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error
	SetVaultTimeoutAction(ctx context.Context, userID string, action models.VaultTimeoutAction) error
}

// ForegroundManager tracks whether the hosting app is visible.
type ForegroundManager interface {
	ForegroundStateFlow() flow.Observable[models.AppForegroundState]
	SetForegroundState(state models.AppForegroundState)
}

// LogoutManager logs accounts out without removing them from the device.
type LogoutManager interface {
	SoftLogout(ctx context.Context, userID string) error
}

// VaultRepository reads and writes the logins of unlocked vaults.
type VaultRepository interface {
	GetFido2Ciphers(ctx context.Context, userID string) ([]models.Cipher, error)
	DecryptFido2CredentialAutofillViews(ctx context.Context, userID string, ciphers ...models.Cipher) ([]models.Fido2CredentialAutofillView, error)

	// SaveLogin encrypts and stores a new login for uri.
	SaveLogin(ctx context.Context, userID string, login models.LoginCredential, uri string) (models.Cipher, error)
	GetLogin(ctx context.Context, userID, cipherID string) (models.LoginCredential, error)
}

// AutofillCipherProvider finds the logins of a vault that match a URI.
type AutofillCipherProvider interface {
	GetLoginAutofillCiphers(ctx context.Context, userID, uri string) ([]models.LoginCredential, error)
}

// VaultUnlockService unlocks a vault with the account's master password.
type VaultUnlockService interface {
	UnlockWithMasterPassword(ctx context.Context, userID, masterPassword string) (models.VaultUnlockResult, error)
}

// AccountService provisions accounts on the device.
type AccountService interface {
	CreateAccount(ctx context.Context, request models.NewAccountRequest) (models.Account, error)
}
