package store

import (
	"context"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StoredAccount is an account row: the public account fields plus the
// encrypted key material needed to unlock it.
type StoredAccount struct {
	Account             models.Account
	EncryptedUserKey    string
	EncryptedPrivateKey string
}

// AuthDiskSource persists accounts and per-user lock-lifecycle data, and
// publishes the current user state.
type AuthDiskSource interface {
	// Load reads the stored user state into memory. Call once at startup.
	Load(ctx context.Context) error

	// UserState returns the current user state, or nil if there are no
	// accounts.
	UserState() *models.UserState
	UserStateFlow() flow.Observable[*models.UserState]

	SaveAccount(ctx context.Context, account StoredAccount) error
	SetActiveUser(ctx context.Context, userID string) error
	SetLoggedIn(ctx context.Context, userID string, loggedIn bool) error

	GetEncryptedUserKey(ctx context.Context, userID string) (string, error)
	// GetPrivateKey returns the encrypted private key; ok is false if the
	// account has none.
	GetPrivateKey(ctx context.Context, userID string) (privateKey string, ok bool, err error)
	GetOrganizationKeys(ctx context.Context, userID string) (map[string]string, error)
	StoreOrganizationKeys(ctx context.Context, userID string, keys map[string]string) error

	GetLastActiveTimeMillis(ctx context.Context, userID string) (millis int64, ok bool, err error)
	// StoreLastActiveTimeMillis stores millis, or clears it when nil.
	StoreLastActiveTimeMillis(ctx context.Context, userID string, millis *int64) error

	// GetUserAutoUnlockKey returns nil when no key is cached.
	GetUserAutoUnlockKey(ctx context.Context, userID string) (models.Secret, error)
	// StoreUserAutoUnlockKey caches key, or erases it when key is nil.
	StoreUserAutoUnlockKey(ctx context.Context, userID string, key models.Secret) error
}

// SettingsDiskSource persists per-user vault timeout settings.
type SettingsDiskSource interface {
	GetVaultTimeout(ctx context.Context, userID string) (timeout models.VaultTimeout, ok bool, err error)
	StoreVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error
	GetVaultTimeoutAction(ctx context.Context, userID string) (action models.VaultTimeoutAction, ok bool, err error)
	StoreVaultTimeoutAction(ctx context.Context, userID string, action models.VaultTimeoutAction) error
}

// CipherFilter narrows ListCiphers. Nil pointers do not filter.
type CipherFilter struct {
	Type           *models.CipherType
	HasFido2       *bool
	IncludeDeleted bool
}

// CipherRepository stores encrypted vault items.
type CipherRepository interface {
	SaveCipher(ctx context.Context, cipher models.Cipher) error
	GetCipher(ctx context.Context, userID, cipherID string) (models.Cipher, error)
	ListCiphers(ctx context.Context, userID string, filter CipherFilter) ([]models.Cipher, error)
	DeleteCipher(ctx context.Context, userID, cipherID string) error
}
