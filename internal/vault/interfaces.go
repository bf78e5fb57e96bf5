package vault

import (
	"context"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock -mock_names=AuthDiskSource=MockLockStateDiskSource,SettingsRepository=MockVaultSettingsRepository

// VaultLockManager owns the in-memory lock state of every vault on the
// device and enforces the configured vault timeouts.
type VaultLockManager interface {
	VaultStateFlow() flow.Observable[models.VaultState]

	IsVaultUnlocked(userID string) bool
	IsVaultUnlocking(userID string) bool

	// LockVault is idempotent. It drops the user's decrypted keys and any
	// cached auto-unlock key.
	LockVault(ctx context.Context, userID string)
	LockVaultForCurrentUser(ctx context.Context)

	// UnlockVault initializes the user's crypto (and organization crypto
	// when organizationKeys is non-nil). The user is never left in the
	// unlocking set once it returns.
	UnlockVault(
		ctx context.Context,
		userID, email string,
		kdf models.Kdf,
		privateKey string,
		method models.InitUserCryptoMethod,
		organizationKeys map[string]string,
	) models.VaultUnlockResult

	// Run observes app lifecycle, account switches and timeout settings
	// until ctx is done.
	Run(ctx context.Context) error
}

// AuthDiskSource is the persisted per-user state the lock manager reads
// and writes.
type AuthDiskSource interface {
	UserState() *models.UserState
	UserStateFlow() flow.Observable[*models.UserState]

	GetPrivateKey(ctx context.Context, userID string) (privateKey string, ok bool, err error)
	GetOrganizationKeys(ctx context.Context, userID string) (map[string]string, error)

	GetLastActiveTimeMillis(ctx context.Context, userID string) (millis int64, ok bool, err error)
	StoreLastActiveTimeMillis(ctx context.Context, userID string, millis *int64) error

	GetUserAutoUnlockKey(ctx context.Context, userID string) (models.Secret, error)
	StoreUserAutoUnlockKey(ctx context.Context, userID string, key models.Secret) error
}

// VaultSDKSource holds decrypted key material per user.
type VaultSDKSource interface {
	InitializeCrypto(ctx context.Context, userID string, request models.InitUserCryptoRequest) (models.InitializeCryptoResult, error)
	InitializeOrganizationCrypto(ctx context.Context, userID string, request models.InitOrgCryptoRequest) (models.InitializeCryptoResult, error)
	ClearCrypto(userID string)
	GetUserEncryptionKey(ctx context.Context, userID string) (models.Secret, error)
}

// SettingsRepository exposes each user's vault timeout settings.
type SettingsRepository interface {
	VaultTimeoutFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeout]
	VaultTimeoutActionFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeoutAction]
}

// AppForegroundManager reports whether the hosting app is visible.
type AppForegroundManager interface {
	ForegroundStateFlow() flow.Observable[models.AppForegroundState]
}

// UserLogoutManager performs the logout half of a timeout action.
type UserLogoutManager interface {
	// SoftLogout marks the user logged out but keeps the account on the
	// device.
	SoftLogout(ctx context.Context, userID string) error
}
