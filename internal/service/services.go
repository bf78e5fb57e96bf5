package service

import (
	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/internal/vault"
)

// Services is the set of collaborators behind the lock manager and the
// credential pipeline.
type Services struct {
	Auth       AuthRepository
	Settings   SettingsRepository
	Foreground ForegroundManager
	Logout     LogoutManager
	Vault      VaultRepository
	Autofill   AutofillCipherProvider
	Unlock     VaultUnlockService
	Accounts   AccountService

	LockManager vault.VaultLockManager
}

func NewServices(storages *store.Storages, sdk crypto.VaultSDK, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	settings := NewSettingsRepository(storages.SettingsDiskSource, cfg.DefaultVaultTimeout(), cfg.DefaultVaultTimeoutAction(), logger)
	foreground := NewForegroundManager()
	logout := NewLogoutManager(storages.AuthDiskSource, logger)
	locks := vault.NewLockManager(storages.AuthDiskSource, sdk, settings, foreground, logout, logger)

	return &Services{
		Auth:        NewAuthRepository(storages.AuthDiskSource, locks, logger),
		Settings:    settings,
		Foreground:  foreground,
		Logout:      logout,
		Vault:       NewVaultRepository(storages.CipherRepository, sdk, logger),
		Autofill:    NewAutofillCipherProvider(storages.CipherRepository, sdk, logger),
		Unlock:      NewVaultUnlockService(storages.AuthDiskSource, locks, logger),
		Accounts:    NewAccountService(storages.AuthDiskSource, sdk, cfg.Vault, logger),
		LockManager: locks,
	}
}
