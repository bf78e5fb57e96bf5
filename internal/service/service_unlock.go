package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/internal/vault"
	"github.com/MKhiriev/go-pass-provider/models"
)

type vaultUnlockService struct {
	disk  store.AuthDiskSource
	locks vault.VaultLockManager

	logger *logger.Logger
}

// NewVaultUnlockService returns a VaultUnlockService that reads the stored
// key material from disk and unlocks through locks.
func NewVaultUnlockService(disk store.AuthDiskSource, locks vault.VaultLockManager, logger *logger.Logger) VaultUnlockService {
	return &vaultUnlockService{
		disk:   disk,
		locks:  locks,
		logger: logger,
	}
}

// UnlockWithMasterPassword unlocks userID's vault. A wrong password is not an
// error: it yields VaultUnlockResultAuthenticationError.
func (s *vaultUnlockService) UnlockWithMasterPassword(ctx context.Context, userID, masterPassword string) (models.VaultUnlockResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" || masterPassword == "" {
		return models.VaultUnlockResultGenericError, ErrInvalidDataProvided
	}

	state := s.disk.UserState()
	if state == nil {
		return models.VaultUnlockResultInvalidStateError, ErrAccountNotFound
	}
	account, ok := state.Account(userID)
	if !ok {
		return models.VaultUnlockResultInvalidStateError, ErrAccountNotFound
	}

	encryptedUserKey, err := s.disk.GetEncryptedUserKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("reading encrypted user key failed")
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.VaultUnlockResultInvalidStateError, fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return models.VaultUnlockResultGenericError, fmt.Errorf("reading encrypted user key: %w", err)
	}

	privateKey, ok, err := s.disk.GetPrivateKey(ctx, userID)
	if err != nil {
		return models.VaultUnlockResultGenericError, fmt.Errorf("reading private key: %w", err)
	}
	if !ok {
		log.Warn().Str("user_id", userID).Msg("account has no private key")
		return models.VaultUnlockResultInvalidStateError, nil
	}

	orgKeys, err := s.disk.GetOrganizationKeys(ctx, userID)
	if err != nil {
		return models.VaultUnlockResultGenericError, fmt.Errorf("reading organization keys: %w", err)
	}
	if len(orgKeys) == 0 {
		orgKeys = nil
	}

	result := s.locks.UnlockVault(
		ctx,
		userID,
		account.Email,
		account.Kdf,
		privateKey,
		models.MasterPasswordMethod{Password: masterPassword, UserKey: encryptedUserKey},
		orgKeys,
	)

	log.Info().Str("user_id", userID).Stringer("result", result).Msg("master password unlock finished")
	return result, nil
}
