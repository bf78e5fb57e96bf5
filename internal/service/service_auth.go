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

// authRepository joins the persisted accounts with the in-memory lock state.
type authRepository struct {
	disk  store.AuthDiskSource
	locks vault.VaultLockManager

	logger *logger.Logger
}

// NewAuthRepository returns an AuthRepository whose accounts report
// IsVaultUnlocked from locks.
func NewAuthRepository(disk store.AuthDiskSource, locks vault.VaultLockManager, logger *logger.Logger) AuthRepository {
	return &authRepository{
		disk:   disk,
		locks:  locks,
		logger: logger,
	}
}

func (r *authRepository) UserState() *models.UserState {
	state := r.disk.UserState()
	if state == nil {
		return nil
	}

	out := state.Clone()
	for i := range out.Accounts {
		out.Accounts[i].IsVaultUnlocked = r.locks.IsVaultUnlocked(out.Accounts[i].UserID)
	}

	return &out
}

// SwitchAccount makes userID the active account.
func (r *authRepository) SwitchAccount(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := r.disk.SetActiveUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("switching account failed")
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return fmt.Errorf("switching account failed: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("active account switched")
	return nil
}
