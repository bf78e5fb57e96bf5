package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
)

type logoutManager struct {
	disk store.AuthDiskSource

	logger *logger.Logger
}

// NewLogoutManager returns a LogoutManager backed by disk.
func NewLogoutManager(disk store.AuthDiskSource, logger *logger.Logger) LogoutManager {
	return &logoutManager{
		disk:   disk,
		logger: logger,
	}
}

// SoftLogout marks userID logged out and forgets its cached auto-unlock key
// and last-active time. The account and its encrypted keys stay on disk.
func (m *logoutManager) SoftLogout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := m.disk.SetLoggedIn(ctx, userID, false); err != nil {
		log.Err(err).Str("user_id", userID).Msg("soft logout failed")
		if errors.Is(err, store.ErrAccountNotFound) {
			return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
		}
		return fmt.Errorf("soft logout failed: %w", err)
	}

	if err := m.disk.StoreUserAutoUnlockKey(ctx, userID, nil); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error clearing auto-unlock key on logout")
	}
	if err := m.disk.StoreLastActiveTimeMillis(ctx, userID, nil); err != nil {
		log.Err(err).Str("user_id", userID).Msg("error clearing last-active time on logout")
	}

	log.Info().Str("user_id", userID).Msg("account soft logged out")
	return nil
}
