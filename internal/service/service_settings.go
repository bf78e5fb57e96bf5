package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/models"
)

// settingsRepository keeps one observable value per user and setting,
// created on first use from disk or the configured defaults.
type settingsRepository struct {
	disk store.SettingsDiskSource

	defaultTimeout models.VaultTimeout
	defaultAction  models.VaultTimeoutAction

	mu       sync.Mutex
	timeouts map[string]*flow.State[models.VaultTimeout]
	actions  map[string]*flow.State[models.VaultTimeoutAction]

	logger *logger.Logger
}

// NewSettingsRepository returns a SettingsRepository backed by disk.
func NewSettingsRepository(
	disk store.SettingsDiskSource,
	defaultTimeout models.VaultTimeout,
	defaultAction models.VaultTimeoutAction,
	logger *logger.Logger,
) SettingsRepository {
	return &settingsRepository{
		disk:           disk,
		defaultTimeout: defaultTimeout,
		defaultAction:  defaultAction,
		timeouts:       make(map[string]*flow.State[models.VaultTimeout]),
		actions:        make(map[string]*flow.State[models.VaultTimeoutAction]),
		logger:         logger,
	}
}

func (r *settingsRepository) VaultTimeoutFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeout] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.timeoutStateLocked(ctx, userID)
}

func (r *settingsRepository) VaultTimeoutActionFlow(ctx context.Context, userID string) flow.Observable[models.VaultTimeoutAction] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.actionStateLocked(ctx, userID)
}

func (r *settingsRepository) SetVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error {
	if userID == "" {
		return ErrInvalidDataProvided
	}
	if err := r.disk.StoreVaultTimeout(ctx, userID, timeout); err != nil {
		return fmt.Errorf("storing vault timeout: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeoutStateLocked(ctx, userID).Set(timeout)

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Stringer("timeout", timeout).
		Msg("vault timeout changed")
	return nil
}

func (r *settingsRepository) SetVaultTimeoutAction(ctx context.Context, userID string, action models.VaultTimeoutAction) error {
	if userID == "" {
		return ErrInvalidDataProvided
	}
	if err := r.disk.StoreVaultTimeoutAction(ctx, userID, action); err != nil {
		return fmt.Errorf("storing vault timeout action: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.actionStateLocked(ctx, userID).Set(action)

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Stringer("action", action).
		Msg("vault timeout action changed")
	return nil
}

func (r *settingsRepository) timeoutStateLocked(ctx context.Context, userID string) *flow.State[models.VaultTimeout] {
	if s, ok := r.timeouts[userID]; ok {
		return s
	}

	timeout := r.defaultTimeout
	stored, ok, err := r.disk.GetVaultTimeout(ctx, userID)
	switch {
	case err != nil:
		r.logger.Err(err).Str("user_id", userID).Msg("error reading vault timeout, using default")
	case ok:
		timeout = stored
	}

	s := flow.New(timeout)
	r.timeouts[userID] = s
	return s
}

func (r *settingsRepository) actionStateLocked(ctx context.Context, userID string) *flow.State[models.VaultTimeoutAction] {
	if s, ok := r.actions[userID]; ok {
		return s
	}

	action := r.defaultAction
	stored, ok, err := r.disk.GetVaultTimeoutAction(ctx, userID)
	switch {
	case err != nil:
		r.logger.Err(err).Str("user_id", userID).Msg("error reading vault timeout action, using default")
	case ok:
		action = stored
	}

	s := flow.New(action)
	r.actions[userID] = s
	return s
}
