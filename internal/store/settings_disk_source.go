package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

type settingsDiskSource struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsDiskSource returns a SettingsDiskSource backed by db.
func NewSettingsDiskSource(db *DB, log *logger.Logger) SettingsDiskSource {
	return &settingsDiskSource{db: db, logger: log}
}

func (s *settingsDiskSource) GetVaultTimeout(ctx context.Context, userID string) (models.VaultTimeout, bool, error) {
	raw, ok, err := s.get(ctx, "vault_timeout", userID)
	if err != nil || !ok {
		return models.VaultTimeout{}, false, err
	}

	timeout, err := models.ParseVaultTimeout(raw)
	if err != nil {
		// A value written by a newer build is treated as unset.
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("ignoring stored vault timeout")
		return models.VaultTimeout{}, false, nil
	}
	return timeout, true, nil
}

func (s *settingsDiskSource) StoreVaultTimeout(ctx context.Context, userID string, timeout models.VaultTimeout) error {
	return s.store(ctx, "vault_timeout", userID, timeout.String())
}

func (s *settingsDiskSource) GetVaultTimeoutAction(ctx context.Context, userID string) (models.VaultTimeoutAction, bool, error) {
	raw, ok, err := s.get(ctx, "vault_timeout_action", userID)
	if err != nil || !ok {
		return 0, false, err
	}

	action, err := models.ParseVaultTimeoutAction(raw)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("ignoring stored vault timeout action")
		return 0, false, nil
	}
	return action, true, nil
}

func (s *settingsDiskSource) StoreVaultTimeoutAction(ctx context.Context, userID string, action models.VaultTimeoutAction) error {
	return s.store(ctx, "vault_timeout_action", userID, action.String())
}

func (s *settingsDiskSource) get(ctx context.Context, column, userID string) (string, bool, error) {
	query, args, err := selectSettingQuery(column, userID)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value sql.NullString
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsDiskSource.get").
			Str("column", column).
			Str("user_id", userID).
			Msg("error selecting setting")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value.String, value.Valid, nil
}

func (s *settingsDiskSource) store(ctx context.Context, column, userID, value string) error {
	query, args, err := upsertSettingQuery(column, userID, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsDiskSource.store").
			Str("column", column).
			Str("user_id", userID).
			Msg("error storing setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
