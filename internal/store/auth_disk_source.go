package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

type authDiskSource struct {
	db     *DB
	logger *logger.Logger
	state  *flow.State[*models.UserState]
}

// NewAuthDiskSource returns an AuthDiskSource backed by db. Call Load before
// reading UserState.
func NewAuthDiskSource(db *DB, log *logger.Logger) AuthDiskSource {
	return &authDiskSource{
		db:     db,
		logger: log,
		state:  flow.NewWithEqual[*models.UserState](nil, userStateEqual),
	}
}

func userStateEqual(a, b *models.UserState) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ActiveUserID == b.ActiveUserID && slices.Equal(a.Accounts, b.Accounts)
}

func (s *authDiskSource) Load(ctx context.Context) error {
	return s.reload(ctx)
}

func (s *authDiskSource) UserState() *models.UserState {
	return s.state.Value()
}

func (s *authDiskSource) UserStateFlow() flow.Observable[*models.UserState] {
	return s.state
}

// reload reads every account and the active user id and publishes the
// result. An active id that no longer matches an account falls back to the
// first account.
func (s *authDiskSource) reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := selectAccountsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "authDiskSource.reload").Msg("error selecting accounts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var (
			a       models.Account
			kdfType int
		)
		if err = rows.Scan(
			&a.UserID, &a.Email, &a.Name,
			&kdfType, &a.Kdf.Iterations, &a.Kdf.MemoryKiB, &a.Kdf.Parallelism,
			&a.IsLoggedIn,
		); err != nil {
			log.Err(err).Str("func", "authDiskSource.reload").Msg("error scanning account")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		a.Kdf.Type = models.KdfType(kdfType)
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(accounts) == 0 {
		s.state.Set(nil)
		return nil
	}

	activeID, err := s.activeUserID(ctx)
	if err != nil {
		return err
	}

	state := &models.UserState{ActiveUserID: activeID, Accounts: accounts}
	if _, ok := state.ActiveAccount(); !ok {
		state.ActiveUserID = accounts[0].UserID
	}
	for i := range state.Accounts {
		state.Accounts[i].IsActive = state.Accounts[i].UserID == state.ActiveUserID
	}

	s.state.Set(state)
	return nil
}

func (s *authDiskSource) activeUserID(ctx context.Context) (string, error) {
	query, args, err := selectAppStateQuery(activeUserKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authDiskSource.activeUserID").Msg("error selecting active user")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return id, nil
}

func (s *authDiskSource) SaveAccount(ctx context.Context, account StoredAccount) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "authDiskSource.SaveAccount").Str("user_id", account.Account.UserID).Msg("error saving account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// The first account on the device becomes active.
	if current := s.state.Value(); current == nil || current.ActiveUserID == "" {
		return s.SetActiveUser(ctx, account.Account.UserID)
	}
	return s.reload(ctx)
}

func (s *authDiskSource) SetActiveUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetEncryptedUserKey(ctx, userID); err != nil {
		return err
	}

	query, args, err := upsertAppStateQuery(activeUserKey, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "authDiskSource.SetActiveUser").Str("user_id", userID).Msg("error storing active user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return s.reload(ctx)
}

func (s *authDiskSource) SetLoggedIn(ctx context.Context, userID string, loggedIn bool) error {
	log := logger.FromContext(ctx)

	query, args, err := updateLoggedInQuery(userID, loggedIn)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "authDiskSource.SetLoggedIn").Str("user_id", userID).Msg("error updating account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAccountNotFound
	}

	return s.reload(ctx)
}

func (s *authDiskSource) GetEncryptedUserKey(ctx context.Context, userID string) (string, error) {
	key, err := s.accountColumn(ctx, "encrypted_user_key", userID)
	if err != nil {
		return "", err
	}
	return key.String, nil
}

func (s *authDiskSource) GetPrivateKey(ctx context.Context, userID string) (string, bool, error) {
	key, err := s.accountColumn(ctx, "encrypted_private_key", userID)
	if err != nil {
		return "", false, err
	}
	return key.String, key.Valid && key.String != "", nil
}

func (s *authDiskSource) accountColumn(ctx context.Context, column, userID string) (sql.NullString, error) {
	var value sql.NullString

	query, args, err := selectAccountColumnQuery(column, userID)
	if err != nil {
		return value, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return value, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authDiskSource.accountColumn").
			Str("column", column).
			Str("user_id", userID).
			Msg("error selecting account column")
		return value, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func (s *authDiskSource) GetOrganizationKeys(ctx context.Context, userID string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectOrganizationKeysQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "authDiskSource.GetOrganizationKeys").Str("user_id", userID).Msg("error selecting organization keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make(map[string]string)
	for rows.Next() {
		var orgID, key string
		if err = rows.Scan(&orgID, &key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys[orgID] = key
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return keys, nil
}

// StoreOrganizationKeys replaces the user's organization keys.
func (s *authDiskSource) StoreOrganizationKeys(ctx context.Context, userID string, keys map[string]string) (err error) {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "authDiskSource.StoreOrganizationKeys").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := deleteOrganizationKeysQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "authDiskSource.StoreOrganizationKeys").Str("user_id", userID).Msg("error deleting organization keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(keys) > 0 {
		orgIDs := make([]string, 0, len(keys))
		for id := range keys {
			orgIDs = append(orgIDs, id)
		}
		slices.Sort(orgIDs)

		query, args, err = insertOrganizationKeysQuery(userID, keys, orgIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "authDiskSource.StoreOrganizationKeys").Str("user_id", userID).Msg("error inserting organization keys")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "authDiskSource.StoreOrganizationKeys").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *authDiskSource) GetLastActiveTimeMillis(ctx context.Context, userID string) (int64, bool, error) {
	var millis sql.NullInt64
	found, err := s.vaultStateColumn(ctx, "last_active_time_ms", userID, &millis)
	if err != nil || !found {
		return 0, false, err
	}
	return millis.Int64, millis.Valid, nil
}

func (s *authDiskSource) StoreLastActiveTimeMillis(ctx context.Context, userID string, millis *int64) error {
	var value any
	if millis != nil {
		value = *millis
	}
	return s.storeVaultStateColumn(ctx, "last_active_time_ms", userID, value)
}

func (s *authDiskSource) GetUserAutoUnlockKey(ctx context.Context, userID string) (models.Secret, error) {
	var key models.Secret
	if _, err := s.vaultStateColumn(ctx, "auto_unlock_key", userID, &key); err != nil {
		return nil, err
	}
	if key.IsEmpty() {
		return nil, nil
	}
	return key, nil
}

func (s *authDiskSource) StoreUserAutoUnlockKey(ctx context.Context, userID string, key models.Secret) error {
	var value any
	if !key.IsEmpty() {
		value = key.Bytes()
	}
	return s.storeVaultStateColumn(ctx, "auto_unlock_key", userID, value)
}

func (s *authDiskSource) vaultStateColumn(ctx context.Context, column, userID string, dest any) (bool, error) {
	query, args, err := selectVaultStateColumnQuery(column, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(dest)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authDiskSource.vaultStateColumn").
			Str("column", column).
			Str("user_id", userID).
			Msg("error selecting vault state")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

func (s *authDiskSource) storeVaultStateColumn(ctx context.Context, column, userID string, value any) error {
	query, args, err := upsertVaultStateColumnQuery(column, userID, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authDiskSource.storeVaultStateColumn").
			Str("column", column).
			Str("user_id", userID).
			Msg("error storing vault state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
