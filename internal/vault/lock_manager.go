// Package vault tracks which vaults on the device are unlocked and applies
// each user's vault timeout as the app moves between foreground and
// background and as the active account changes.
package vault

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

type lockManager struct {
	authDisk   AuthDiskSource
	sdk        VaultSDKSource
	settings   SettingsRepository
	foreground AppForegroundManager
	logout     UserLogoutManager
	logger     *logger.Logger

	// nowMillis is the clock used for last-active bookkeeping.
	nowMillis func() int64

	state *flow.State[models.VaultState]

	tasks tasks
}

// tasks counts observer callbacks and detached goroutines that touch the
// store. Once closed it admits nothing new.
type tasks struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func (t *tasks) enter() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}
	t.wg.Add(1)
	return true
}

func (t *tasks) leave() {
	t.wg.Done()
}

func (t *tasks) goTracked(fn func()) bool {
	if !t.enter() {
		return false
	}
	go func() {
		defer t.leave()
		fn()
	}()
	return true
}

// guarded wraps a subscription callback so that it runs as a task.
func guarded[T any](t *tasks, callback func(T)) func(T) {
	return func(v T) {
		if !t.enter() {
			return
		}
		defer t.leave()
		callback(v)
	}
}

// closeAndWait blocks until every admitted task has finished.
func (t *tasks) closeAndWait() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.wg.Wait()
}

// Option configures a lock manager.
type Option func(*lockManager)

// WithClock replaces the wall clock used for last-active timestamps.
func WithClock(nowMillis func() int64) Option {
	return func(m *lockManager) {
		m.nowMillis = nowMillis
	}
}

// NewLockManager returns a VaultLockManager with every vault locked. The
// lifecycle observers start when Run is called.
func NewLockManager(
	authDisk AuthDiskSource,
	sdk VaultSDKSource,
	settings SettingsRepository,
	foreground AppForegroundManager,
	logout UserLogoutManager,
	log *logger.Logger,
	opts ...Option,
) VaultLockManager {
	m := &lockManager{
		authDisk:   authDisk,
		sdk:        sdk,
		settings:   settings,
		foreground: foreground,
		logout:     logout,
		logger:     log,
		nowMillis:  func() int64 { return time.Now().UnixMilli() },
		state: flow.NewWithEqual(models.NewVaultState(), func(a, b models.VaultState) bool {
			return a.Equal(b)
		}),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *lockManager) VaultStateFlow() flow.Observable[models.VaultState] {
	return m.state
}

func (m *lockManager) IsVaultUnlocked(userID string) bool {
	return m.state.Value().IsUnlocked(userID)
}

func (m *lockManager) IsVaultUnlocking(userID string) bool {
	return m.state.Value().IsUnlocking(userID)
}

func (m *lockManager) LockVault(ctx context.Context, userID string) {
	m.sdk.ClearCrypto(userID)

	m.state.Update(func(s models.VaultState) models.VaultState {
		if !s.IsUnlocked(userID) {
			return s
		}
		next := s.Clone()
		delete(next.UnlockedUserIDs, userID)
		return next
	})

	if err := m.authDisk.StoreUserAutoUnlockKey(ctx, userID, nil); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "lockManager.LockVault").
			Str("user_id", userID).
			Msg("error clearing auto-unlock key")
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Msg("vault locked")
}

func (m *lockManager) LockVaultForCurrentUser(ctx context.Context) {
	if userID := m.activeUserID(); userID != "" {
		m.LockVault(ctx, userID)
	}
}

func (m *lockManager) UnlockVault(
	ctx context.Context,
	userID, email string,
	kdf models.Kdf,
	privateKey string,
	method models.InitUserCryptoMethod,
	organizationKeys map[string]string,
) models.VaultUnlockResult {
	log := logger.FromContext(ctx)

	m.setUnlocking(userID)
	defer m.setNotUnlocking(userID)

	result, err := m.sdk.InitializeCrypto(ctx, userID, models.InitUserCryptoRequest{
		Kdf:        kdf,
		Email:      email,
		PrivateKey: privateKey,
		Method:     method,
	})
	userCryptoReady := err == nil && result == models.InitializeCryptoSuccess
	if userCryptoReady && organizationKeys != nil {
		result, err = m.sdk.InitializeOrganizationCrypto(ctx, userID, models.InitOrgCryptoRequest{
			OrganizationKeys: organizationKeys,
		})
	}

	unlockResult := models.VaultUnlockResultGenericError
	if err != nil {
		log.Err(err).Str("func", "lockManager.UnlockVault").Str("user_id", userID).Msg("error initializing crypto")
	} else {
		unlockResult = result.ToVaultUnlockResult()
	}

	switch {
	case unlockResult == models.VaultUnlockResultSuccess:
		m.setUnlocked(ctx, userID)
	case userCryptoReady:
		// user crypto is live but organization crypto failed
		m.discardCrypto(userID)
	}

	log.Debug().Str("user_id", userID).Stringer("result", unlockResult).Msg("vault unlock finished")
	return unlockResult
}

// discardCrypto drops the user's crypto context and marks the vault locked
// without touching the cached auto-unlock key.
func (m *lockManager) discardCrypto(userID string) {
	m.sdk.ClearCrypto(userID)
	m.state.Update(func(s models.VaultState) models.VaultState {
		if !s.IsUnlocked(userID) {
			return s
		}
		next := s.Clone()
		delete(next.UnlockedUserIDs, userID)
		return next
	})
}

func (m *lockManager) setUnlocking(userID string) {
	m.state.Update(func(s models.VaultState) models.VaultState {
		next := s.Clone()
		next.UnlockingUserIDs[userID] = struct{}{}
		return next
	})
}

func (m *lockManager) setNotUnlocking(userID string) {
	m.state.Update(func(s models.VaultState) models.VaultState {
		if !s.IsUnlocking(userID) {
			return s
		}
		next := s.Clone()
		delete(next.UnlockingUserIDs, userID)
		return next
	})
}

// setUnlocked moves userID from the unlocking set to the unlocked set in a
// single update, then caches the auto-unlock key if the user's timeout is
// Never.
func (m *lockManager) setUnlocked(ctx context.Context, userID string) {
	m.state.Update(func(s models.VaultState) models.VaultState {
		next := s.Clone()
		next.UnlockedUserIDs[userID] = struct{}{}
		delete(next.UnlockingUserIDs, userID)
		return next
	})

	m.storeUserAutoUnlockKeyIfNecessary(ctx, userID)
}

func (m *lockManager) storeUserAutoUnlockKeyIfNecessary(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	if m.settings.VaultTimeoutFlow(ctx, userID).Value() != models.VaultTimeoutNever {
		return
	}

	key, err := m.authDisk.GetUserAutoUnlockKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.storeUserAutoUnlockKeyIfNecessary").Str("user_id", userID).Msg("error reading auto-unlock key")
		return
	}
	if !key.IsEmpty() {
		return
	}

	// The unlock has already succeeded; caching must not hold it up or be
	// cancelled with the caller's request.
	ctx = context.WithoutCancel(ctx)
	if !m.tasks.goTracked(func() { m.cacheUserAutoUnlockKey(ctx, userID) }) {
		log.Debug().Str("user_id", userID).Msg("lock manager stopped, auto-unlock key not cached")
	}
}

// cacheUserAutoUnlockKey copies the user's decrypted key to disk. Failures
// are logged and leave any previously stored key in place.
func (m *lockManager) cacheUserAutoUnlockKey(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	key, err := m.sdk.GetUserEncryptionKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.cacheUserAutoUnlockKey").Str("user_id", userID).Msg("error getting user encryption key")
		return
	}

	if err = m.authDisk.StoreUserAutoUnlockKey(ctx, userID, key); err != nil {
		log.Err(err).Str("func", "lockManager.cacheUserAutoUnlockKey").Str("user_id", userID).Msg("error storing auto-unlock key")
	}
}

// unlockVaultForUser unlocks with the account data stored on disk.
func (m *lockManager) unlockVaultForUser(ctx context.Context, userID string, method models.InitUserCryptoMethod) models.VaultUnlockResult {
	log := logger.FromContext(ctx)

	state := m.authDisk.UserState()
	if state == nil {
		return models.VaultUnlockResultInvalidStateError
	}
	account, ok := state.Account(userID)
	if !ok {
		return models.VaultUnlockResultInvalidStateError
	}

	privateKey, ok, err := m.authDisk.GetPrivateKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.unlockVaultForUser").Str("user_id", userID).Msg("error reading private key")
		return models.VaultUnlockResultGenericError
	}
	if !ok {
		return models.VaultUnlockResultInvalidStateError
	}

	orgKeys, err := m.authDisk.GetOrganizationKeys(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.unlockVaultForUser").Str("user_id", userID).Msg("error reading organization keys")
		return models.VaultUnlockResultGenericError
	}
	if len(orgKeys) == 0 {
		orgKeys = nil
	}

	return m.UnlockVault(ctx, userID, account.Email, account.Kdf, privateKey, method, orgKeys)
}

func (m *lockManager) activeUserID() string {
	if state := m.authDisk.UserState(); state != nil {
		return state.ActiveUserID
	}
	return ""
}

func (m *lockManager) userIDs() []string {
	if state := m.authDisk.UserState(); state != nil {
		return state.UserIDs()
	}
	return nil
}

// Run starts the lifecycle observers and blocks until ctx is done. It
// returns only after running observer callbacks and pending key caching
// have finished, so the store can be closed afterwards.
func (m *lockManager) Run(ctx context.Context) error {
	ctx = m.logger.WithContext(ctx)

	stopForeground := m.observeAppForegroundChanges(ctx)
	stopUserSwitch := m.observeUserSwitchingChanges(ctx)
	stopTimeouts := m.observeVaultTimeoutChanges(ctx)

	m.logger.Info().Msg("vault lock manager started")
	<-ctx.Done()

	stopForeground()
	stopUserSwitch()
	stopTimeouts()
	m.tasks.closeAndWait()

	m.logger.Info().Msg("vault lock manager stopped")
	return nil
}
