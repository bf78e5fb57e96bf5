package vault

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

// Each observer runs on its subscription's delivery goroutine, so the state
// captured by its callback is never touched concurrently.

// observeAppForegroundChanges records the active user's last-active time
// when the app is backgrounded and checks every user's timeout when it
// comes back. The first foreground since start counts as an app restart.
func (m *lockManager) observeAppForegroundChanges(ctx context.Context) (stop func()) {
	isFirstDelivery := true
	isFirstForeground := true

	return m.foreground.ForegroundStateFlow().Subscribe(guarded(&m.tasks, func(state models.AppForegroundState) {
		// The app starts in the background; that initial state is not a
		// transition and records nothing.
		if isFirstDelivery {
			isFirstDelivery = false
			if state == models.AppBackgrounded {
				return
			}
		}

		switch state {
		case models.AppBackgrounded:
			if userID := m.activeUserID(); userID != "" {
				m.updateLastActiveTime(ctx, userID)
			}

		case models.AppForegrounded:
			for _, userID := range m.userIDs() {
				// Clearing the last-active time on restart makes every
				// finite timeout expire.
				if isFirstForeground {
					m.storeLastActiveTime(ctx, userID, nil)
				}
				m.checkForVaultTimeout(ctx, userID, isFirstForeground)
			}
			isFirstForeground = false
		}
	}))
}

// observeUserSwitchingChanges handles timeouts for both sides of an
// account switch.
func (m *lockManager) observeUserSwitchingChanges(ctx context.Context) (stop func()) {
	// Seeded with the current user so the first emission is never taken
	// for a switch.
	lastActiveUserID := m.activeUserID()

	return m.authDisk.UserStateFlow().Subscribe(guarded(&m.tasks, func(state *models.UserState) {
		if state == nil || state.ActiveUserID == "" || state.ActiveUserID == lastActiveUserID {
			return
		}

		previous := lastActiveUserID
		lastActiveUserID = state.ActiveUserID
		if previous == "" {
			return
		}

		m.handleUserSwitch(ctx, previous, state.ActiveUserID)
	}))
}

func (m *lockManager) handleUserSwitch(ctx context.Context, previousUserID, currentUserID string) {
	logger.FromContext(ctx).Debug().
		Str("from_user_id", previousUserID).
		Str("to_user_id", currentUserID).
		Msg("active user switched")

	m.checkForVaultTimeout(ctx, previousUserID, false)
	m.updateLastActiveTime(ctx, previousUserID)

	m.checkForVaultTimeout(ctx, currentUserID, false)
	m.updateLastActiveTime(ctx, currentUserID)
}

// observeVaultTimeoutChanges follows the vault timeout setting of every
// known user, resubscribing whenever the set of users changes.
func (m *lockManager) observeVaultTimeoutChanges(ctx context.Context) (stop func()) {
	var (
		mu       sync.Mutex
		stopped  bool
		userIDs  []string
		perUser  []func()
		stopUser = func() {
			for _, unsubscribe := range perUser {
				unsubscribe()
			}
			perUser = nil
		}
	)

	unsubscribe := m.authDisk.UserStateFlow().Subscribe(guarded(&m.tasks, func(state *models.UserState) {
		var ids []string
		if state != nil {
			ids = state.UserIDs()
			slices.Sort(ids)
		}

		mu.Lock()
		defer mu.Unlock()

		if stopped || (userIDs != nil && slices.Equal(ids, userIDs)) {
			return
		}
		if ids == nil {
			ids = []string{}
		}
		userIDs = ids

		stopUser()
		for _, userID := range ids {
			perUser = append(perUser, m.settings.VaultTimeoutFlow(ctx, userID).Subscribe(guarded(&m.tasks, func(timeout models.VaultTimeout) {
				m.handleUserAutoUnlockChanges(ctx, userID, timeout)
			})))
		}
	}))

	return func() {
		unsubscribe()

		mu.Lock()
		defer mu.Unlock()
		stopped = true
		stopUser()
	}
}

// handleUserAutoUnlockChanges keeps a user's cached auto-unlock key in line
// with their timeout: only Never keeps a key, and a locked Never user is
// unlocked with it.
func (m *lockManager) handleUserAutoUnlockChanges(ctx context.Context, userID string, timeout models.VaultTimeout) {
	log := logger.FromContext(ctx)

	if timeout != models.VaultTimeoutNever {
		if err := m.authDisk.StoreUserAutoUnlockKey(ctx, userID, nil); err != nil {
			log.Err(err).Str("func", "lockManager.handleUserAutoUnlockChanges").Str("user_id", userID).Msg("error clearing auto-unlock key")
		}
		return
	}

	if m.IsVaultUnlocked(userID) {
		m.cacheUserAutoUnlockKey(ctx, userID)
		return
	}

	if m.IsVaultUnlocking(userID) {
		return
	}

	key, err := m.authDisk.GetUserAutoUnlockKey(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.handleUserAutoUnlockChanges").Str("user_id", userID).Msg("error reading auto-unlock key")
		return
	}
	if key.IsEmpty() {
		return
	}

	result := m.unlockVaultForUser(ctx, userID, models.DecryptedKeyMethod{DecryptedUserKey: key})
	log.Info().Str("user_id", userID).Stringer("result", result).Msg("auto-unlock attempted")
}

// checkForVaultTimeout performs the user's timeout action if it is due.
func (m *lockManager) checkForVaultTimeout(ctx context.Context, userID string, isAppRestart bool) {
	log := logger.FromContext(ctx)

	lastActive, _, err := m.authDisk.GetLastActiveTimeMillis(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "lockManager.checkForVaultTimeout").Str("user_id", userID).Msg("error reading last active time")
		lastActive = 0
	}

	decision := EvaluateVaultTimeout(
		m.nowMillis(),
		lastActive,
		m.settings.VaultTimeoutFlow(ctx, userID).Value(),
		m.settings.VaultTimeoutActionFlow(ctx, userID).Value(),
		isAppRestart,
	)

	switch decision {
	case DecisionLock:
		m.LockVault(ctx, userID)
	case DecisionLogout:
		m.LockVault(ctx, userID)
		if err = m.logout.SoftLogout(ctx, userID); err != nil {
			log.Err(err).Str("func", "lockManager.checkForVaultTimeout").Str("user_id", userID).Msg("error logging out")
		}
	default:
		return
	}

	log.Info().Str("user_id", userID).Stringer("decision", decision).Bool("app_restart", isAppRestart).Msg("vault timeout reached")
}

func (m *lockManager) updateLastActiveTime(ctx context.Context, userID string) {
	now := m.nowMillis()
	m.storeLastActiveTime(ctx, userID, &now)
}

func (m *lockManager) storeLastActiveTime(ctx context.Context, userID string, millis *int64) {
	if err := m.authDisk.StoreLastActiveTimeMillis(ctx, userID, millis); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "lockManager.storeLastActiveTime").
			Str("user_id", userID).
			Msg("error storing last active time")
	}
}
