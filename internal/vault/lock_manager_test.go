package vault

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

type testEnv struct {
	disk       *fakeAuthDisk
	sdk        *fakeSDK
	settings   *fakeSettings
	foreground *fakeForeground
	logout     *fakeLogout
	clock      *fakeClock
	manager    *lockManager
}

func newTestEnv(t *testing.T, state *models.UserState, timeout models.VaultTimeout) *testEnv {
	t.Helper()

	env := &testEnv{
		disk:       newFakeAuthDisk(state),
		sdk:        newFakeSDK("user-key"),
		settings:   newFakeSettings(timeout),
		foreground: newFakeForeground(),
		logout:     &fakeLogout{},
		clock:      &fakeClock{now: 100 * millisPerMinute},
	}
	env.manager = NewLockManager(
		env.disk, env.sdk, env.settings, env.foreground, env.logout,
		logger.Nop(), WithClock(env.clock.Now),
	).(*lockManager)

	return env
}

// run starts the observers and stops them when the test ends.
func (e *testEnv) run(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.manager.Run(ctx) }()

	// Run subscribes to the user state last, after the foreground state.
	require.Eventually(t, func() bool { return e.disk.subscriptions.Load() >= 2 }, waitFor, tick)

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(waitFor):
			t.Error("Run did not return after cancel")
		}
	})
}

func (e *testEnv) unlock(t *testing.T, userID string) {
	t.Helper()

	result := e.manager.UnlockVault(context.Background(), userID, userID+"@example.com", models.Kdf{}, "pk",
		models.DecryptedKeyMethod{DecryptedUserKey: models.Secret("user-key")}, nil)
	require.Equal(t, models.VaultUnlockResultSuccess, result)
}

func newMockManager(t *testing.T, ctrl *gomock.Controller) (*lockManager, *mock.MockVaultSDKSource, *fakeAuthDisk) {
	t.Helper()

	sdk := mock.NewMockVaultSDKSource(ctrl)
	disk := newFakeAuthDisk(twoUsers("u1"))
	m := NewLockManager(disk, sdk, newFakeSettings(models.VaultTimeoutFifteenMinutes), newFakeForeground(), &fakeLogout{}, logger.Nop()).(*lockManager)

	return m, sdk, disk
}

func TestUnlockVault_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, sdk, _ := newMockManager(t, ctrl)
	ctx := context.Background()
	method := models.MasterPasswordMethod{Password: "pw", UserKey: "wrapped"}

	sdk.EXPECT().
		InitializeCrypto(ctx, "u1", models.InitUserCryptoRequest{
			Kdf:        models.Kdf{Iterations: 3},
			Email:      "a@example.com",
			PrivateKey: "pk",
			Method:     method,
		}).
		DoAndReturn(func(context.Context, string, models.InitUserCryptoRequest) (models.InitializeCryptoResult, error) {
			assert.True(t, m.IsVaultUnlocking("u1"))
			assert.False(t, m.IsVaultUnlocked("u1"))
			return models.InitializeCryptoSuccess, nil
		})

	result := m.UnlockVault(ctx, "u1", "a@example.com", models.Kdf{Iterations: 3}, "pk", method, nil)

	assert.Equal(t, models.VaultUnlockResultSuccess, result)
	assert.True(t, m.IsVaultUnlocked("u1"))
	assert.False(t, m.IsVaultUnlocking("u1"))
	assert.False(t, m.IsVaultUnlocked("u2"))
}

func TestUnlockVault_OrganizationCrypto(t *testing.T) {
	orgKeys := map[string]string{"org": "enc-org-key"}

	tests := []struct {
		name      string
		orgResult models.InitializeCryptoResult
		orgErr    error
		want      models.VaultUnlockResult
	}{
		{name: "success", orgResult: models.InitializeCryptoSuccess, want: models.VaultUnlockResultSuccess},
		{name: "authentication error", orgResult: models.InitializeCryptoAuthenticationError, want: models.VaultUnlockResultAuthenticationError},
		{name: "sdk error", orgErr: errors.New("bad org key"), want: models.VaultUnlockResultGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, sdk, _ := newMockManager(t, ctrl)
			ctx := context.Background()

			calls := []any{
				sdk.EXPECT().InitializeCrypto(ctx, "u1", gomock.Any()).Return(models.InitializeCryptoSuccess, nil),
				sdk.EXPECT().
					InitializeOrganizationCrypto(ctx, "u1", models.InitOrgCryptoRequest{OrganizationKeys: orgKeys}).
					Return(tt.orgResult, tt.orgErr),
			}
			if tt.want != models.VaultUnlockResultSuccess {
				// the user key installed by the first step is dropped again
				calls = append(calls, sdk.EXPECT().ClearCrypto("u1"))
			}
			gomock.InOrder(calls...)

			result := m.UnlockVault(ctx, "u1", "a@example.com", models.Kdf{}, "pk", models.DecryptedKeyMethod{}, orgKeys)

			assert.Equal(t, tt.want, result)
			assert.Equal(t, tt.want == models.VaultUnlockResultSuccess, m.IsVaultUnlocked("u1"))
			assert.False(t, m.IsVaultUnlocking("u1"))
		})
	}
}

func TestUnlockVault_BadOrganizationKeyLeavesNoKeyMaterial(t *testing.T) {
	ctx := context.Background()
	kdf := models.Kdf{Iterations: 1, MemoryKiB: 1024, Parallelism: 1}

	sdk := crypto.NewVaultSDK(crypto.NewKeyChain(), logger.Nop())
	keys, err := sdk.MakeAccountKeys("master-pw", "a@example.com", kdf)
	require.NoError(t, err)

	m := NewLockManager(newFakeAuthDisk(twoUsers("u1")), sdk, newFakeSettings(models.VaultTimeoutFifteenMinutes),
		newFakeForeground(), &fakeLogout{}, logger.Nop()).(*lockManager)
	method := models.MasterPasswordMethod{Password: "master-pw", UserKey: keys.EncryptedUserKey}
	badOrgKeys := map[string]string{"org": "not-a-wrapped-key"}

	t.Run("fresh unlock", func(t *testing.T) {
		result := m.UnlockVault(ctx, "u1", "a@example.com", kdf, keys.EncryptedPrivateKey, method, badOrgKeys)

		assert.NotEqual(t, models.VaultUnlockResultSuccess, result)
		assert.False(t, m.IsVaultUnlocked("u1"))
		_, err := sdk.GetUserEncryptionKey(ctx, "u1")
		assert.ErrorIs(t, err, crypto.ErrCryptoNotInitialized)
	})

	t.Run("unlocked vault", func(t *testing.T) {
		require.Equal(t, models.VaultUnlockResultSuccess,
			m.UnlockVault(ctx, "u1", "a@example.com", kdf, keys.EncryptedPrivateKey, method, nil))
		_, err := sdk.GetUserEncryptionKey(ctx, "u1")
		require.NoError(t, err)

		result := m.UnlockVault(ctx, "u1", "a@example.com", kdf, keys.EncryptedPrivateKey, method, badOrgKeys)

		assert.NotEqual(t, models.VaultUnlockResultSuccess, result)
		assert.False(t, m.IsVaultUnlocked("u1"))
		_, err = sdk.GetUserEncryptionKey(ctx, "u1")
		assert.ErrorIs(t, err, crypto.ErrCryptoNotInitialized)
	})
}

func TestUnlockVault_UserCryptoFailures(t *testing.T) {
	tests := []struct {
		name   string
		result models.InitializeCryptoResult
		err    error
		want   models.VaultUnlockResult
	}{
		{name: "wrong key", result: models.InitializeCryptoAuthenticationError, want: models.VaultUnlockResultAuthenticationError},
		{name: "sdk error", err: errors.New("boom"), want: models.VaultUnlockResultGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, sdk, _ := newMockManager(t, ctrl)

			// organization crypto must not be attempted
			sdk.EXPECT().InitializeCrypto(gomock.Any(), "u1", gomock.Any()).Return(tt.result, tt.err)

			result := m.UnlockVault(context.Background(), "u1", "a@example.com", models.Kdf{}, "pk",
				models.DecryptedKeyMethod{}, map[string]string{"org": "k"})

			assert.Equal(t, tt.want, result)
			assert.False(t, m.IsVaultUnlocked("u1"))
			assert.False(t, m.IsVaultUnlocking("u1"))
		})
	}
}

func TestUnlockVault_NeverTimeoutCachesKey(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutNever)

	env.unlock(t, "u1")

	require.Eventually(t, func() bool {
		return string(env.disk.autoUnlockKeyOf("u1")) == "user-key"
	}, waitFor, tick)
}

func TestUnlockVault_FiniteTimeoutDoesNotCacheKey(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutFiveMinutes)

	env.unlock(t, "u1")

	assert.Nil(t, env.disk.autoUnlockKeyOf("u1"))
}

func TestRun_WaitsForPendingKeyCaching(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutNever)
	env.sdk.keyGate = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.manager.Run(ctx) }()

	env.unlock(t, "u1")
	cancel()

	select {
	case <-done:
		t.Fatal("Run returned while the auto-unlock key was still being cached")
	case <-time.After(50 * time.Millisecond):
	}

	close(env.sdk.keyGate)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, "user-key", string(env.disk.autoUnlockKeyOf("u1")))
}

func TestUnlockVault_AfterRunStoppedSkipsKeyCaching(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutNever)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, env.manager.Run(ctx))

	env.unlock(t, "u1")

	assert.True(t, env.manager.IsVaultUnlocked("u1"))
	assert.Nil(t, env.disk.autoUnlockKeyOf("u1"))
}

func TestLockVault(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutFifteenMinutes)
	ctx := context.Background()

	env.unlock(t, "u1")
	env.unlock(t, "u2")
	require.NoError(t, env.disk.StoreUserAutoUnlockKey(ctx, "u1", models.Secret("cached")))

	env.manager.LockVault(ctx, "u1")

	assert.False(t, env.manager.IsVaultUnlocked("u1"))
	assert.True(t, env.manager.IsVaultUnlocked("u2"))
	assert.Nil(t, env.disk.autoUnlockKeyOf("u1"))
	assert.Equal(t, []string{"u1"}, env.sdk.clearedUsers())

	// locking again is harmless
	env.manager.LockVault(ctx, "u1")
	assert.False(t, env.manager.IsVaultUnlocked("u1"))
}

func TestLockVaultForCurrentUser(t *testing.T) {
	env := newTestEnv(t, twoUsers("u2"), models.VaultTimeoutFifteenMinutes)

	env.unlock(t, "u1")
	env.unlock(t, "u2")

	env.manager.LockVaultForCurrentUser(context.Background())

	assert.True(t, env.manager.IsVaultUnlocked("u1"))
	assert.False(t, env.manager.IsVaultUnlocked("u2"))
}

func TestLockVaultForCurrentUser_NoAccounts(t *testing.T) {
	env := newTestEnv(t, nil, models.VaultTimeoutFifteenMinutes)

	env.manager.LockVaultForCurrentUser(context.Background())

	assert.Empty(t, env.sdk.clearedUsers())
}

func TestVaultStateFlow_PublishesTransitions(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutFifteenMinutes)

	states := make(chan models.VaultState, 16)
	unsubscribe := env.manager.VaultStateFlow().Subscribe(func(s models.VaultState) { states <- s })
	defer unsubscribe()

	env.unlock(t, "u1")

	require.Eventually(t, func() bool {
		for {
			select {
			case s := <-states:
				if s.IsUnlocked("u1") {
					assert.False(t, s.IsUnlocking("u1"))
					return true
				}
			default:
				return false
			}
		}
	}, waitFor, tick)
}

func TestUnlockVaultForUser_MissingAccountData(t *testing.T) {
	env := newTestEnv(t, twoUsers("u1"), models.VaultTimeoutFifteenMinutes)
	ctx := context.Background()
	method := models.DecryptedKeyMethod{DecryptedUserKey: models.Secret("user-key")}

	assert.Equal(t, models.VaultUnlockResultInvalidStateError, env.manager.unlockVaultForUser(ctx, "ghost", method))
	// u1 exists but has no private key
	assert.Equal(t, models.VaultUnlockResultInvalidStateError, env.manager.unlockVaultForUser(ctx, "u1", method))

	env.disk.privateKeys["u1"] = "pk"
	assert.Equal(t, models.VaultUnlockResultSuccess, env.manager.unlockVaultForUser(ctx, "u1", method))
}
