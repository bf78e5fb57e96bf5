package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/adapter"
	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/models"
)

type runResult struct {
	out string
	err error
	cfg config.Adapter
}

// run executes providerctl with args against a mocked provider.
func run(t *testing.T, setup func(p *mock.MockProviderAdapter), stdin string, args ...string) runResult {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProviderAdapter(ctrl)
	setup(provider)

	var res runResult
	root := newRootCommand(func(cfg config.Adapter, _ *logger.Logger) (adapter.ProviderAdapter, error) {
		res.cfg = cfg
		return provider, nil
	}, logger.Nop())

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	res.err = root.ExecuteContext(context.Background())
	res.out = out.String()
	return res
}

func TestRoot_FlagsReachAdapterConfig(t *testing.T) {
	res := run(t, func(p *mock.MockProviderAdapter) {
		p.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)
	}, "", "--address", "10.0.0.2:9000", "--timeout", "3s", "version")

	require.NoError(t, res.err)
	assert.Equal(t, "1.2.3\n", res.out)
	assert.Equal(t, "10.0.0.2:9000", res.cfg.HTTPAddress)
	assert.Equal(t, "3s", res.cfg.RequestTimeout.String())
}

func TestRoot_AdapterFactoryError(t *testing.T) {
	root := newRootCommand(func(config.Adapter, *logger.Logger) (adapter.ProviderAdapter, error) {
		return nil, adapter.ErrEmptyAddress
	}, logger.Nop())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"version"})

	err := root.Execute()

	assert.ErrorIs(t, err, adapter.ErrEmptyAddress)
}

func TestAccountsList(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().Accounts(gomock.Any()).Return(models.UserState{
				ActiveUserID: "u1",
				Accounts: []models.Account{
					{UserID: "u1", Email: "one@example.com", Name: "One", IsVaultUnlocked: true, IsLoggedIn: true},
					{UserID: "u2", Email: "two@example.com"},
				},
			}, nil)
		}, "", "accounts", "list")

		require.NoError(t, res.err)
		lines := strings.Split(strings.TrimSpace(res.out), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "USER ID")
		assert.True(t, strings.HasPrefix(lines[1], "*"))
		assert.Contains(t, lines[1], "unlocked")
		assert.Contains(t, lines[2], "locked")
	})

	t.Run("empty", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().Accounts(gomock.Any()).Return(models.UserState{}, nil)
		}, "", "accounts", "list")

		require.NoError(t, res.err)
		assert.Equal(t, "No accounts found.\n", res.out)
	})
}

func TestAccountsCreate(t *testing.T) {
	t.Run("reads master password from stdin", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().CreateAccount(gomock.Any(), models.NewAccountRequest{
				Email:          "new@example.com",
				Name:           "New",
				MasterPassword: "correct horse",
			}).Return(models.Account{UserID: "u3", Email: "new@example.com"}, nil)
		}, "correct horse\n", "accounts", "create", "--email", "new@example.com", "--name", "New")

		require.NoError(t, res.err)
		assert.Equal(t, "Created account u3 (new@example.com)\n", res.out)
	})

	t.Run("empty password", func(t *testing.T) {
		res := run(t, func(*mock.MockProviderAdapter) {}, "\n", "accounts", "create", "--email", "new@example.com")

		assert.ErrorIs(t, res.err, errEmptyMasterPassword)
	})

	t.Run("email is required", func(t *testing.T) {
		res := run(t, func(*mock.MockProviderAdapter) {}, "pw\n", "accounts", "create")

		assert.ErrorContains(t, res.err, "email")
	})
}

func TestAccountsSwitchAndLogout(t *testing.T) {
	res := run(t, func(p *mock.MockProviderAdapter) {
		p.EXPECT().SwitchAccount(gomock.Any(), "u2").Return(nil)
	}, "", "accounts", "switch", "u2")
	require.NoError(t, res.err)
	assert.Equal(t, "Active account is now u2\n", res.out)

	res = run(t, func(p *mock.MockProviderAdapter) {
		p.EXPECT().Logout(gomock.Any(), "u2").Return(adapter.ErrNotFound)
	}, "", "accounts", "logout", "u2")
	assert.ErrorIs(t, res.err, adapter.ErrNotFound)
}

func TestSettingsSet(t *testing.T) {
	t.Run("timeout only", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().UpdateSettings(gomock.Any(), "u1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, update adapter.SettingsUpdate) (adapter.Settings, error) {
					require.NotNil(t, update.Timeout)
					assert.Equal(t, models.VaultTimeoutNever, *update.Timeout)
					assert.Nil(t, update.Action)
					return adapter.Settings{Timeout: models.VaultTimeoutNever, Action: models.VaultTimeoutActionLock}, nil
				})
		}, "", "settings", "set", "u1", "--timeout", "never")

		require.NoError(t, res.err)
		assert.Equal(t, "timeout: never\naction:  lock\n", res.out)
	})

	t.Run("invalid action", func(t *testing.T) {
		res := run(t, func(*mock.MockProviderAdapter) {}, "", "settings", "set", "u1", "--action", "explode")

		assert.Error(t, res.err)
	})

	t.Run("needs a flag", func(t *testing.T) {
		res := run(t, func(*mock.MockProviderAdapter) {}, "", "settings", "set", "u1")

		assert.Error(t, res.err)
	})
}

func TestSettingsGet(t *testing.T) {
	res := run(t, func(p *mock.MockProviderAdapter) {
		p.EXPECT().Settings(gomock.Any(), "u1").
			Return(adapter.Settings{Timeout: models.VaultTimeoutOnAppRestart, Action: models.VaultTimeoutActionLogout}, nil)
	}, "", "settings", "get", "u1")

	require.NoError(t, res.err)
	assert.Equal(t, "timeout: on_app_restart\naction:  logout\n", res.out)
}

func TestVaultCommands(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().VaultState(gomock.Any()).Return(adapter.VaultStatus{UnlockedUserIDs: []string{"u1", "u2"}}, nil)
		}, "", "vault", "status")

		require.NoError(t, res.err)
		assert.Equal(t, "unlocked:  u1, u2\nunlocking: -\n", res.out)
	})

	t.Run("lock active", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().LockVault(gomock.Any(), "").Return(nil)
		}, "", "vault", "lock")

		require.NoError(t, res.err)
	})

	t.Run("unlock", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().UnlockVault(gomock.Any(), "u1", "hunter2").Return("success", nil)
		}, "hunter2\n", "vault", "unlock", "u1")

		require.NoError(t, res.err)
		assert.Equal(t, "Vault unlocked (success).\n", res.out)
	})

	t.Run("unlock rejected", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().UnlockVault(gomock.Any(), "u1", "wrong").
				Return("authentication_error", fmt.Errorf("%w: authentication_error", adapter.ErrUnlockRejected))
		}, "wrong", "vault", "unlock", "u1")

		assert.ErrorIs(t, res.err, adapter.ErrUnlockRejected)
	})

	t.Run("watch", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().WatchVault(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fn func(adapter.VaultStatus)) error {
					fn(adapter.VaultStatus{UnlockingUserIDs: []string{"u1"}})
					fn(adapter.VaultStatus{UnlockedUserIDs: []string{"u1"}})
					return nil
				})
		}, "", "vault", "watch")

		require.NoError(t, res.err)
		assert.Equal(t, "unlocked:  -\nunlocking: u1\nunlocked:  u1\nunlocking: -\n", res.out)
	})
}

func TestLifecycle(t *testing.T) {
	res := run(t, func(p *mock.MockProviderAdapter) {
		p.EXPECT().SetLifecycle(gomock.Any(), models.AppBackgrounded).Return(nil)
	}, "", "lifecycle", "backgrounded")
	require.NoError(t, res.err)

	res = run(t, func(*mock.MockProviderAdapter) {}, "", "lifecycle", "asleep")
	assert.Error(t, res.err)
}

func TestCredentialsGet(t *testing.T) {
	t.Run("defaults to passwords", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().BeginGetCredential(gomock.Any(), adapter.CredentialQuery{
				Origin:    "https://example.com",
				Passwords: true,
			}).Return(models.BeginGetCredentialResponse{
				CredentialEntries: []models.CredentialEntry{
					{Type: models.CredentialTypePassword, Username: "alice", CipherID: "c1", OptionID: "password"},
				},
			}, nil)
		}, "", "credentials", "get", "--origin", "https://example.com")

		require.NoError(t, res.err)
		lines := strings.Split(strings.TrimSpace(res.out), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "alice")
		assert.Contains(t, lines[1], "c1")
	})

	t.Run("locked vault", func(t *testing.T) {
		res := run(t, func(p *mock.MockProviderAdapter) {
			p.EXPECT().BeginGetCredential(gomock.Any(), gomock.Any()).Return(models.BeginGetCredentialResponse{
				AuthenticationActions: []models.AuthenticationAction{{Title: "Unlock"}},
			}, nil)
		}, "", "credentials", "get", "--package", "com.example")

		require.NoError(t, res.err)
		assert.Equal(t, "Authentication required: Unlock\nNo matching credentials.\n", res.out)
	})
}
