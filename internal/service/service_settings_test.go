package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/models"
)

func newSettings(t *testing.T) (SettingsRepository, *mock.MockSettingsDiskSource) {
	t.Helper()
	disk := mock.NewMockSettingsDiskSource(gomock.NewController(t))
	return NewSettingsRepository(disk, models.VaultTimeoutFifteenMinutes, models.VaultTimeoutActionLock, logger.Nop()), disk
}

func TestSettingsRepository_VaultTimeoutFlow(t *testing.T) {
	tests := []struct {
		name   string
		stored models.VaultTimeout
		ok     bool
		err    error
		want   models.VaultTimeout
	}{
		{name: "stored", stored: models.VaultTimeoutNever, ok: true, want: models.VaultTimeoutNever},
		{name: "not stored", want: models.VaultTimeoutFifteenMinutes},
		{name: "disk error", err: errors.New("disk I/O error"), want: models.VaultTimeoutFifteenMinutes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, disk := newSettings(t)
			ctx := context.Background()
			disk.EXPECT().GetVaultTimeout(ctx, "u1").Return(tt.stored, tt.ok, tt.err).Times(1)

			first := repo.VaultTimeoutFlow(ctx, "u1")
			second := repo.VaultTimeoutFlow(ctx, "u1")

			assert.Equal(t, tt.want, first.Value())
			assert.Same(t, first, second)
		})
	}
}

func TestSettingsRepository_VaultTimeoutActionFlow(t *testing.T) {
	repo, disk := newSettings(t)
	ctx := context.Background()
	disk.EXPECT().GetVaultTimeoutAction(ctx, "u1").Return(models.VaultTimeoutActionLogout, true, nil)
	disk.EXPECT().GetVaultTimeoutAction(ctx, "u2").Return(models.VaultTimeoutAction(0), false, nil)

	assert.Equal(t, models.VaultTimeoutActionLogout, repo.VaultTimeoutActionFlow(ctx, "u1").Value())
	assert.Equal(t, models.VaultTimeoutActionLock, repo.VaultTimeoutActionFlow(ctx, "u2").Value())
}

func TestSettingsRepository_SetVaultTimeout(t *testing.T) {
	repo, disk := newSettings(t)
	ctx := context.Background()

	disk.EXPECT().GetVaultTimeout(ctx, "u1").Return(models.VaultTimeout{}, false, nil)
	observed := repo.VaultTimeoutFlow(ctx, "u1")

	disk.EXPECT().StoreVaultTimeout(ctx, "u1", models.VaultTimeoutNever).Return(nil)
	require.NoError(t, repo.SetVaultTimeout(ctx, "u1", models.VaultTimeoutNever))

	assert.Equal(t, models.VaultTimeoutNever, observed.Value())
}

func TestSettingsRepository_SetVaultTimeoutStoreFailure(t *testing.T) {
	repo, disk := newSettings(t)
	ctx := context.Background()
	storeErr := errors.New("readonly database")

	disk.EXPECT().GetVaultTimeout(ctx, "u1").Return(models.VaultTimeout{}, false, nil)
	observed := repo.VaultTimeoutFlow(ctx, "u1")

	disk.EXPECT().StoreVaultTimeout(ctx, "u1", models.VaultTimeoutNever).Return(storeErr)

	assert.ErrorIs(t, repo.SetVaultTimeout(ctx, "u1", models.VaultTimeoutNever), storeErr)
	assert.Equal(t, models.VaultTimeoutFifteenMinutes, observed.Value())
}

func TestSettingsRepository_SetVaultTimeoutAction(t *testing.T) {
	repo, disk := newSettings(t)
	ctx := context.Background()

	disk.EXPECT().StoreVaultTimeoutAction(ctx, "u1", models.VaultTimeoutActionLogout).Return(nil)
	disk.EXPECT().GetVaultTimeoutAction(ctx, "u1").Return(models.VaultTimeoutActionLogout, true, nil)

	require.NoError(t, repo.SetVaultTimeoutAction(ctx, "u1", models.VaultTimeoutActionLogout))
	assert.Equal(t, models.VaultTimeoutActionLogout, repo.VaultTimeoutActionFlow(ctx, "u1").Value())

	assert.ErrorIs(t, repo.SetVaultTimeoutAction(ctx, "", models.VaultTimeoutActionLock), ErrInvalidDataProvided)
}

func TestForegroundManager(t *testing.T) {
	m := NewForegroundManager()
	assert.Equal(t, models.AppBackgrounded, m.ForegroundStateFlow().Value())

	m.SetForegroundState(models.AppForegrounded)
	assert.Equal(t, models.AppForegrounded, m.ForegroundStateFlow().Value())
}
