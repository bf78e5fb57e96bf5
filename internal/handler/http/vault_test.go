package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/internal/service"
	"github.com/MKhiriev/go-pass-provider/models"
)

func vaultState(unlocked, unlocking []string) models.VaultState {
	state := models.NewVaultState()
	for _, id := range unlocked {
		state.UnlockedUserIDs[id] = struct{}{}
	}
	for _, id := range unlocking {
		state.UnlockingUserIDs[id] = struct{}{}
	}
	return state
}

func TestGetVaultState(t *testing.T) {
	env := newTestEnv(t)
	state := flow.NewWithEqual(vaultState([]string{"u2", "u1"}, []string{"u3"}), models.VaultState.Equal)
	env.locks.EXPECT().VaultStateFlow().Return(state)

	rr := env.do(t, http.MethodGet, "/api/vault", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"unlocked_user_ids":["u1","u2"],"unlocking_user_ids":["u3"]}`, rr.Body.String())
}

func TestNewVaultStateResponse_EmptySetsAreArrays(t *testing.T) {
	response := newVaultStateResponse(models.NewVaultState())

	assert.NotNil(t, response.UnlockedUserIDs)
	assert.NotNil(t, response.UnlockingUserIDs)
	assert.Empty(t, response.UnlockedUserIDs)
}

func TestLockVault(t *testing.T) {
	t.Run("named user", func(t *testing.T) {
		env := newTestEnv(t)
		env.locks.EXPECT().LockVault(gomock.Any(), "u2")

		rr := env.do(t, http.MethodPost, "/api/vault/u2/lock", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("active user", func(t *testing.T) {
		env := newTestEnv(t)
		env.locks.EXPECT().LockVaultForCurrentUser(gomock.Any())

		rr := env.do(t, http.MethodPost, "/api/vault/lock", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestUnlockVault(t *testing.T) {
	tests := []struct {
		name       string
		result     models.VaultUnlockResult
		err        error
		wantStatus int
		wantResult string
	}{
		{name: "success", result: models.VaultUnlockResultSuccess, wantStatus: http.StatusOK, wantResult: "success"},
		{name: "wrong password", result: models.VaultUnlockResultAuthenticationError, wantStatus: http.StatusUnauthorized, wantResult: "authentication_error"},
		{name: "missing keys", result: models.VaultUnlockResultInvalidStateError, wantStatus: http.StatusConflict, wantResult: "invalid_state_error"},
		{name: "sdk failure", result: models.VaultUnlockResultGenericError, wantStatus: http.StatusInternalServerError, wantResult: "generic_error"},
		{name: "unknown account", result: models.VaultUnlockResultInvalidStateError, err: service.ErrAccountNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.unlock.EXPECT().UnlockWithMasterPassword(gomock.Any(), "u1", "hunter2").Return(tt.result, tt.err)

			rr := env.do(t, http.MethodPost, "/api/vault/u1/unlock", unlockRequest{MasterPassword: "hunter2"})

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantResult != "" {
				assert.Equal(t, tt.wantResult, decode[unlockResponse](t, rr).Result)
			}
		})
	}
}
