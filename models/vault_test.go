package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVaultTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    VaultTimeout
		wantErr bool
	}{
		{in: "never", want: VaultTimeoutNever},
		{in: "ON_APP_RESTART", want: VaultTimeoutOnAppRestart},
		{in: "immediately", want: VaultTimeoutImmediately},
		{in: "0s", want: VaultTimeoutImmediately},
		{in: "15m", want: VaultTimeoutFifteenMinutes},
		{in: "4h", want: VaultTimeoutFourHours},
		{in: "7m", want: CustomVaultTimeout(7)},
		{in: "90s", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "whenever", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVaultTimeout(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVaultTimeout)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVaultTimeout_InMinutes(t *testing.T) {
	_, ok := VaultTimeoutNever.InMinutes()
	assert.False(t, ok)
	_, ok = VaultTimeoutOnAppRestart.InMinutes()
	assert.False(t, ok)

	m, ok := VaultTimeoutOneHour.InMinutes()
	assert.True(t, ok)
	assert.Equal(t, 60, m)

	m, ok = CustomVaultTimeout(42).InMinutes()
	assert.True(t, ok)
	assert.Equal(t, 42, m)
}

func TestVaultTimeout_TextRoundTrip(t *testing.T) {
	for _, timeout := range []VaultTimeout{VaultTimeoutNever, VaultTimeoutOnAppRestart, VaultTimeoutThirtyMinutes, CustomVaultTimeout(11)} {
		b, err := json.Marshal(timeout)
		require.NoError(t, err)

		var got VaultTimeout
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, timeout, got)
	}
}

func TestParseVaultTimeoutAction(t *testing.T) {
	a, err := ParseVaultTimeoutAction("Logout")
	require.NoError(t, err)
	assert.Equal(t, VaultTimeoutActionLogout, a)

	_, err = ParseVaultTimeoutAction("nuke")
	assert.ErrorIs(t, err, ErrInvalidVaultTimeoutAction)
}

func TestVaultState_CloneIsIndependent(t *testing.T) {
	s := NewVaultState()
	s.UnlockedUserIDs["a"] = struct{}{}

	c := s.Clone()
	c.UnlockedUserIDs["b"] = struct{}{}
	c.UnlockingUserIDs["c"] = struct{}{}

	assert.True(t, s.IsUnlocked("a"))
	assert.False(t, s.IsUnlocked("b"))
	assert.False(t, s.IsUnlocking("c"))
	assert.False(t, s.Equal(c))
	assert.True(t, s.Equal(s.Clone()))
}

func TestInitializeCryptoResult_ToVaultUnlockResult(t *testing.T) {
	assert.Equal(t, VaultUnlockResultSuccess, InitializeCryptoSuccess.ToVaultUnlockResult())
	assert.Equal(t, VaultUnlockResultAuthenticationError, InitializeCryptoAuthenticationError.ToVaultUnlockResult())
}

func TestSecret_IsRedacted(t *testing.T) {
	s := Secret("hunter2")

	assert.Equal(t, redacted, s.String())
	assert.Equal(t, redacted, fmt.Sprintf("%v", s))
	assert.Equal(t, redacted, fmt.Sprintf("%#v", s))

	b, err := json.Marshal(struct{ Key Secret }{Key: s})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hunter2")

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), v)

	s.Zero()
	assert.Equal(t, Secret{0, 0, 0, 0, 0, 0, 0}, s)
}

func TestSecret_Scan(t *testing.T) {
	var s Secret
	require.NoError(t, s.Scan([]byte("key")))
	assert.Equal(t, "key", string(s.Bytes()))

	require.NoError(t, s.Scan(nil))
	assert.True(t, s.IsEmpty())

	assert.Error(t, s.Scan(42))
}

func TestCredentialError_Is(t *testing.T) {
	err := &CredentialError{Op: CredentialOpGet, Kind: CredentialErrorUnknown, Message: "Invalid data."}

	assert.ErrorIs(t, err, &CredentialError{Kind: CredentialErrorUnknown})
	assert.ErrorIs(t, err, &CredentialError{Op: CredentialOpGet, Kind: CredentialErrorUnknown})
	assert.NotErrorIs(t, err, &CredentialError{Op: CredentialOpCreate, Kind: CredentialErrorUnknown})
	assert.NotErrorIs(t, err, &CredentialError{Kind: CredentialErrorCancellation})
	assert.Equal(t, "get_credential: unknown: Invalid data.", err.Error())
}

func TestUserState_ActiveAccount(t *testing.T) {
	s := UserState{
		ActiveUserID: "u2",
		Accounts:     []Account{{UserID: "u1", Email: "a@x"}, {UserID: "u2", Email: "b@x", Name: "Bee"}},
	}

	a, ok := s.ActiveAccount()
	require.True(t, ok)
	assert.Equal(t, "Bee", a.DisplayName())
	assert.Equal(t, []string{"u1", "u2"}, s.UserIDs())

	_, ok = UserState{ActiveUserID: "gone"}.ActiveAccount()
	assert.False(t, ok)
}
