package credential

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/models"
)

func newFido2(t *testing.T) (*fido2Processor, *mock.MockVaultRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultRepository(ctrl)
	p := NewFido2Processor(vault, stubIntents(ctrl), logger.Nop(), WithNow(fixedClock)).(*fido2Processor)
	return p, vault
}

func TestFido2Create_EntriesPerAccount(t *testing.T) {
	p, _ := newFido2(t)
	var rc atomic.Int32
	rc.Store(7)

	got, err := p.ProcessCreateCredentialRequest(context.Background(), &rc, twoAccounts("u2", true),
		models.BeginCreatePublicKeyCredentialRequest{RequestJSON: `{"rp":{"id":"example.com"}}`})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.CreateEntries, 2)

	first, second := got.CreateEntries[0], got.CreateEntries[1]

	assert.Equal(t, "One", first.AccountName)
	assert.Equal(t, "Your passkey will be saved to your vault for One", first.Description)
	assert.Equal(t, ActionCreatePasskey, first.PendingIntent.Action)
	assert.Equal(t, int32(7), first.PendingIntent.RequestCode)
	assert.Equal(t, tokenFor(models.PendingIntentExtras{UserID: "u1"}), first.PendingIntent.Token)
	assert.Nil(t, first.LastUsedTime)

	assert.Equal(t, "two@example.com", second.AccountName)
	assert.Equal(t, "Your passkey will be saved to your vault for two@example.com", second.Description)
	assert.Equal(t, int32(8), second.PendingIntent.RequestCode)
	require.NotNil(t, second.LastUsedTime)
	assert.Equal(t, fixedNow, *second.LastUsedTime)

	assert.Equal(t, int32(9), rc.Load())
}

func TestFido2Create_UnusableRequestJSON(t *testing.T) {
	for _, payload := range []string{"", "   ", "{not json"} {
		p, _ := newFido2(t)
		var rc atomic.Int32

		got, err := p.ProcessCreateCredentialRequest(context.Background(), &rc, twoAccounts("u1", true),
			models.BeginCreatePublicKeyCredentialRequest{RequestJSON: payload})

		assert.NoError(t, err, payload)
		assert.Nil(t, got, payload)
		assert.Zero(t, rc.Load(), payload)
	}
}

func TestFido2Get_FiltersByRelyingParty(t *testing.T) {
	p, vault := newFido2(t)
	ctx := context.Background()
	ciphers := []models.Cipher{{ID: "c1", UserID: "u1", HasFido2: true}, {ID: "c2", UserID: "u1", HasFido2: true}}

	vault.EXPECT().GetFido2Ciphers(ctx, "u1").Return(ciphers, nil)
	vault.EXPECT().DecryptFido2CredentialAutofillViews(ctx, "u1", ciphers[0], ciphers[1]).Return([]models.Fido2CredentialAutofillView{
		{CredentialID: "cred-1", CipherID: "c1", RpID: "example.com", UserNameForUI: "alice"},
		{CredentialID: "cred-2", CipherID: "c2", RpID: "other.com", UserNameForUI: "bob"},
		{CredentialID: "cred-3", CipherID: "c2", RpID: "example.com"},
	}, nil)

	var rc atomic.Int32
	got, err := p.ProcessGetCredentialRequest(ctx, &rc, "u1", []models.BeginGetPublicKeyCredentialOption{
		{ID: "opt", RequestJSON: `{"rpId":"example.com","challenge":"abc"}`},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.CredentialTypePublicKey, got[0].Type)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "opt", got[0].OptionID)
	assert.Equal(t, "c1", got[0].CipherID)
	assert.Equal(t, ActionGetPasskey, got[0].PendingIntent.Action)
	assert.Equal(t, tokenFor(models.PendingIntentExtras{UserID: "u1", CipherID: "c1", CredentialID: "cred-1", OptionID: "opt"}), got[0].PendingIntent.Token)

	assert.Equal(t, "No username", got[1].Username)
	assert.Equal(t, "c2", got[1].CipherID)
	assert.Equal(t, int32(1), got[1].PendingIntent.RequestCode)
}

func TestFido2Get_DecryptsOnceForManyOptions(t *testing.T) {
	p, vault := newFido2(t)
	vault.EXPECT().GetFido2Ciphers(gomock.Any(), "u1").Return(nil, nil).Times(1)
	vault.EXPECT().DecryptFido2CredentialAutofillViews(gomock.Any(), "u1").Return([]models.Fido2CredentialAutofillView{
		{CredentialID: "cred-1", CipherID: "c1", RpID: "a.com", UserNameForUI: "alice"},
	}, nil).Times(1)

	var rc atomic.Int32
	got, err := p.ProcessGetCredentialRequest(context.Background(), &rc, "u1", []models.BeginGetPublicKeyCredentialOption{
		{ID: "1", RequestJSON: `{"rpId":"a.com"}`},
		{ID: "2", RequestJSON: `{"rpId":"a.com"}`},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].OptionID)
	assert.Equal(t, "2", got[1].OptionID)
}

func TestFido2Get_Errors(t *testing.T) {
	tests := []struct {
		name        string
		requestJSON string
		setup       func(v *mock.MockVaultRepository)
		wantMessage string
		wantErr     error
	}{
		{
			name:        "invalid json",
			requestJSON: `{"rpId":`,
			setup:       func(*mock.MockVaultRepository) {},
			wantMessage: "Invalid data.",
			wantErr:     ErrUnknown,
		},
		{
			name:        "missing rpId",
			requestJSON: `{"challenge":"abc"}`,
			setup:       func(*mock.MockVaultRepository) {},
			wantMessage: "Invalid data.",
			wantErr:     ErrUnknown,
		},
		{
			name:        "decryption failure",
			requestJSON: `{"rpId":"example.com"}`,
			setup: func(v *mock.MockVaultRepository) {
				v.EXPECT().GetFido2Ciphers(gomock.Any(), "u1").Return([]models.Cipher{{ID: "c1"}}, nil)
				v.EXPECT().DecryptFido2CredentialAutofillViews(gomock.Any(), "u1", gomock.Any()).Return(nil, errors.New("bad key"))
			},
			wantMessage: "Error decrypting credentials.",
			wantErr:     ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, vault := newFido2(t)
			tt.setup(vault)

			var rc atomic.Int32
			_, err := p.ProcessGetCredentialRequest(context.Background(), &rc, "u1", []models.BeginGetPublicKeyCredentialOption{
				{ID: "opt", RequestJSON: tt.requestJSON},
			})

			require.ErrorIs(t, err, tt.wantErr)
			var ce *models.CredentialError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.wantMessage, ce.Message)
		})
	}
}

func TestFido2Get_CipherQueryFailurePropagates(t *testing.T) {
	p, vault := newFido2(t)
	dbErr := errors.New("database is locked")
	vault.EXPECT().GetFido2Ciphers(gomock.Any(), "u1").Return(nil, dbErr)

	var rc atomic.Int32
	_, err := p.ProcessGetCredentialRequest(context.Background(), &rc, "u1", []models.BeginGetPublicKeyCredentialOption{
		{ID: "opt", RequestJSON: `{"rpId":"example.com"}`},
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestFido2Get_NoOptions(t *testing.T) {
	p, _ := newFido2(t)
	var rc atomic.Int32

	got, err := p.ProcessGetCredentialRequest(context.Background(), &rc, "u1", nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
}
