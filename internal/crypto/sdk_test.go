package crypto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

func newTestSDK(t *testing.T) (VaultSDK, AccountKeys) {
	t.Helper()
	sdk := NewVaultSDK(NewKeyChain(), logger.Nop())
	keys, err := sdk.MakeAccountKeys("master-pw", "alice@example.com", fastKdf)
	require.NoError(t, err)
	return sdk, keys
}

func masterPasswordRequest(keys AccountKeys, password string) models.InitUserCryptoRequest {
	return models.InitUserCryptoRequest{
		Kdf:        fastKdf,
		Email:      "alice@example.com",
		PrivateKey: keys.EncryptedPrivateKey,
		Method:     models.MasterPasswordMethod{Password: password, UserKey: keys.EncryptedUserKey},
	}
}

func TestVaultSDK_InitializeCrypto_MasterPassword(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)

	res, err := sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "master-pw"))
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoSuccess, res)

	key, err := sdk.GetUserEncryptionKey(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, keys.UserKey.Bytes(), key.Bytes())
}

func TestVaultSDK_InitializeCrypto_WrongPassword(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)

	res, err := sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "nope"))
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoAuthenticationError, res)

	_, err = sdk.GetUserEncryptionKey(ctx, "u1")
	assert.ErrorIs(t, err, ErrCryptoNotInitialized)
}

func TestVaultSDK_InitializeCrypto_DecryptedKey(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)

	res, err := sdk.InitializeCrypto(ctx, "u1", models.InitUserCryptoRequest{
		PrivateKey: keys.EncryptedPrivateKey,
		Method:     models.DecryptedKeyMethod{DecryptedUserKey: keys.UserKey},
	})
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoSuccess, res)

	other, err := NewKeyChain().GenerateUserKey()
	require.NoError(t, err)
	res, err = sdk.InitializeCrypto(ctx, "u2", models.InitUserCryptoRequest{
		PrivateKey: keys.EncryptedPrivateKey,
		Method:     models.DecryptedKeyMethod{DecryptedUserKey: other},
	})
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoAuthenticationError, res)
}

func TestVaultSDK_InitializeCrypto_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sdk, keys := newTestSDK(t)

	_, err := sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "master-pw"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVaultSDK_OrganizationCrypto(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)
	kc := NewKeyChain()

	orgKey, _ := kc.GenerateUserKey()
	wrapped, err := kc.WrapKey(orgKey, keys.UserKey)
	require.NoError(t, err)

	_, err = sdk.InitializeOrganizationCrypto(ctx, "u1", models.InitOrgCryptoRequest{OrganizationKeys: map[string]string{"org": wrapped}})
	assert.ErrorIs(t, err, ErrCryptoNotInitialized)

	_, err = sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "master-pw"))
	require.NoError(t, err)

	res, err := sdk.InitializeOrganizationCrypto(ctx, "u1", models.InitOrgCryptoRequest{OrganizationKeys: map[string]string{"org": wrapped}})
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoSuccess, res)

	res, err = sdk.InitializeOrganizationCrypto(ctx, "u1", models.InitOrgCryptoRequest{OrganizationKeys: map[string]string{"org": "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"}})
	require.NoError(t, err)
	assert.Equal(t, models.InitializeCryptoAuthenticationError, res)
}

func TestVaultSDK_ClearCrypto(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)

	_, err := sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "master-pw"))
	require.NoError(t, err)

	sdk.ClearCrypto("u1")
	sdk.ClearCrypto("u1")

	_, err = sdk.GetUserEncryptionKey(ctx, "u1")
	assert.ErrorIs(t, err, ErrCryptoNotInitialized)
}

func TestVaultSDK_CipherRoundTripAndAutofillViews(t *testing.T) {
	ctx := context.Background()
	sdk, keys := newTestSDK(t)
	_, err := sdk.InitializeCrypto(ctx, "u1", masterPasswordRequest(keys, "master-pw"))
	require.NoError(t, err)

	cipher, err := sdk.EncryptCipher(ctx, "u1", models.CipherView{
		ID:   "c1",
		Name: "Example",
		Login: models.LoginView{
			Username: "alice",
			Fido2Credentials: []models.Fido2Credential{
				{CredentialID: "cred-1", RpID: "example.com", UserName: "alice@example.com"},
				{CredentialID: "cred-2", RpID: "other.com"},
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, cipher.HasFido2)
	assert.Equal(t, "u1", cipher.UserID)

	views, err := sdk.DecryptFido2CredentialAutofillViews(ctx, "u1", cipher)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, models.Fido2CredentialAutofillView{CredentialID: "cred-1", CipherID: "c1", RpID: "example.com", UserNameForUI: "alice@example.com"}, views[0])
	assert.Equal(t, "alice", views[1].UserNameForUI)

	_, err = sdk.DecryptFido2CredentialAutofillViews(ctx, "u2", cipher)
	assert.ErrorIs(t, err, ErrCryptoNotInitialized)
}

func TestVaultSDK_DecryptCipher_RejectsNonLogin(t *testing.T) {
	sdk, _ := newTestSDK(t)

	_, err := sdk.DecryptCipher(context.Background(), "u1", models.Cipher{Type: models.CipherTypeNote})
	assert.ErrorIs(t, err, ErrUnsupportedCipherType)
}
