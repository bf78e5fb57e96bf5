package crypto

import (
	"context"

	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChain holds the symmetric primitives of the vault: key generation,
// master-key derivation, key wrapping and payload encryption.
//
// Key hierarchy:
//
//	MasterKey = Argon2id(masterPassword, SHA-256(email), kdf)
//	UserKey   = random 256-bit key, stored wrapped: WrapKey(UserKey, MasterKey)
//	Items     = EncryptData(item, UserKey)
type KeyChain interface {
	// GenerateUserKey returns a new random 256-bit user key.
	GenerateUserKey() (models.Secret, error)

	// DeriveMasterKey derives the key that wraps the user key.
	DeriveMasterKey(masterPassword, email string, kdf models.Kdf) models.Secret

	// WrapKey encrypts key with wrappingKey (AES-256-GCM) and returns
	// base64(nonce || ciphertext).
	WrapKey(key, wrappingKey []byte) (string, error)

	// UnwrapKey reverses WrapKey. An error almost always means the
	// wrapping key is wrong.
	UnwrapKey(wrapped string, wrappingKey []byte) (models.Secret, error)

	// EncryptData serializes v to JSON and encrypts it with key.
	EncryptData(v any, key []byte) (string, error)

	// DecryptData decrypts a blob produced by EncryptData into target.
	DecryptData(encryptedB64 string, key []byte, target any) error
}

// VaultSDK keeps the decrypted key material of every unlocked user in
// memory and performs item encryption on their behalf.
type VaultSDK interface {
	InitializeCrypto(ctx context.Context, userID string, request models.InitUserCryptoRequest) (models.InitializeCryptoResult, error)
	InitializeOrganizationCrypto(ctx context.Context, userID string, request models.InitOrgCryptoRequest) (models.InitializeCryptoResult, error)
	ClearCrypto(userID string)
	GetUserEncryptionKey(ctx context.Context, userID string) (models.Secret, error)

	DecryptCipher(ctx context.Context, userID string, cipher models.Cipher) (models.CipherView, error)
	EncryptCipher(ctx context.Context, userID string, view models.CipherView) (models.Cipher, error)
	DecryptFido2CredentialAutofillViews(ctx context.Context, userID string, ciphers ...models.Cipher) ([]models.Fido2CredentialAutofillView, error)

	// MakeAccountKeys provisions key material for a new account.
	MakeAccountKeys(masterPassword, email string, kdf models.Kdf) (AccountKeys, error)
}
