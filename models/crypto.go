package models

// InitUserCryptoMethod is how a user's vault key is obtained on unlock.
// Implemented by MasterPasswordMethod and DecryptedKeyMethod.
type InitUserCryptoMethod interface {
	isInitUserCryptoMethod()
}

// MasterPasswordMethod unwraps the encrypted user key with a key derived
// from the master password.
type MasterPasswordMethod struct {
	Password string
	// UserKey is the encrypted user key (base64 nonce||ciphertext).
	UserKey string
}

// DecryptedKeyMethod supplies the user key directly, e.g. a cached
// auto-unlock key.
type DecryptedKeyMethod struct {
	DecryptedUserKey Secret
}

func (MasterPasswordMethod) isInitUserCryptoMethod() {}
func (DecryptedKeyMethod) isInitUserCryptoMethod()   {}

// InitUserCryptoRequest is everything the crypto layer needs to open a
// user's vault.
type InitUserCryptoRequest struct {
	Kdf        Kdf
	Email      string
	PrivateKey string
	Method     InitUserCryptoMethod
}

// InitOrgCryptoRequest carries encrypted organization keys by org id.
type InitOrgCryptoRequest struct {
	OrganizationKeys map[string]string
}

// InitializeCryptoResult is the outcome of a crypto initialization.
type InitializeCryptoResult int

const (
	InitializeCryptoSuccess InitializeCryptoResult = iota
	InitializeCryptoAuthenticationError
)

// ToVaultUnlockResult maps a crypto initialization outcome to an unlock result.
func (r InitializeCryptoResult) ToVaultUnlockResult() VaultUnlockResult {
	if r == InitializeCryptoSuccess {
		return VaultUnlockResultSuccess
	}
	return VaultUnlockResultAuthenticationError
}
