package crypto

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

// AccountKeys is the key material of a freshly provisioned account. Only
// the encrypted fields are persisted.
type AccountKeys struct {
	UserKey             models.Secret
	EncryptedUserKey    string
	EncryptedPrivateKey string
}

type vaultSDK struct {
	keyChain KeyChain
	logger   *logger.Logger

	mu       sync.RWMutex
	userKeys map[string]models.Secret
	orgKeys  map[string]map[string]models.Secret
}

// NewVaultSDK returns a [VaultSDK] with no unlocked users.
func NewVaultSDK(keyChain KeyChain, log *logger.Logger) VaultSDK {
	return &vaultSDK{
		keyChain: keyChain,
		logger:   log,
		userKeys: make(map[string]models.Secret),
		orgKeys:  make(map[string]map[string]models.Secret),
	}
}

// InitializeCrypto obtains the user key with the requested method and
// checks it against the encrypted private key. A wrong password or key
// yields InitializeCryptoAuthenticationError with a nil error; a non-nil
// error means the request itself could not be processed.
func (s *vaultSDK) InitializeCrypto(ctx context.Context, userID string, request models.InitUserCryptoRequest) (models.InitializeCryptoResult, error) {
	if err := ctx.Err(); err != nil {
		return models.InitializeCryptoAuthenticationError, err
	}

	var userKey models.Secret
	switch method := request.Method.(type) {
	case models.MasterPasswordMethod:
		masterKey := s.keyChain.DeriveMasterKey(method.Password, request.Email, request.Kdf)
		defer masterKey.Zero()

		key, err := s.keyChain.UnwrapKey(method.UserKey, masterKey)
		if errors.Is(err, ErrDecryptionFailed) {
			return models.InitializeCryptoAuthenticationError, nil
		}
		if err != nil {
			return models.InitializeCryptoAuthenticationError, fmt.Errorf("unwrap user key: %w", err)
		}
		userKey = key
	case models.DecryptedKeyMethod:
		if len(method.DecryptedUserKey) != keyLen {
			return models.InitializeCryptoAuthenticationError, nil
		}
		userKey = models.SecretFromBytes(method.DecryptedUserKey)
	default:
		return models.InitializeCryptoAuthenticationError, fmt.Errorf("unsupported init method %T", request.Method)
	}

	if request.PrivateKey != "" {
		var privateKey []byte
		if err := s.keyChain.DecryptData(request.PrivateKey, userKey, &privateKey); err != nil {
			s.logger.Debug().Err(err).Str("user_id", userID).Msg("private key does not decrypt with user key")
			userKey.Zero()
			return models.InitializeCryptoAuthenticationError, nil
		}
		clear(privateKey)
	}

	s.mu.Lock()
	if old, ok := s.userKeys[userID]; ok {
		old.Zero()
	}
	s.userKeys[userID] = userKey
	s.mu.Unlock()

	return models.InitializeCryptoSuccess, nil
}

// InitializeOrganizationCrypto unwraps organization keys with the user key.
func (s *vaultSDK) InitializeOrganizationCrypto(ctx context.Context, userID string, request models.InitOrgCryptoRequest) (models.InitializeCryptoResult, error) {
	userKey, err := s.GetUserEncryptionKey(ctx, userID)
	if err != nil {
		return models.InitializeCryptoAuthenticationError, err
	}
	defer userKey.Zero()

	keys := make(map[string]models.Secret, len(request.OrganizationKeys))
	for orgID, wrapped := range request.OrganizationKeys {
		key, err := s.keyChain.UnwrapKey(wrapped, userKey)
		if err != nil {
			for _, k := range keys {
				k.Zero()
			}
			s.logger.Debug().Err(err).Str("user_id", userID).Str("org_id", orgID).Msg("organization key does not unwrap")
			return models.InitializeCryptoAuthenticationError, nil
		}
		keys[orgID] = key
	}

	s.mu.Lock()
	s.zeroOrgKeysLocked(userID)
	s.orgKeys[userID] = keys
	s.mu.Unlock()

	return models.InitializeCryptoSuccess, nil
}

// ClearCrypto zeroes and forgets all key material of userID.
func (s *vaultSDK) ClearCrypto(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.userKeys[userID]; ok {
		key.Zero()
		delete(s.userKeys, userID)
	}
	s.zeroOrgKeysLocked(userID)
	delete(s.orgKeys, userID)
}

func (s *vaultSDK) zeroOrgKeysLocked(userID string) {
	for _, k := range s.orgKeys[userID] {
		k.Zero()
	}
}

// GetUserEncryptionKey returns a copy of the user key. Callers own the copy.
func (s *vaultSDK) GetUserEncryptionKey(_ context.Context, userID string) (models.Secret, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.userKeys[userID]
	if !ok {
		return nil, ErrCryptoNotInitialized
	}
	return models.SecretFromBytes(key), nil
}

func (s *vaultSDK) DecryptCipher(ctx context.Context, userID string, cipher models.Cipher) (models.CipherView, error) {
	if cipher.Type != models.CipherTypeLogin {
		return models.CipherView{}, ErrUnsupportedCipherType
	}

	key, err := s.GetUserEncryptionKey(ctx, userID)
	if err != nil {
		return models.CipherView{}, err
	}
	defer key.Zero()

	var login models.LoginView
	if err = s.keyChain.DecryptData(cipher.Data, key, &login); err != nil {
		return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", cipher.ID, err)
	}

	return models.CipherView{ID: cipher.ID, Name: cipher.Name, Login: login}, nil
}

func (s *vaultSDK) EncryptCipher(ctx context.Context, userID string, view models.CipherView) (models.Cipher, error) {
	key, err := s.GetUserEncryptionKey(ctx, userID)
	if err != nil {
		return models.Cipher{}, err
	}
	defer key.Zero()

	data, err := s.keyChain.EncryptData(view.Login, key)
	if err != nil {
		return models.Cipher{}, fmt.Errorf("encrypt cipher: %w", err)
	}

	return models.Cipher{
		ID:       view.ID,
		UserID:   userID,
		Type:     models.CipherTypeLogin,
		Name:     view.Name,
		Data:     data,
		HasFido2: len(view.Login.Fido2Credentials) > 0,
	}, nil
}

// DecryptFido2CredentialAutofillViews returns one view per passkey found in
// ciphers. Any decryption failure fails the whole call.
func (s *vaultSDK) DecryptFido2CredentialAutofillViews(ctx context.Context, userID string, ciphers ...models.Cipher) ([]models.Fido2CredentialAutofillView, error) {
	var views []models.Fido2CredentialAutofillView
	for _, cipher := range ciphers {
		view, err := s.DecryptCipher(ctx, userID, cipher)
		if err != nil {
			return nil, err
		}

		for _, cred := range view.Login.Fido2Credentials {
			views = append(views, models.Fido2CredentialAutofillView{
				CredentialID:  cred.CredentialID,
				CipherID:      cipher.ID,
				RpID:          cred.RpID,
				UserNameForUI: firstNonEmpty(cred.UserName, cred.UserDisplayName, view.Login.Username),
				UserHandle:    cred.UserHandle,
			})
		}
	}
	return views, nil
}

// MakeAccountKeys generates a user key wrapped with the master key, and an
// X25519 private key encrypted with the user key.
func (s *vaultSDK) MakeAccountKeys(masterPassword, email string, kdf models.Kdf) (AccountKeys, error) {
	userKey, err := s.keyChain.GenerateUserKey()
	if err != nil {
		return AccountKeys{}, fmt.Errorf("generate user key: %w", err)
	}

	masterKey := s.keyChain.DeriveMasterKey(masterPassword, email, kdf)
	defer masterKey.Zero()

	encUserKey, err := s.keyChain.WrapKey(userKey, masterKey)
	if err != nil {
		return AccountKeys{}, fmt.Errorf("wrap user key: %w", err)
	}

	privateKey, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return AccountKeys{}, fmt.Errorf("generate private key: %w", err)
	}
	encPrivateKey, err := s.keyChain.EncryptData(privateKey.Bytes(), userKey)
	if err != nil {
		return AccountKeys{}, fmt.Errorf("encrypt private key: %w", err)
	}

	return AccountKeys{
		UserKey:             userKey,
		EncryptedUserKey:    encUserKey,
		EncryptedPrivateKey: encPrivateKey,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
