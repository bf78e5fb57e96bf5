package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

type vaultRepository struct {
	ciphers store.CipherRepository
	sdk     crypto.VaultSDK
	ids     *utils.UUIDGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewVaultRepository returns a VaultRepository over the stored ciphers.
// Every read or write needs the owner's vault unlocked in sdk.
func NewVaultRepository(ciphers store.CipherRepository, sdk crypto.VaultSDK, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		ciphers: ciphers,
		sdk:     sdk,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

func (r *vaultRepository) GetFido2Ciphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	loginType, hasFido2 := models.CipherTypeLogin, true

	ciphers, err := r.ciphers.ListCiphers(ctx, userID, store.CipherFilter{Type: &loginType, HasFido2: &hasFido2})
	if err != nil {
		return nil, fmt.Errorf("listing passkey ciphers: %w", err)
	}
	return ciphers, nil
}

func (r *vaultRepository) DecryptFido2CredentialAutofillViews(
	ctx context.Context,
	userID string,
	ciphers ...models.Cipher,
) ([]models.Fido2CredentialAutofillView, error) {
	views, err := r.sdk.DecryptFido2CredentialAutofillViews(ctx, userID, ciphers...)
	if err != nil {
		return nil, mapCryptoError(err)
	}
	return views, nil
}

// SaveLogin stores a new login. Without a name the login is named after the
// host of uri.
func (r *vaultRepository) SaveLogin(ctx context.Context, userID string, login models.LoginCredential, uri string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	if userID == "" || login.Password == "" {
		return models.Cipher{}, ErrInvalidDataProvided
	}

	view := models.CipherView{
		ID:   r.ids.Generate(),
		Name: login.Name,
		Login: models.LoginView{
			Username: login.Username,
			Password: login.Password,
		},
	}
	if view.Name == "" {
		view.Name = displayNameForURI(uri)
	}
	if uri != "" {
		view.Login.URIs = []models.LoginURI{{URI: uri}}
	}

	cipher, err := r.sdk.EncryptCipher(ctx, userID, view)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("encrypting login failed")
		return models.Cipher{}, mapCryptoError(err)
	}
	cipher.RevisionDate = r.now().UTC()

	if err = r.ciphers.SaveCipher(ctx, cipher); err != nil {
		log.Err(err).Str("user_id", userID).Str("cipher_id", cipher.ID).Msg("saving login failed")
		return models.Cipher{}, fmt.Errorf("saving login: %w", err)
	}

	log.Info().Str("user_id", userID).Str("cipher_id", cipher.ID).Msg("login saved")
	return cipher, nil
}

func (r *vaultRepository) GetLogin(ctx context.Context, userID, cipherID string) (models.LoginCredential, error) {
	cipher, err := r.ciphers.GetCipher(ctx, userID, cipherID)
	if err != nil {
		return models.LoginCredential{}, fmt.Errorf("getting login: %w", err)
	}
	if cipher.Deleted {
		return models.LoginCredential{}, store.ErrCipherNotFound
	}
	if cipher.Type != models.CipherTypeLogin {
		return models.LoginCredential{}, ErrCipherNotLogin
	}

	view, err := r.sdk.DecryptCipher(ctx, userID, cipher)
	if err != nil {
		return models.LoginCredential{}, mapCryptoError(err)
	}

	return models.LoginCredential{
		CipherID: cipher.ID,
		Name:     view.Name,
		Username: view.Login.Username,
		Password: view.Login.Password,
	}, nil
}

// mapCryptoError reports a locked vault as ErrVaultLocked.
func mapCryptoError(err error) error {
	if errors.Is(err, crypto.ErrCryptoNotInitialized) {
		return fmt.Errorf("%w: %w", ErrVaultLocked, err)
	}
	return err
}

func displayNameForURI(uri string) string {
	if u, err := url.Parse(uri); err == nil && u.Host != "" {
		return u.Hostname()
	}
	return uri
}
