package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-provider/internal/crypto"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/store"
	"github.com/MKhiriev/go-pass-provider/models"
)

const androidAppScheme = "androidapp"

type autofillCipherProvider struct {
	ciphers store.CipherRepository
	sdk     crypto.VaultSDK

	logger *logger.Logger
}

// NewAutofillCipherProvider returns an AutofillCipherProvider over the
// stored logins.
func NewAutofillCipherProvider(ciphers store.CipherRepository, sdk crypto.VaultSDK, logger *logger.Logger) AutofillCipherProvider {
	return &autofillCipherProvider{
		ciphers: ciphers,
		sdk:     sdk,
		logger:  logger,
	}
}

// GetLoginAutofillCiphers returns the logins with a URI matching uri. A
// locked vault has no matches.
func (p *autofillCipherProvider) GetLoginAutofillCiphers(ctx context.Context, userID, uri string) ([]models.LoginCredential, error) {
	log := logger.FromContext(ctx)

	target, ok := parseMatchURI(uri)
	if !ok {
		return nil, nil
	}

	loginType := models.CipherTypeLogin
	ciphers, err := p.ciphers.ListCiphers(ctx, userID, store.CipherFilter{Type: &loginType})
	if err != nil {
		return nil, fmt.Errorf("listing logins: %w", err)
	}

	var out []models.LoginCredential
	for _, cipher := range ciphers {
		view, err := p.sdk.DecryptCipher(ctx, userID, cipher)
		if errors.Is(err, crypto.ErrCryptoNotInitialized) {
			log.Debug().Str("user_id", userID).Msg("vault locked, no autofill logins")
			return nil, nil
		}
		if err != nil {
			log.Warn().Err(err).Str("cipher_id", cipher.ID).Msg("skipping login that does not decrypt")
			continue
		}

		if !loginMatches(view.Login.URIs, target) {
			continue
		}

		out = append(out, models.LoginCredential{
			CipherID: cipher.ID,
			Name:     view.Name,
			Username: view.Login.Username,
			Password: view.Login.Password,
		})
	}

	return out, nil
}

// matchURI is a URI reduced to what autofill compares: app package URIs
// compare whole, web URIs compare by host.
type matchURI struct {
	app  bool
	host string
}

func parseMatchURI(raw string) (matchURI, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return matchURI{}, false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return matchURI{}, false
	}

	if strings.EqualFold(u.Scheme, androidAppScheme) {
		return matchURI{app: true, host: strings.ToLower(u.Host)}, true
	}

	return matchURI{host: strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")}, true
}

func loginMatches(uris []models.LoginURI, target matchURI) bool {
	for _, stored := range uris {
		if m, ok := parseMatchURI(stored.URI); ok && m == target {
			return true
		}
	}
	return false
}
