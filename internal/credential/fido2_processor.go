package credential

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	invalidDataMessage         = "Invalid data."
	errorDecryptingCredentials = "Error decrypting credentials."
)

type fido2Processor struct {
	vault   VaultRepository
	intents IntentManager
	logger  *logger.Logger
	now     func() time.Time
}

// NewFido2Processor returns the passkey processor.
func NewFido2Processor(vault VaultRepository, intents IntentManager, log *logger.Logger, opts ...ProcessorOption) Fido2Processor {
	o := newProcessorOptions(opts)
	return &fido2Processor{
		vault:   vault,
		intents: intents,
		logger:  log,
		now:     o.now,
	}
}

func (p *fido2Processor) ProcessCreateCredentialRequest(
	_ context.Context,
	requestCode *atomic.Int32,
	userState *models.UserState,
	request models.BeginCreatePublicKeyCredentialRequest,
) (*models.BeginCreateCredentialResponse, error) {
	if strings.TrimSpace(request.RequestJSON) == "" || !json.Valid([]byte(request.RequestJSON)) {
		return nil, nil
	}

	return buildCreateEntries(p.intents, requestCode, userState, ActionCreatePasskey, passkeyDescriptionFormat, p.now())
}

func (p *fido2Processor) ProcessGetCredentialRequest(
	ctx context.Context,
	requestCode *atomic.Int32,
	activeUserID string,
	options []models.BeginGetPublicKeyCredentialOption,
) ([]models.CredentialEntry, error) {
	if len(options) == 0 {
		return nil, nil
	}

	// Every option filters the same decrypted set, so decrypt once.
	var views []models.Fido2CredentialAutofillView
	decrypted := false

	var entries []models.CredentialEntry
	for _, option := range options {
		rpID, err := relyingPartyID(option.RequestJSON)
		if err != nil {
			p.logger.Err(err).
				Str("func", "fido2Processor.ProcessGetCredentialRequest").
				Str("option_id", option.ID).
				Msg("unparseable passkey request options")
			return nil, UnknownError(models.CredentialOpGet, invalidDataMessage)
		}

		if !decrypted {
			views, err = p.decryptPasskeys(ctx, activeUserID)
			if err != nil {
				return nil, err
			}
			decrypted = true
		}

		for _, view := range views {
			if view.RpID != rpID {
				continue
			}

			intent, err := p.intents.CreatePendingIntent(
				ActionGetPasskey,
				nextRequestCode(requestCode),
				models.PendingIntentExtras{
					UserID:       activeUserID,
					CipherID:     view.CipherID,
					CredentialID: view.CredentialID,
					OptionID:     option.ID,
				},
			)
			if err != nil {
				return nil, err
			}

			username := view.UserNameForUI
			if username == "" {
				username = noUsernameLabel
			}

			entries = append(entries, models.CredentialEntry{
				Type:          models.CredentialTypePublicKey,
				Username:      username,
				OptionID:      option.ID,
				CipherID:      view.CipherID,
				PendingIntent: intent,
			})
		}
	}

	return entries, nil
}

func (p *fido2Processor) decryptPasskeys(ctx context.Context, userID string) ([]models.Fido2CredentialAutofillView, error) {
	ciphers, err := p.vault.GetFido2Ciphers(ctx, userID)
	if err != nil {
		return nil, err
	}

	views, err := p.vault.DecryptFido2CredentialAutofillViews(ctx, userID, ciphers...)
	if err != nil {
		p.logger.Err(err).
			Str("func", "fido2Processor.decryptPasskeys").
			Str("user_id", userID).
			Msg("error decrypting passkeys")
		return nil, UnknownError(models.CredentialOpGet, errorDecryptingCredentials)
	}

	return views, nil
}

type publicKeyRequestOptions struct {
	RpID string `json:"rpId"`
}

// relyingPartyID extracts the relying party id from WebAuthn request
// options.
func relyingPartyID(requestJSON string) (string, error) {
	var opts publicKeyRequestOptions
	if err := json.Unmarshal([]byte(requestJSON), &opts); err != nil {
		return "", err
	}
	if opts.RpID == "" {
		return "", errMissingRpID
	}
	return opts.RpID, nil
}
