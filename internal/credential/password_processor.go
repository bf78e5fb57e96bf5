package credential

import (
	"context"
	"slices"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

// androidAppScheme prefixes the match URI of callers without a web origin.
const androidAppScheme = "androidapp://"

type passwordProcessor struct {
	autofill AutofillCipherProvider
	intents  IntentManager
	logger   *logger.Logger
	now      func() time.Time
}

// NewPasswordProcessor returns the password processor.
func NewPasswordProcessor(
	autofill AutofillCipherProvider,
	intents IntentManager,
	log *logger.Logger,
	opts ...ProcessorOption,
) PasswordProcessor {
	o := newProcessorOptions(opts)
	return &passwordProcessor{
		autofill: autofill,
		intents:  intents,
		logger:   log,
		now:      o.now,
	}
}

func (p *passwordProcessor) ProcessCreateCredentialRequest(
	_ context.Context,
	requestCode *atomic.Int32,
	userState *models.UserState,
	_ models.BeginCreatePasswordCredentialRequest,
) (*models.BeginCreateCredentialResponse, error) {
	return buildCreateEntries(p.intents, requestCode, userState, ActionCreatePassword, passwordDescriptionFormat, p.now())
}

func (p *passwordProcessor) ProcessGetCredentialRequest(
	ctx context.Context,
	requestCode *atomic.Int32,
	activeUserID string,
	callingApp *models.CallingAppInfo,
	options []models.BeginGetPasswordOption,
) ([]models.CredentialEntry, error) {
	matchURI := matchURIFor(callingApp)
	if matchURI == "" {
		if len(options) > 0 {
			p.logger.Debug().Msg("password request without caller identity, skipping")
		}
		return nil, nil
	}

	var entries []models.CredentialEntry
	for _, option := range options {
		if len(option.AllowedUserIDs) > 0 && !slices.Contains(option.AllowedUserIDs, activeUserID) {
			continue
		}

		logins, err := p.autofill.GetLoginAutofillCiphers(ctx, activeUserID, matchURI)
		if err != nil {
			return nil, err
		}

		for _, login := range logins {
			if login.CipherID == "" {
				continue
			}

			intent, err := p.intents.CreatePendingIntent(
				ActionGetPassword,
				nextRequestCode(requestCode),
				models.PendingIntentExtras{
					UserID:   activeUserID,
					CipherID: login.CipherID,
					OptionID: option.ID,
				},
			)
			if err != nil {
				return nil, err
			}

			entries = append(entries, models.CredentialEntry{
				Type:          models.CredentialTypePassword,
				Username:      login.Username,
				DisplayName:   login.Name,
				OptionID:      option.ID,
				CipherID:      login.CipherID,
				PendingIntent: intent,
			})
		}
	}

	return entries, nil
}

// matchURIFor prefers the caller's web origin and falls back to its package
// name.
func matchURIFor(app *models.CallingAppInfo) string {
	switch {
	case app == nil:
		return ""
	case app.Origin != "":
		return app.Origin
	case app.PackageName != "":
		return androidAppScheme + app.PackageName
	default:
		return ""
	}
}
