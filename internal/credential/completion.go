package credential

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/models"
)

// CompletionManager turns the outcome of a resumed flow into the result
// handed back to the platform.
type CompletionManager interface {
	CompleteFido2Registration(result models.Fido2RegisterCredentialResult)
	CompleteFido2Assertion(result models.Fido2CredentialAssertionResult)
	CompletePasswordRegistration(result models.PasswordRegisterCredentialResult)
	CompletePasswordAssertion(result models.PasswordCredentialAssertionResult)
	// CompleteGetCredentialRequest merges both halves; a nil or failed
	// half contributes no entries.
	CompleteGetCredentialRequest(fido2 models.Fido2GetCredentialsResult, password models.PasswordGetCredentialsResult)
}

type completionManager struct {
	host    ActivityHost
	intents IntentManager
	logger  *logger.Logger
}

// NewCompletionManager returns a CompletionManager that reports to host.
// Every completion sets an OK result and finishes the host, errors included:
// the error travels inside the result.
func NewCompletionManager(host ActivityHost, intents IntentManager, log *logger.Logger) CompletionManager {
	return &completionManager{
		host:    host,
		intents: intents,
		logger:  log,
	}
}

func (m *completionManager) CompleteFido2Registration(result models.Fido2RegisterCredentialResult) {
	const op = models.CredentialOpCreate

	var out models.ActivityResult
	switch r := result.(type) {
	case models.Fido2RegisterSuccess:
		out.CreateResponse = &models.CreateCredentialResponse{
			Type:                     models.CredentialTypePublicKey,
			RegistrationResponseJSON: r.RegistrationResponseJSON,
		}
	case models.Fido2RegisterError:
		out.Exception = UnknownError(op, r.Message)
	case models.Fido2RegisterCancelled:
		out.Exception = CancellationError(op)
	default:
		out.Exception = UnknownError(op, "")
	}

	m.finish(out)
}

func (m *completionManager) CompleteFido2Assertion(result models.Fido2CredentialAssertionResult) {
	var out models.ActivityResult
	switch r := result.(type) {
	case models.Fido2AssertionSuccess:
		out.GetResponse = &models.GetCredentialResponse{
			Type:                       models.CredentialTypePublicKey,
			AuthenticationResponseJSON: r.ResponseJSON,
		}
	case models.Fido2AssertionError:
		out.Exception = UnknownError(models.CredentialOpGet, r.Message)
	default:
		out.Exception = UnknownError(models.CredentialOpGet, "")
	}

	m.finish(out)
}

func (m *completionManager) CompletePasswordRegistration(result models.PasswordRegisterCredentialResult) {
	var out models.ActivityResult
	switch r := result.(type) {
	case models.PasswordRegisterSuccess:
		out.CreateResponse = &models.CreateCredentialResponse{Type: models.CredentialTypePassword}
	case models.PasswordRegisterError:
		out.Exception = UnknownError(models.CredentialOpCreate, r.Message)
	default:
		out.Exception = UnknownError(models.CredentialOpCreate, "")
	}

	m.finish(out)
}

func (m *completionManager) CompletePasswordAssertion(result models.PasswordCredentialAssertionResult) {
	var out models.ActivityResult
	switch r := result.(type) {
	case models.PasswordAssertionSuccess:
		out.GetResponse = &models.GetCredentialResponse{
			Type:     models.CredentialTypePassword,
			ID:       r.Credential.Username,
			Password: r.Credential.Password,
		}
	case models.PasswordAssertionError:
		out.Exception = UnknownError(models.CredentialOpGet, r.Message)
	default:
		out.Exception = UnknownError(models.CredentialOpGet, "")
	}

	m.finish(out)
}

func (m *completionManager) CompleteGetCredentialRequest(
	fido2 models.Fido2GetCredentialsResult,
	password models.PasswordGetCredentialsResult,
) {
	const op = models.CredentialOpGet

	var entries []models.CredentialEntry
	if r, ok := fido2.(models.Fido2GetCredentialsSuccess); ok {
		entries = append(entries, r.Entries...)
	}
	if r, ok := password.(models.PasswordGetCredentialsSuccess); ok {
		entries = append(entries, r.Entries...)
	}

	if len(entries) == 0 {
		m.finish(models.ActivityResult{Exception: UnknownError(op, "")})
		return
	}

	intent, err := m.intents.CreatePendingIntent(ActionOpenVault, rand.Int32(), models.PendingIntentExtras{})
	if err != nil {
		m.logger.Err(err).
			Str("func", "completionManager.CompleteGetCredentialRequest").
			Msg("error creating open vault action")
		m.finish(models.ActivityResult{Exception: UnknownError(op, "")})
		return
	}

	m.finish(models.ActivityResult{BeginGetResponse: &models.BeginGetCredentialResponse{
		CredentialEntries:     entries,
		Actions:               []models.Action{{Title: openVaultActionTitle, PendingIntent: intent}},
		AuthenticationActions: []models.AuthenticationAction{},
	}})
}

func (m *completionManager) finish(result models.ActivityResult) {
	m.host.SetResult(models.ActivityResultOK, result)
	m.host.Finish()
}
