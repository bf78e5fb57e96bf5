package http

import (
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-pass-provider/models"
)

type beginCreateRequest struct {
	Type           models.CredentialType  `json:"type"`
	RequestJSON    string                 `json:"request_json,omitempty"`
	ClientDataHash []byte                 `json:"client_data_hash,omitempty"`
	CallingApp     *models.CallingAppInfo `json:"calling_app,omitempty"`
}

func (r beginCreateRequest) toModel() (models.BeginCreateCredentialRequest, error) {
	switch r.Type {
	case models.CredentialTypePublicKey:
		return models.BeginCreatePublicKeyCredentialRequest{
			CallingAppInfo: r.CallingApp,
			RequestJSON:    r.RequestJSON,
			ClientDataHash: r.ClientDataHash,
		}, nil
	case models.CredentialTypePassword:
		return models.BeginCreatePasswordCredentialRequest{CallingAppInfo: r.CallingApp}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCredentialType, r.Type)
	}
}

type beginGetOption struct {
	Type           models.CredentialType `json:"type"`
	ID             string                `json:"id"`
	RequestJSON    string                `json:"request_json,omitempty"`
	ClientDataHash []byte                `json:"client_data_hash,omitempty"`
	AllowedUserIDs []string              `json:"allowed_user_ids,omitempty"`
}

type beginGetRequest struct {
	Options    []beginGetOption       `json:"options"`
	CallingApp *models.CallingAppInfo `json:"calling_app,omitempty"`
}

func (r beginGetRequest) toModel() (models.BeginGetCredentialRequest, error) {
	request := models.BeginGetCredentialRequest{
		Options:        make([]models.BeginGetCredentialOption, 0, len(r.Options)),
		CallingAppInfo: r.CallingApp,
	}

	for _, o := range r.Options {
		switch o.Type {
		case models.CredentialTypePublicKey:
			request.Options = append(request.Options, models.BeginGetPublicKeyCredentialOption{
				ID:             o.ID,
				RequestJSON:    o.RequestJSON,
				ClientDataHash: o.ClientDataHash,
			})
		case models.CredentialTypePassword:
			request.Options = append(request.Options, models.BeginGetPasswordOption{
				ID:             o.ID,
				AllowedUserIDs: o.AllowedUserIDs,
			})
		default:
			return models.BeginGetCredentialRequest{}, fmt.Errorf("%w: %q", ErrUnknownCredentialType, o.Type)
		}
	}

	return request, nil
}

type clearRequest struct {
	CallingApp *models.CallingAppInfo `json:"calling_app,omitempty"`
}

type credentialErrorResponse struct {
	Error *models.CredentialError `json:"error"`
}

// completionStatus is how the hosting app reports a passkey ceremony.
type completionStatus string

const (
	completionSuccess   completionStatus = "success"
	completionError     completionStatus = "error"
	completionCancelled completionStatus = "cancelled"
)

type passkeyCompletionRequest struct {
	Token        string           `json:"token"`
	Status       completionStatus `json:"status"`
	ResponseJSON string           `json:"response_json,omitempty"`
	Message      string           `json:"message,omitempty"`
}

func (r passkeyCompletionRequest) registrationResult() (models.Fido2RegisterCredentialResult, error) {
	switch r.Status {
	case completionSuccess:
		return models.Fido2RegisterSuccess{RegistrationResponseJSON: r.ResponseJSON}, nil
	case completionError:
		return models.Fido2RegisterError{Message: r.Message}, nil
	case completionCancelled:
		return models.Fido2RegisterCancelled{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompletionStatus, r.Status)
	}
}

// assertionResult has no cancelled variant: a dismissed assertion is
// reported as an error.
func (r passkeyCompletionRequest) assertionResult() (models.Fido2CredentialAssertionResult, error) {
	switch r.Status {
	case completionSuccess:
		return models.Fido2AssertionSuccess{ResponseJSON: r.ResponseJSON}, nil
	case completionError, completionCancelled:
		return models.Fido2AssertionError{Message: r.Message}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompletionStatus, r.Status)
	}
}

type passwordRegistrationRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
	URI      string `json:"uri"`
}

type passwordAssertionRequest struct {
	Token string `json:"token"`
}

type unlockCompletionRequest struct {
	Token          string          `json:"token"`
	MasterPassword string          `json:"master_password"`
	Request        beginGetRequest `json:"request"`
}

type lifecycleRequest struct {
	State string `json:"state"`
}

func (r lifecycleRequest) toModel() (models.AppForegroundState, error) {
	switch r.State {
	case models.AppForegrounded.String():
		return models.AppForegrounded, nil
	case models.AppBackgrounded.String():
		return models.AppBackgrounded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLifecycleState, r.State)
	}
}

type switchAccountRequest struct {
	UserID string `json:"user_id"`
}

type settingsResponse struct {
	Timeout models.VaultTimeout       `json:"timeout"`
	Action  models.VaultTimeoutAction `json:"action"`
}

// settingsUpdateRequest leaves a setting unchanged when its field is absent.
type settingsUpdateRequest struct {
	Timeout *models.VaultTimeout       `json:"timeout,omitempty"`
	Action  *models.VaultTimeoutAction `json:"action,omitempty"`
}

type unlockRequest struct {
	MasterPassword string `json:"master_password"`
}

type unlockResponse struct {
	Result string `json:"result"`
}

type vaultStateResponse struct {
	UnlockedUserIDs  []string `json:"unlocked_user_ids"`
	UnlockingUserIDs []string `json:"unlocking_user_ids"`
}

func newVaultStateResponse(state models.VaultState) vaultStateResponse {
	return vaultStateResponse{
		UnlockedUserIDs:  sortedIDs(state.UnlockedUserIDs),
		UnlockingUserIDs: sortedIDs(state.UnlockingUserIDs),
	}
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	ids = append(ids, slices.Sorted(maps.Keys(set))...)
	return ids
}
