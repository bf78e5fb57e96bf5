package adapter

import "github.com/MKhiriev/go-pass-provider/models"

// VaultStatus is the wire form of the vault lock state. Both lists are sorted.
type VaultStatus struct {
	UnlockedUserIDs  []string `json:"unlocked_user_ids"`
	UnlockingUserIDs []string `json:"unlocking_user_ids"`
}

// Settings are the lock-lifecycle settings of one account.
type Settings struct {
	Timeout models.VaultTimeout       `json:"timeout"`
	Action  models.VaultTimeoutAction `json:"action"`
}

// SettingsUpdate leaves a setting unchanged when its field is nil.
type SettingsUpdate struct {
	Timeout *models.VaultTimeout       `json:"timeout,omitempty"`
	Action  *models.VaultTimeoutAction `json:"action,omitempty"`
}

// CredentialQuery describes a simulated get request from a calling app.
type CredentialQuery struct {
	// PackageName and Origin identify the calling app.
	PackageName string
	Origin      string

	// Passwords adds a password option to the request.
	Passwords bool
	// AllowedUserIDs restricts the password option to these accounts.
	AllowedUserIDs []string

	// PasskeyRequestJSON, when set, adds a public-key option carrying this
	// WebAuthn request.
	PasskeyRequestJSON string
}

type callingApp struct {
	PackageName string `json:"package_name"`
	Origin      string `json:"origin,omitempty"`
}

type beginGetOption struct {
	Type           models.CredentialType `json:"type"`
	ID             string                `json:"id"`
	RequestJSON    string                `json:"request_json,omitempty"`
	AllowedUserIDs []string              `json:"allowed_user_ids,omitempty"`
}

type beginGetRequest struct {
	Options    []beginGetOption `json:"options"`
	CallingApp *callingApp      `json:"calling_app,omitempty"`
}

func (q CredentialQuery) toRequest() beginGetRequest {
	request := beginGetRequest{Options: []beginGetOption{}}

	if q.PackageName != "" || q.Origin != "" {
		request.CallingApp = &callingApp{PackageName: q.PackageName, Origin: q.Origin}
	}
	if q.PasskeyRequestJSON != "" {
		request.Options = append(request.Options, beginGetOption{
			Type:        models.CredentialTypePublicKey,
			ID:          "passkey",
			RequestJSON: q.PasskeyRequestJSON,
		})
	}
	if q.Passwords {
		request.Options = append(request.Options, beginGetOption{
			Type:           models.CredentialTypePassword,
			ID:             "password",
			AllowedUserIDs: q.AllowedUserIDs,
		})
	}

	return request
}

type switchAccountRequest struct {
	UserID string `json:"user_id"`
}

type lifecycleRequest struct {
	State string `json:"state"`
}

type unlockRequest struct {
	MasterPassword string `json:"master_password"`
}

type unlockResponse struct {
	Result string `json:"result"`
}

type credentialErrorResponse struct {
	Error *models.CredentialError `json:"error"`
}
