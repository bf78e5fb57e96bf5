package models

import "time"

// PendingIntent is an opaque activation handle. The platform hands it back
// when the user picks the associated entry; Token carries the signed extras.
type PendingIntent struct {
	Action      string `json:"action"`
	RequestCode int32  `json:"request_code"`
	Token       string `json:"token"`
}

// PendingIntentExtras is the state an activation handle resumes with.
type PendingIntentExtras struct {
	UserID       string `json:"user_id,omitempty"`
	CipherID     string `json:"cipher_id,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	OptionID     string `json:"option_id,omitempty"`
}

// CreateEntry is one selectable destination account for a new credential.
type CreateEntry struct {
	AccountName   string        `json:"account_name"`
	Description   string        `json:"description"`
	PendingIntent PendingIntent `json:"pending_intent"`
	// LastUsedTime is set only for the active account.
	LastUsedTime *time.Time `json:"last_used_time,omitempty"`
}

// CredentialType distinguishes entries in a get response.
type CredentialType string

const (
	CredentialTypePublicKey CredentialType = "public-key"
	CredentialTypePassword  CredentialType = "password"
)

// CredentialEntry is one selectable existing credential.
type CredentialEntry struct {
	Type          CredentialType `json:"type"`
	Username      string         `json:"username"`
	DisplayName   string         `json:"display_name,omitempty"`
	OptionID      string         `json:"option_id"`
	CipherID      string         `json:"cipher_id"`
	PendingIntent PendingIntent  `json:"pending_intent"`
}

// AuthenticationAction asks the user to authenticate (unlock) first.
type AuthenticationAction struct {
	Title         string        `json:"title"`
	PendingIntent PendingIntent `json:"pending_intent"`
}

// Action is a generic entry such as "open the app".
type Action struct {
	Title         string        `json:"title"`
	PendingIntent PendingIntent `json:"pending_intent"`
}

// BeginCreateCredentialResponse lists destinations for a new credential.
type BeginCreateCredentialResponse struct {
	CreateEntries []CreateEntry `json:"create_entries"`
}

// BeginGetCredentialResponse lists matching credentials and actions.
type BeginGetCredentialResponse struct {
	CredentialEntries     []CredentialEntry      `json:"credential_entries"`
	Actions               []Action               `json:"actions"`
	AuthenticationActions []AuthenticationAction `json:"authentication_actions"`
}
