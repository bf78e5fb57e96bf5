package models

import "time"

// CipherType defines the semantic type of the encrypted payload stored in
// Cipher.Data. Only logins participate in credential provisioning.
type CipherType int

const (
	CipherTypeLogin CipherType = 1
	CipherTypeNote  CipherType = 2
	CipherTypeCard  CipherType = 3
)

// Cipher is a vault item as stored: metadata in the clear, payload
// encrypted with the owner's user key.
type Cipher struct {
	ID     string
	UserID string
	Type   CipherType
	// Name is encrypted alongside the payload in real vaults; it is kept in
	// the clear here only for listing.
	Name         string
	Data         string
	HasFido2     bool
	Deleted      bool
	RevisionDate time.Time
}

// CipherView is a decrypted login cipher.
type CipherView struct {
	ID    string    `json:"-"`
	Name  string    `json:"name"`
	Login LoginView `json:"login"`
}

// LoginView is decrypted login material.
type LoginView struct {
	Username         string            `json:"username"`
	Password         string            `json:"password"`
	URIs             []LoginURI        `json:"uris,omitempty"`
	Fido2Credentials []Fido2Credential `json:"fido2_credentials,omitempty"`
}

// LoginURI is a resource (web origin or androidapp:// id) a login applies to.
type LoginURI struct {
	URI string `json:"uri"`
}

// Fido2Credential is the decrypted passkey material attached to a login.
type Fido2Credential struct {
	CredentialID    string `json:"credential_id"`
	RpID            string `json:"rp_id"`
	UserHandle      string `json:"user_handle,omitempty"`
	UserName        string `json:"user_name,omitempty"`
	UserDisplayName string `json:"user_display_name,omitempty"`
	KeyValue        string `json:"key_value,omitempty"`
	Counter         uint32 `json:"counter"`
}

// Fido2CredentialAutofillView is the subset of a passkey needed to offer it.
type Fido2CredentialAutofillView struct {
	CredentialID  string
	CipherID      string
	RpID          string
	UserNameForUI string
	UserHandle    string
}

// LoginCredential is a login offered for password autofill. CipherID is
// empty for items that were never saved.
type LoginCredential struct {
	CipherID string
	Name     string
	Username string
	Password string
}
