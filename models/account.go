package models

// KdfType selects the key derivation function for a master password.
type KdfType int

const (
	KdfTypeArgon2id KdfType = iota
)

// Kdf holds the key derivation parameters of an account.
type Kdf struct {
	Type        KdfType `json:"type"`
	Iterations  uint32  `json:"iterations"`
	MemoryKiB   uint32  `json:"memory_kib"`
	Parallelism uint8   `json:"parallelism"`
}

// Account is one logged-in (or soft-logged-out) user on the device.
type Account struct {
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	IsActive        bool   `json:"is_active"`
	IsVaultUnlocked bool   `json:"is_vault_unlocked"`
	IsLoggedIn      bool   `json:"is_logged_in"`
	Kdf             Kdf    `json:"kdf"`
}

// DisplayName is the account name, falling back to the email.
func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Email
}

// UserState is the set of known accounts and which one is active.
type UserState struct {
	ActiveUserID string    `json:"active_user_id"`
	Accounts     []Account `json:"accounts"`
}

// ActiveAccount returns the active account. ok is false when the active
// user id does not match any account.
func (s UserState) ActiveAccount() (Account, bool) {
	return s.Account(s.ActiveUserID)
}

// Account looks up an account by user id.
func (s UserState) Account(userID string) (Account, bool) {
	for _, a := range s.Accounts {
		if a.UserID == userID {
			return a, true
		}
	}
	return Account{}, false
}

// UserIDs returns the ids of all known accounts in order.
func (s UserState) UserIDs() []string {
	ids := make([]string, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		ids = append(ids, a.UserID)
	}
	return ids
}

// Clone returns a copy whose account slice can be mutated freely.
func (s UserState) Clone() UserState {
	out := UserState{ActiveUserID: s.ActiveUserID, Accounts: make([]Account, len(s.Accounts))}
	copy(out.Accounts, s.Accounts)
	return out
}

// NewAccountRequest provisions an account on the device. The master
// password never leaves the process.
type NewAccountRequest struct {
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	MasterPassword string `json:"master_password"`
}
