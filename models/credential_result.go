package models

// Fido2RegisterCredentialResult is the outcome of a passkey registration.
type Fido2RegisterCredentialResult interface{ isFido2RegisterResult() }

type (
	Fido2RegisterSuccess   struct{ RegistrationResponseJSON string }
	Fido2RegisterError     struct{ Message string }
	Fido2RegisterCancelled struct{}
)

func (Fido2RegisterSuccess) isFido2RegisterResult()   {}
func (Fido2RegisterError) isFido2RegisterResult()     {}
func (Fido2RegisterCancelled) isFido2RegisterResult() {}

// Fido2CredentialAssertionResult is the outcome of a passkey assertion.
type Fido2CredentialAssertionResult interface{ isFido2AssertionResult() }

type (
	Fido2AssertionSuccess struct{ ResponseJSON string }
	Fido2AssertionError   struct{ Message string }
)

func (Fido2AssertionSuccess) isFido2AssertionResult() {}
func (Fido2AssertionError) isFido2AssertionResult()   {}

// PasswordRegisterCredentialResult is the outcome of saving a password.
type PasswordRegisterCredentialResult interface{ isPasswordRegisterResult() }

type (
	PasswordRegisterSuccess struct{}
	PasswordRegisterError   struct{ Message string }
)

func (PasswordRegisterSuccess) isPasswordRegisterResult() {}
func (PasswordRegisterError) isPasswordRegisterResult()   {}

// PasswordCredentialAssertionResult is the outcome of a password selection.
type PasswordCredentialAssertionResult interface{ isPasswordAssertionResult() }

type (
	PasswordAssertionSuccess struct{ Credential LoginCredential }
	PasswordAssertionError   struct{ Message string }
)

func (PasswordAssertionSuccess) isPasswordAssertionResult() {}
func (PasswordAssertionError) isPasswordAssertionResult()   {}

// Fido2GetCredentialsResult is the passkey half of a get-credentials
// aggregation.
type Fido2GetCredentialsResult interface{ isFido2GetCredentialsResult() }

type (
	Fido2GetCredentialsSuccess struct {
		UserID  string
		Entries []CredentialEntry
	}
	Fido2GetCredentialsError struct{ Message string }
)

func (Fido2GetCredentialsSuccess) isFido2GetCredentialsResult() {}
func (Fido2GetCredentialsError) isFido2GetCredentialsResult()   {}

// PasswordGetCredentialsResult is the password half of a get-credentials
// aggregation.
type PasswordGetCredentialsResult interface{ isPasswordGetCredentialsResult() }

type (
	PasswordGetCredentialsSuccess struct {
		UserID  string
		Entries []CredentialEntry
	}
	PasswordGetCredentialsError struct{ Message string }
)

func (PasswordGetCredentialsSuccess) isPasswordGetCredentialsResult() {}
func (PasswordGetCredentialsError) isPasswordGetCredentialsResult()   {}

// ActivityResultCode mirrors the platform's activity result codes.
type ActivityResultCode int

const (
	ActivityResultCanceled ActivityResultCode = 0
	ActivityResultOK       ActivityResultCode = -1
)

// CreateCredentialResponse is a finished registration. RegistrationResponseJSON
// is empty for passwords.
type CreateCredentialResponse struct {
	Type                     CredentialType `json:"type"`
	RegistrationResponseJSON string         `json:"registration_response_json,omitempty"`
}

// GetCredentialResponse is a finished assertion: either a password or a
// passkey authentication response.
type GetCredentialResponse struct {
	Type                       CredentialType `json:"type"`
	ID                         string         `json:"id,omitempty"`
	Password                   string         `json:"password,omitempty"`
	AuthenticationResponseJSON string         `json:"authentication_response_json,omitempty"`
}

// ActivityResult is what the completion step hands back to the platform.
// Exactly one field is set.
type ActivityResult struct {
	CreateResponse   *CreateCredentialResponse   `json:"create_response,omitempty"`
	GetResponse      *GetCredentialResponse      `json:"get_response,omitempty"`
	BeginGetResponse *BeginGetCredentialResponse `json:"begin_get_response,omitempty"`
	Exception        *CredentialError            `json:"exception,omitempty"`
}
