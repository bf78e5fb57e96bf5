package models

// CallingAppInfo identifies the app that asked for a credential. Origin is
// set for privileged callers (browsers) acting for a web origin.
type CallingAppInfo struct {
	PackageName        string `json:"package_name"`
	SigningCertificate string `json:"signing_certificate,omitempty"`
	Origin             string `json:"origin,omitempty"`
}

// BeginCreateCredentialRequest is a begin-create request from the platform.
// Implemented by BeginCreatePublicKeyCredentialRequest and
// BeginCreatePasswordCredentialRequest.
type BeginCreateCredentialRequest interface {
	CallingApp() *CallingAppInfo
}

// BeginCreatePublicKeyCredentialRequest asks where a new passkey should be
// stored. RequestJSON is the WebAuthn creation options payload.
type BeginCreatePublicKeyCredentialRequest struct {
	CallingAppInfo *CallingAppInfo
	RequestJSON    string
	ClientDataHash []byte
}

// BeginCreatePasswordCredentialRequest asks where a new password should be
// stored.
type BeginCreatePasswordCredentialRequest struct {
	CallingAppInfo *CallingAppInfo
}

func (r BeginCreatePublicKeyCredentialRequest) CallingApp() *CallingAppInfo { return r.CallingAppInfo }
func (r BeginCreatePasswordCredentialRequest) CallingApp() *CallingAppInfo  { return r.CallingAppInfo }

// BeginGetCredentialOption is one option of a begin-get request.
// Implemented by BeginGetPublicKeyCredentialOption and BeginGetPasswordOption.
type BeginGetCredentialOption interface {
	OptionID() string
}

// BeginGetPublicKeyCredentialOption asks for passkeys. RequestJSON is the
// WebAuthn request options payload and carries the relying party id.
type BeginGetPublicKeyCredentialOption struct {
	ID             string
	RequestJSON    string
	ClientDataHash []byte
}

// BeginGetPasswordOption asks for passwords. An empty AllowedUserIDs
// matches every account.
type BeginGetPasswordOption struct {
	ID             string
	AllowedUserIDs []string
}

func (o BeginGetPublicKeyCredentialOption) OptionID() string { return o.ID }
func (o BeginGetPasswordOption) OptionID() string            { return o.ID }

// BeginGetCredentialRequest lists the credential kinds the caller accepts.
type BeginGetCredentialRequest struct {
	Options        []BeginGetCredentialOption
	CallingAppInfo *CallingAppInfo
}

// PublicKeyOptions returns the passkey options in request order.
func (r BeginGetCredentialRequest) PublicKeyOptions() []BeginGetPublicKeyCredentialOption {
	var out []BeginGetPublicKeyCredentialOption
	for _, o := range r.Options {
		if pk, ok := o.(BeginGetPublicKeyCredentialOption); ok {
			out = append(out, pk)
		}
	}
	return out
}

// PasswordOptions returns the password options in request order.
func (r BeginGetCredentialRequest) PasswordOptions() []BeginGetPasswordOption {
	var out []BeginGetPasswordOption
	for _, o := range r.Options {
		if pw, ok := o.(BeginGetPasswordOption); ok {
			out = append(out, pw)
		}
	}
	return out
}

// ClearCredentialStateRequest asks the provider to drop any session state.
type ClearCredentialStateRequest struct {
	CallingAppInfo *CallingAppInfo
}
