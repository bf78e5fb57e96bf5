package models

import "fmt"

// CredentialOp names the provider operation that failed.
type CredentialOp string

const (
	CredentialOpCreate CredentialOp = "create_credential"
	CredentialOpGet    CredentialOp = "get_credential"
	CredentialOpClear  CredentialOp = "clear_credential_state"
)

// CredentialErrorKind is the platform-visible error category.
type CredentialErrorKind string

const (
	CredentialErrorUnknown      CredentialErrorKind = "unknown"
	CredentialErrorCancellation CredentialErrorKind = "cancellation"
	CredentialErrorUnsupported  CredentialErrorKind = "unsupported"
)

// CredentialError is the only error shape reported to the platform.
type CredentialError struct {
	Op      CredentialOp        `json:"op,omitempty"`
	Kind    CredentialErrorKind `json:"kind"`
	Message string              `json:"message,omitempty"`
}

func (e *CredentialError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// Is matches another *CredentialError of the same kind; an empty Op on the
// target matches any operation.
func (e *CredentialError) Is(target error) bool {
	t, ok := target.(*CredentialError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Op == "" || t.Op == e.Op)
}
