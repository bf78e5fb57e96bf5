package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
)

const redacted = "[SECRET]"

// Secret holds key material (auto-unlock keys, decrypted user keys).
// Formatting, JSON and text encoding are redacted; the database driver
// receives the raw bytes.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter so `%v`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, redacted)
}

// Bytes returns a copy of the underlying bytes.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	clear(*s)
}

// IsEmpty reports whether the secret holds no bytes.
func (s Secret) IsEmpty() bool { return len(s) == 0 }

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(redacted) }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// Value implements driver.Valuer. A nil secret is stored as NULL.
func (s Secret) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return []byte(s), nil
}

// Scan implements sql.Scanner.
func (s *Secret) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
	case []byte:
		*s = SecretFromBytes(v)
	case string:
		*s = Secret(v)
	default:
		return fmt.Errorf("unsupported scan type %T", src)
	}
	return nil
}

// SecretFromBytes copies in into a new Secret.
func SecretFromBytes(in []byte) Secret {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
