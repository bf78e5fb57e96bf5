package crypto

import "errors"

var (
	// ErrCryptoNotInitialized is returned when an operation needs the key of
	// a user whose vault is locked.
	ErrCryptoNotInitialized = errors.New("crypto not initialized for user")
	// ErrCiphertextTooShort is returned for blobs shorter than a GCM nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrDecryptionFailed is returned when authentication of a ciphertext
	// fails.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrUnsupportedCipherType is returned when decrypting a non-login item
	// as a login.
	ErrUnsupportedCipherType = errors.New("unsupported cipher type")
)
