// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-pass-provider/models"
)

const keyLen = 32

// DefaultKdf holds the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKdf = models.Kdf{
	Type:        models.KdfTypeArgon2id,
	Iterations:  1,
	MemoryKiB:   64 * 1024,
	Parallelism: 4,
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs a [KeyChain].
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateUserKey implements [KeyChain]. It reads 32 random bytes from the
// OS CSPRNG.
func (k *keyChain) GenerateUserKey() (models.Secret, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveMasterKey implements [KeyChain]. Zero-valued kdf fields fall back to
// [DefaultKdf]. The salt is SHA-256 of the lower-cased email so the same
// password yields different keys for different accounts.
func (k *keyChain) DeriveMasterKey(masterPassword, email string, kdf models.Kdf) models.Secret {
	kdf = withKdfDefaults(kdf)
	salt := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))

	return argon2.IDKey(
		[]byte(masterPassword),
		salt[:],
		kdf.Iterations,
		kdf.MemoryKiB,
		kdf.Parallelism,
		keyLen,
	)
}

// WrapKey implements [KeyChain].
func (k *keyChain) WrapKey(key, wrappingKey []byte) (string, error) {
	blob, err := seal(key, wrappingKey)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// UnwrapKey implements [KeyChain].
func (k *keyChain) UnwrapKey(wrapped string, wrappingKey []byte) (models.Secret, error) {
	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	key, err := open(blob, wrappingKey)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// EncryptData implements [KeyChain]. It marshals v to JSON, then encrypts it
// with key using AES-256-GCM. The output is a Base64 (standard encoding)
// string of the blob: nonce (12 bytes) ‖ ciphertext.
func (k *keyChain) EncryptData(v any, key []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	blob, err := seal(plaintext, key)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptData implements [KeyChain]. target must be a non-nil pointer, as
// for [encoding/json.Unmarshal].
func (k *keyChain) DecryptData(encryptedB64 string, key []byte, target any) error {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	plaintext, err := open(blob, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// seal returns nonce || ciphertext.
func seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func withKdfDefaults(kdf models.Kdf) models.Kdf {
	if kdf.Iterations == 0 {
		kdf.Iterations = DefaultKdf.Iterations
	}
	if kdf.MemoryKiB == 0 {
		kdf.MemoryKiB = DefaultKdf.MemoryKiB
	}
	if kdf.Parallelism == 0 {
		kdf.Parallelism = DefaultKdf.Parallelism
	}
	return kdf
}
