// Package secure provides encrypted-at-rest storage for sensitive
// candidate fields and the masking helpers used to keep PII out of logs.
package secure

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher transforms field values for storage. Implementations must
// satisfy the round-trip invariant: Decrypt(Encrypt(v)) == v for every v.
type Cipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(opaque string) (string, error)
}

// AEADCipher encrypts with XChaCha20-Poly1305 and encodes the sealed
// payload as base64. The nonce is prepended to the ciphertext.
type AEADCipher struct {
	key []byte
}

// NewAEADCipher creates a cipher from a 32-byte key.
func NewAEADCipher(key []byte) (*AEADCipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key length: %d (must be %d)", len(key), chacha20poly1305.KeySize)
	}
	return &AEADCipher{key: key}, nil
}

// GenerateKey returns a fresh random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// Encrypt seals the plaintext and returns base64(nonce || ciphertext).
func (c *AEADCipher) Encrypt(plain string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt.
func (c *AEADCipher) Decrypt(opaque string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return "", fmt.Errorf("failed to decode payload: %w", err)
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("payload too short: %d bytes", len(sealed))
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt payload: %w", err)
	}
	return string(plain), nil
}

// EncodingCipher is the fallback strategy: plain base64 encoding. It is
// not confidential but keeps the storage format uniform when no key is
// configured.
type EncodingCipher struct{}

// Encrypt base64-encodes the value.
func (EncodingCipher) Encrypt(plain string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plain)), nil
}

// Decrypt base64-decodes the value.
func (EncodingCipher) Decrypt(opaque string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return "", fmt.Errorf("failed to decode payload: %w", err)
	}
	return string(decoded), nil
}

// HashEmail returns a hex sha256 digest, used to key stored interviews
// without persisting the address in clear.
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}
