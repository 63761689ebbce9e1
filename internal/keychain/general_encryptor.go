// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/ArmCyber/go-keychain/internal/codec"
)

// GeneralKeySize is the size, in bytes, of a GeneralEncryptor symmetric key.
const GeneralKeySize = 32

// generalNonceSize is the AES-256-GCM nonce size used for every GeneralToken.
const generalNonceSize = 12

// GeneralEncryptor implements the symmetric AEAD layer of the keychain:
// AES-256-GCM with a 12-byte nonce and associated data derived
// deterministically from the nonce itself (bytes 4 through 7). Deriving the
// AAD from public, nonce-carried bytes is cryptographically a no-op, but it
// pins every conforming implementation to the same computation so tokens
// interoperate; the AAD bytes MUST NOT be omitted or varied.
//
// A GeneralToken is the payload envelope [nonce(12) | ciphertext+tag].
type GeneralEncryptor struct {
	entropy Entropy
}

// NewGeneralEncryptor constructs a [GeneralEncryptor] drawing nonces from entropy.
func NewGeneralEncryptor(entropy Entropy) *GeneralEncryptor {
	return &GeneralEncryptor{entropy: entropy}
}

// GenerateKey returns a fresh 32-byte AES-256-GCM key.
func (g *GeneralEncryptor) GenerateKey() ([]byte, error) {
	return g.entropy.RandomBytes(GeneralKeySize)
}

func generalAAD(nonce []byte) []byte {
	return nonce[4:8]
}

// Encrypt JSON-encodes data, seals it under AES-256-GCM with key, and
// returns the resulting GeneralToken string.
func (g *GeneralEncryptor) Encrypt(data any, key []byte) (string, error) {
	plaintext, err := codec.SafeJSONEncode(data)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	nonce, err := g.entropy.RandomBytes(generalNonceSize)
	if err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, generalAAD(nonce))

	return codec.StringifyPayload(nonce, ciphertext), nil
}

// GeneralDecrypt parses token as a GeneralToken, opens it under key, and
// unmarshals the plaintext into a fresh value of type T. Any failure —
// malformed shape, wrong key, or AEAD tag mismatch — surfaces uniformly as
// [ErrDecrypt]; the three causes are never distinguished, since a
// distinguishable response would give an attacker a decryption oracle.
func GeneralDecrypt[T any](token string, key []byte) (T, error) {
	var zero T

	parts, err := codec.ParsePayload(token, 2)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	nonce, ciphertext := parts[0], parts[1]

	if len(nonce) != generalNonceSize {
		return zero, fmt.Errorf("%w: nonce has length %d, want %d", ErrDecrypt, len(nonce), generalNonceSize)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, generalAAD(nonce))
	if err != nil {
		return zero, fmt.Errorf("%w: aead open: %v", ErrDecrypt, err)
	}

	value, err := codec.SafeJSONDecode[T](plaintext)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return value, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
