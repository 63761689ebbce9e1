// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/ArmCyber/go-keychain/internal/codec"
)

// argonSaltSize is the Argon2id salt width this module standardizes on.
const argonSaltSize = 16

// Argon2id parameters for the "moderate" cost preset. These are fixed
// across versions of this module: rotating them would silently break every
// PasswordToken issued so far, since decrypt re-derives the key with the
// same parameters used at encrypt time.
const (
	argonTimeModerate    = 3
	argonMemoryModerate  = 64 * 1024 // KiB, i.e. 64 MiB
	argonThreadsModerate = 4
	argonKeyLenModerate  = GeneralKeySize
)

// PasswordEncryptor seals data under a human-chosen password rather than a
// raw symmetric key, by deriving a 32-byte key via Argon2id and delegating
// the actual seal to an owned [GeneralEncryptor]. It owns the
// GeneralEncryptor by composition, not inheritance — there is no
// behavioral reason for PasswordEncryptor to be a GeneralEncryptor, only a
// reason for it to have one.
//
// A PasswordToken is the payload envelope [salt(16) | GeneralToken-bytes].
type PasswordEncryptor struct {
	general *GeneralEncryptor
	entropy Entropy
}

// NewPasswordEncryptor constructs a [PasswordEncryptor] around general,
// drawing its salts from entropy.
func NewPasswordEncryptor(general *GeneralEncryptor, entropy Entropy) *PasswordEncryptor {
	return &PasswordEncryptor{general: general, entropy: entropy}
}

func deriveArgonKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTimeModerate, argonMemoryModerate, argonThreadsModerate, argonKeyLenModerate)
}

// Encrypt draws a fresh 16-byte salt, derives a key from password via
// Argon2id, and seals data with the owned [GeneralEncryptor] under that key.
func (p *PasswordEncryptor) Encrypt(data any, password string) (string, error) {
	salt, err := p.entropy.RandomBytes(argonSaltSize)
	if err != nil {
		return "", err
	}

	key := deriveArgonKey(password, salt)

	inner, err := p.general.Encrypt(data, key)
	if err != nil {
		return "", err
	}

	return codec.StringifyPayload(salt, []byte(inner)), nil
}

// PasswordDecrypt parses token as a PasswordToken, re-derives the Argon2id
// key from password and the enclosed salt, and delegates to
// [GeneralDecrypt]. The expected part count is asserted explicitly (2) so
// malformed input fails fast rather than panicking on an out-of-range
// index during destructuring.
func PasswordDecrypt[T any](token string, password string) (T, error) {
	var zero T

	parts, err := codec.ParsePayload(token, 2)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	salt, innerToken := parts[0], string(parts[1])

	key := deriveArgonKey(password, salt)

	return GeneralDecrypt[T](innerToken, key)
}
