// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import "errors"

var (
	// ErrDecrypt is returned whenever a cryptographic open operation fails:
	// AEAD tag mismatch, wrong key, or malformed token shape at the
	// cryptographic layer. The three causes are deliberately never
	// distinguished in the returned error — a distinguishable response
	// would hand an attacker a decryption oracle.
	ErrDecrypt = errors.New("keychain: decryption failed")

	// ErrInvalidPassword is returned by [Keychain.Unlock] specifically when
	// the outer GeneralToken layer opened successfully (proving the caller
	// holds the right general key) but the inner PasswordToken did not —
	// i.e. the password itself was wrong. This is the one case that can be
	// distinguished from [ErrDecrypt], because the password layer is the
	// only thing that can have failed at that point.
	ErrInvalidPassword = errors.New("keychain: wrong password")

	// ErrInvalidCredential is returned when a configuration-supplied
	// KeychainKey is missing or structurally invalid, or when a candidate
	// pair secret fails the round-trip verification in [Adopt] /
	// [Keychain.UnlockUsingMasterKey].
	ErrInvalidCredential = errors.New("keychain: invalid credential")

	// ErrKeychainLocked is returned when an operation that requires the
	// Unlocked state (decrypting a credential, reading the master key,
	// issuing a password token) is attempted on a Locked keychain.
	ErrKeychainLocked = errors.New("keychain: locked")

	// ErrKeyAccessForbidden is returned when an operation that requires
	// CanRetrieveKeys (exporting the KeychainKey or MasterKey) is attempted
	// on a keychain that was adopted without ever holding its own secret.
	ErrKeyAccessForbidden = errors.New("keychain: key access forbidden")

	// ErrInternal signals an invariant violation that the constructors are
	// supposed to make unreachable — for example, a credentials slice that
	// does not have exactly three entries. Seeing this error means a bug
	// exists in this package, not in caller input.
	ErrInternal = errors.New("keychain: internal invariant violation")
)
