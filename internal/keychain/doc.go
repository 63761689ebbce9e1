// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

// Package keychain implements the cryptographic vault at the center of this
// module: three layered encryptors and the Keychain aggregate that
// orchestrates them.
//
// # Key hierarchy
//
// A keychain holds three credential parts plus an optional secret:
//
//  1. General key — a 32-byte AES-256-GCM key. Every credential token is
//     sealed under it as the outer layer, so a token stolen from storage
//     cannot be opened by an attacker who only recovers the pair secret.
//  2. Pair keypair — an X25519 keypair. The public half is part of the
//     keychain's write-capable identity; the secret half gates reads. Every
//     credential is sealed to the pair public key as the inner layer before
//     the outer AES-GCM seal is applied.
//  3. Pair secret — present only on an unlocked keychain. Recoverable
//     either by injecting it at construction ([Generate]) or via
//     [Keychain.Unlock] / [Keychain.UnlockUsingMasterKey].
//
// # Write vs. read capability
//
// [Adopt] builds a keychain from the public [KeychainKey] triple alone: it
// can [Keychain.EncryptCredential] immediately but starts Locked and cannot
// [Keychain.DecryptCredential] until unlocked. [Generate] builds a keychain
// that holds the pair secret from birth and is Unlocked immediately.
package keychain
