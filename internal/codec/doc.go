// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

// Package codec implements the wire-level encoding primitives shared by
// every cryptographic token the keychain produces: URL-safe unpadded
// base64, a small JSON codec, the dot-joined payload envelope, and
// canonical-UUID compression.
//
// Nothing in this package is secret-aware — it has no notion of keys or
// ciphertext, only byte strings and the strings they print as. Callers in
// [github.com/ArmCyber/go-keychain/internal/keychain] build every token
// format on top of [StringifyPayload] and [ParsePayload].
package codec
