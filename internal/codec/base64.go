// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// TrimmedB64Encode encodes b as standard base64, then maps it into the
// URL-safe alphabet ('+' -> '-', '/' -> '_') and strips the trailing '='
// padding. The result contains only [A-Za-z0-9_-] and is safe to embed
// unescaped in a dot-joined payload (see [StringifyPayload]).
func TrimmedB64Encode(b []byte) string {
	encoded := base64.StdEncoding.EncodeToString(b)
	encoded = strings.ReplaceAll(encoded, "+", "-")
	encoded = strings.ReplaceAll(encoded, "/", "_")
	return strings.TrimRight(encoded, "=")
}

// TrimmedB64Decode reverses [TrimmedB64Encode]: it maps the URL-safe
// alphabet back to standard base64, restores '=' padding to the next
// multiple of four characters, and decodes. A string containing '=', '+',
// or '/' is rejected with [ErrEncoding] — those bytes can never appear in
// output produced by TrimmedB64Encode, so their presence indicates a
// malformed or tampered token, not a different valid encoding of the same
// bytes.
func TrimmedB64Decode(s string) ([]byte, error) {
	if strings.ContainsAny(s, "=+/") {
		return nil, fmt.Errorf("%w: unexpected padding or standard-alphabet byte in %q", ErrEncoding, s)
	}

	restored := strings.ReplaceAll(s, "-", "+")
	restored = strings.ReplaceAll(restored, "_", "/")
	if pad := len(restored) % 4; pad != 0 {
		restored += strings.Repeat("=", 4-pad)
	}

	decoded, err := base64.StdEncoding.DecodeString(restored)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrEncoding, err)
	}

	return decoded, nil
}
