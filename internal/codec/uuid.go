// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import (
	"fmt"

	"github.com/google/uuid"
)

// CompressUUID parses the canonical 8-4-4-4-12 hyphenated UUID string s and
// returns its 16 raw bytes. Only the canonical hyphenated form is accepted
// — the URN form ("urn:uuid:...") and the bare 32-hex-digit form are
// rejected with [ErrEncoding].
func CompressUUID(s string) ([16]byte, error) {
	var zero [16]byte

	if len(s) != 36 {
		return zero, fmt.Errorf("%w: %q is not a canonical UUID string", ErrEncoding, s)
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	if parsed.String() != s {
		return zero, fmt.Errorf("%w: %q is not in canonical form", ErrEncoding, s)
	}

	return parsed, nil
}

// DecompressUUID reinserts hyphens into the 16 raw bytes b and returns the
// canonical UUID string. Fails with [ErrEncoding] if the bytes do not form
// a valid UUID (this can only happen for a slice of the wrong length, since
// every 16-byte value is otherwise a syntactically valid UUID).
func DecompressUUID(b [16]byte) (string, error) {
	parsed, err := uuid.FromBytes(b[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return parsed.String(), nil
}
