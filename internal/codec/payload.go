// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import (
	"fmt"
	"strings"
)

// NoExpectedCount tells [ParsePayload] to accept any number of parts. Pass
// a positive value to require an exact part count instead.
const NoExpectedCount = -1

// StringifyPayload encodes each part with [TrimmedB64Encode] and joins the
// results with '.', producing the printable envelope format every token in
// this module (GeneralToken, PairToken, PasswordToken, KeychainKey) is
// built from. Parts are binary-opaque here; their meaning is positional and
// fixed by the caller.
func StringifyPayload(parts ...[]byte) string {
	encoded := make([]string, len(parts))
	for i, part := range parts {
		encoded[i] = TrimmedB64Encode(part)
	}
	return strings.Join(encoded, ".")
}

// ParsePayload splits s on '.' and decodes each segment with
// [TrimmedB64Decode]. If expectedCount is not [NoExpectedCount] and the
// number of segments differs, or any segment is empty, ParsePayload fails
// with [ErrEncoding] before attempting to decode anything.
func ParsePayload(s string, expectedCount int) ([][]byte, error) {
	segments := strings.Split(s, ".")

	if expectedCount != NoExpectedCount && len(segments) != expectedCount {
		return nil, fmt.Errorf("%w: expected %d payload parts, got %d", ErrEncoding, expectedCount, len(segments))
	}

	parts := make([][]byte, len(segments))
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: payload part %d is empty", ErrEncoding, i)
		}

		decoded, err := TrimmedB64Decode(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: payload part %d: %v", ErrEncoding, i, err)
		}
		parts[i] = decoded
	}

	return parts, nil
}
