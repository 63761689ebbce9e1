// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmedB64_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		[]byte("a"),
		[]byte("hello, keychain"),
		{0x00, 0xff, 0x10, 0x20, 0x30},
		make([]byte, 33),
	}

	for _, b := range cases {
		encoded := TrimmedB64Encode(b)
		decoded, err := TrimmedB64Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
	}
}

func TestTrimmedB64Encode_NoPaddingOrStandardAlphabet(t *testing.T) {
	encoded := TrimmedB64Encode([]byte{0xfb, 0xff, 0xfe})
	assert.NotContains(t, encoded, "=")
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
}

func TestTrimmedB64Decode_RejectsStandardAlphabetBytes(t *testing.T) {
	for _, s := range []string{"abc=", "ab+c", "ab/c", "===="} {
		_, err := TrimmedB64Decode(s)
		assert.ErrorIs(t, err, ErrEncoding)
	}
}

func TestTrimmedB64Decode_RejectsInvalidBytes(t *testing.T) {
	_, err := TrimmedB64Decode("!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrEncoding)
}
