// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralEncryptor_RoundTrip(t *testing.T) {
	enc := NewGeneralEncryptor(NewCSPRNGEntropy())
	key, err := enc.GenerateKey()
	require.NoError(t, err)

	type payload struct {
		User string `json:"user"`
		PW   string `json:"pw"`
	}
	original := payload{User: "a", PW: "b"}

	token, err := enc.Encrypt(original, key)
	require.NoError(t, err)

	decrypted, err := GeneralDecrypt[payload](token, key)
	require.NoError(t, err)
	assert.Equal(t, original, decrypted)
}

func TestGeneralEncryptor_Freshness(t *testing.T) {
	enc := NewGeneralEncryptor(NewCSPRNGEntropy())
	key, err := enc.GenerateKey()
	require.NoError(t, err)

	t1, err := enc.Encrypt("same", key)
	require.NoError(t, err)
	t2, err := enc.Encrypt("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}

func TestGeneralEncryptor_WrongKeyFails(t *testing.T) {
	enc := NewGeneralEncryptor(NewCSPRNGEntropy())
	key, err := enc.GenerateKey()
	require.NoError(t, err)
	otherKey, err := enc.GenerateKey()
	require.NoError(t, err)

	token, err := enc.Encrypt("secret", key)
	require.NoError(t, err)

	_, err = GeneralDecrypt[string](token, otherKey)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestGeneralEncryptor_TamperFails(t *testing.T) {
	enc := NewGeneralEncryptor(NewCSPRNGEntropy())
	key, err := enc.GenerateKey()
	require.NoError(t, err)

	token, err := enc.Encrypt("x", key)
	require.NoError(t, err)

	tampered := []byte(token)
	tampered[len(tampered)-1] ^= 0x01

	_, err = GeneralDecrypt[string](string(tampered), key)
	assert.Error(t, err)
}

func TestGeneralEncryptor_RejectsMalformedToken(t *testing.T) {
	enc := NewGeneralEncryptor(NewCSPRNGEntropy())
	key, err := enc.GenerateKey()
	require.NoError(t, err)

	_, err = GeneralDecrypt[string]("not-a-valid-token", key)
	assert.ErrorIs(t, err, ErrDecrypt)
}
