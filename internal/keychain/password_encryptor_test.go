// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPasswordEncryptor() *PasswordEncryptor {
	entropy := NewCSPRNGEntropy()
	return NewPasswordEncryptor(NewGeneralEncryptor(entropy), entropy)
}

func TestPasswordEncryptor_RoundTrip(t *testing.T) {
	enc := newTestPasswordEncryptor()

	token, err := enc.Encrypt("the-pair-secret-base64", "correct horse battery staple")
	require.NoError(t, err)

	decrypted, err := PasswordDecrypt[string](token, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, "the-pair-secret-base64", decrypted)
}

func TestPasswordEncryptor_WrongPasswordFails(t *testing.T) {
	enc := newTestPasswordEncryptor()

	token, err := enc.Encrypt("payload", "right-password")
	require.NoError(t, err)

	_, err = PasswordDecrypt[string](token, "wrong-password")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestPasswordEncryptor_Freshness(t *testing.T) {
	enc := newTestPasswordEncryptor()

	t1, err := enc.Encrypt("same", "pw")
	require.NoError(t, err)
	t2, err := enc.Encrypt("same", "pw")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
}
