// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeychain_GenerateAndReadBack(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)
	assert.True(t, kc.IsUnlocked())
	assert.NotEmpty(t, kc.GetUUID())

	type creds struct {
		User string `json:"user"`
		PW   string `json:"pw"`
	}
	original := creds{User: "a", PW: "b"}

	cipher, err := kc.EncryptCredential(original)
	require.NoError(t, err)

	decrypted, err := DecryptCredential[creds](kc, cipher)
	require.NoError(t, err)
	assert.Equal(t, original, decrypted)
}

func TestKeychain_PasswordRoundTripForUnlock(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	password, token, err := kc.GenerateKeychainPasswordAndToken()
	require.NoError(t, err)

	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k2, err := Adopt(keychainKey, nil)
	require.NoError(t, err)
	assert.False(t, k2.IsUnlocked())

	require.NoError(t, k2.Unlock(password, token))
	assert.True(t, k2.IsUnlocked())

	cipher, err := kc.EncryptCredential("secret")
	require.NoError(t, err)

	decrypted, err := DecryptCredential[string](k2, cipher)
	require.NoError(t, err)
	assert.Equal(t, "secret", decrypted)
}

func TestKeychain_WrongPassword(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	_, token, err := kc.GenerateKeychainPasswordAndToken()
	require.NoError(t, err)

	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k3, err := Adopt(keychainKey, nil)
	require.NoError(t, err)

	err = k3.Unlock("not-the-password", token)
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.False(t, k3.IsUnlocked())
}

func TestKeychain_MasterKeyUnlock(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	master, err := kc.GetMasterKey()
	require.NoError(t, err)

	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k2, err := Adopt(keychainKey, nil)
	require.NoError(t, err)

	require.NoError(t, k2.UnlockUsingMasterKey(master))
	assert.True(t, k2.IsUnlocked())

	k3, err := Adopt(keychainKey, nil)
	require.NoError(t, err)
	err = k3.UnlockUsingMasterKey("d29uZy1sZW5ndGgtb3Itd3Jvbmcta2V5")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestKeychain_KeyAccessGating(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	master, err := kc.GetMasterKey()
	require.NoError(t, err)
	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k2, err := Adopt(keychainKey, nil)
	require.NoError(t, err)
	require.NoError(t, k2.UnlockUsingMasterKey(master))
	assert.True(t, k2.IsUnlocked())

	_, err = k2.GetKeychainKey()
	assert.ErrorIs(t, err, ErrKeyAccessForbidden)

	_, err = k2.GetMasterKey()
	assert.ErrorIs(t, err, ErrKeyAccessForbidden)
}

func TestKeychain_Tamper(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	cipher, err := kc.EncryptCredential("x")
	require.NoError(t, err)

	raw := []byte(cipher)
	for _, i := range []int{0, len(raw) / 3, len(raw) / 2, len(raw) - 1} {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01

		decrypted, err := DecryptCredential[string](kc, string(tampered))
		if err == nil {
			assert.Equal(t, "x", decrypted)
		}
	}
}

func TestKeychain_DecryptCredential_LockedFails(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k2, err := Adopt(keychainKey, nil)
	require.NoError(t, err)
	assert.False(t, k2.IsUnlocked())

	cipher, err := kc.EncryptCredential("value")
	require.NoError(t, err)

	_, err = DecryptCredential[string](k2, cipher)
	assert.ErrorIs(t, err, ErrKeychainLocked)

	_, err = k2.GetMasterKey()
	assert.ErrorIs(t, err, ErrKeyAccessForbidden)

	_, _, err = k2.GenerateKeychainPasswordAndToken()
	assert.ErrorIs(t, err, ErrKeychainLocked)
}

func TestKeychain_UnlockIsIdempotent(t *testing.T) {
	kc, err := Generate(nil)
	require.NoError(t, err)

	master, err := kc.GetMasterKey()
	require.NoError(t, err)
	keychainKey, err := kc.GetKeychainKey()
	require.NoError(t, err)

	k2, err := Adopt(keychainKey, nil)
	require.NoError(t, err)

	require.NoError(t, k2.UnlockUsingMasterKey(master))
	require.NoError(t, k2.UnlockUsingMasterKey(master)) // second call is a no-op, not an error
	assert.True(t, k2.IsUnlocked())
}

func TestAdopt_RejectsMalformedKeychainKey(t *testing.T) {
	_, err := Adopt("not.a.valid-keychain-key", nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = Adopt("only-one-part", nil)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
