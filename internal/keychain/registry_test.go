// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CurrentReturnsSameInstance(t *testing.T) {
	seed, err := Generate(nil)
	require.NoError(t, err)
	keychainKey, err := seed.GetKeychainKey()
	require.NoError(t, err)

	var calls int32
	provider := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return keychainKey, nil
	}

	reg := NewRegistry(provider, nil)

	var wg sync.WaitGroup
	results := make([]*Keychain, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kc, err := reg.Current()
			require.NoError(t, err)
			results[i] = kc
		}(i)
	}
	wg.Wait()

	for _, kc := range results {
		assert.Same(t, results[0], kc)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegistry_CachesProviderError(t *testing.T) {
	boom := errors.New("boom")
	var calls int32
	provider := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", boom
	}

	reg := NewRegistry(provider, nil)

	_, err1 := reg.Current()
	_, err2 := reg.Current()

	assert.ErrorIs(t, err1, ErrInvalidCredential)
	assert.ErrorIs(t, err2, ErrInvalidCredential)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
