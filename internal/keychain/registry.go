// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"fmt"
	"sync"
)

// ConfigProvider returns the external keychain_key configuration value. It
// is supplied by the caller's configuration layer (e.g.
// [github.com/ArmCyber/go-keychain/internal/config]) and is not itself
// part of this package's responsibility.
type ConfigProvider func() (string, error)

// Registry is an explicit, caller-constructed holder for the lazily
// initialized, process-wide Keychain instance, used in place of an
// implicit package-level global. Exactly one Registry should exist per
// process for a given configuration source; [Registry.Current] is safe to
// call concurrently and initializes at most once.
type Registry struct {
	provider ConfigProvider
	entropy  Entropy

	once     sync.Once
	instance *Keychain
	err      error
}

// NewRegistry constructs a Registry that will build its singleton Keychain
// by calling provider and passing the result to [Adopt]. entropy may be
// nil, in which case [NewCSPRNGEntropy] is used.
func NewRegistry(provider ConfigProvider, entropy Entropy) *Registry {
	if entropy == nil {
		entropy = NewCSPRNGEntropy()
	}
	return &Registry{provider: provider, entropy: entropy}
}

// Current returns the registry's singleton Keychain, initializing it on
// the first call. Every subsequent call, whether or not the first call
// succeeded, returns the same result without calling provider again — a
// failed initialization is cached. There is no teardown: a Registry's
// Keychain lives for the lifetime of the process that built it.
func (r *Registry) Current() (*Keychain, error) {
	r.once.Do(func() {
		keychainKey, err := r.provider()
		if err != nil {
			r.err = fmt.Errorf("%w: %v", ErrInvalidCredential, err)
			return
		}

		instance, err := Adopt(keychainKey, r.entropy)
		if err != nil {
			r.err = err
			return
		}

		r.instance = instance
	})

	return r.instance, r.err
}
