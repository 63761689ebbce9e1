// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package config

// AppConfig is the configuration for keychainctl. Struct tags:
//   - env  — environment variable name, read via [caarlos0/env].
//   - json — field name inside an optional JSON config file.
type AppConfig struct {
	// KeychainKey is the external key material: three dot-joined,
	// URL-safe-unpadded base64 parts (UUID, general key, pair public key).
	// Required by any keychainctl command that adopts an existing keychain
	// rather than generating a fresh one.
	KeychainKey string `env:"KEYCHAIN_KEY" json:"keychain_key"`

	// LogLevel controls the zerolog level used by [internal/logger]. One of
	// "debug", "info", "warn", "error". Defaults to "info" when empty.
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	JSONFilePath string `env:"CONFIG"`
}

// validate checks that cfg satisfies the invariants [Load] requires before
// returning it. KeychainKey is intentionally not validated here — the
// `generate` command never needs one, and the `keychain.Adopt` /
// `keychain.Registry.Current` call sites are where an empty or malformed
// value actually matters.
func (cfg *AppConfig) validate() error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return nil
}
