// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

// Package config provides the layered configuration loading for the
// keychainctl CLI: the keychain_key string the keychain core treats as an
// external input, plus the logger's level, assembled through an
// env-then-flags-then-JSON merge pattern with a single configuration
// group.
//
// Configuration is assembled from multiple sources in priority order (a
// later source wins for non-zero fields):
//
//  1. Environment variables — loaded via [caarlos0/env]
//  2. Command-line flags     — supplied by the caller (keychainctl binds
//     them with cobra/pflag) as a pre-populated *[AppConfig] override
//  3. JSON file              — loaded via [parseJSON], path resolved from
//     the sources above
//
// The entry point for production use is [Load].
package config
