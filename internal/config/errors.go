// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package config

import "errors"

// ErrInvalidConfig is returned by [Load] when configuration sources could
// not be parsed or merged.
var ErrInvalidConfig = errors.New("invalid configuration")
