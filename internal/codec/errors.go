// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import "errors"

// ErrEncoding is returned when a caller-supplied string is not valid
// base64, not valid JSON, not a canonical UUID, or splits into a different
// number of payload parts than the caller expected. Wrap it with
// fmt.Errorf("...: %w", ErrEncoding) to add context without losing the
// ability to errors.Is against it.
var ErrEncoding = errors.New("codec: malformed input")
