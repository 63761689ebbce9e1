// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package codec

import (
	"encoding/json"
	"fmt"
)

// SafeJSONEncode marshals value to its JSON representation. value must be
// one of the types [encoding/json.Marshal] can represent faithfully —
// strings, numbers, booleans, nil, slices, and maps with string keys, or a
// struct built from those. Returns [ErrEncoding] on marshalling failure
// (e.g. a channel, func, or cyclic value).
func SafeJSONEncode(value any) ([]byte, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %v", ErrEncoding, err)
	}
	return encoded, nil
}

// SafeJSONDecode unmarshals data into a fresh value of the requested type T
// and returns it. Returns [ErrEncoding] if data is not valid JSON or does
// not fit T.
func SafeJSONDecode[T any](data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: unmarshal: %v", ErrEncoding, err)
	}
	return value, nil
}

// SafeJSONDecodeInto unmarshals data into target, which must be a non-nil
// pointer exactly as required by [encoding/json.Unmarshal]. Returns
// [ErrEncoding] on failure. Prefer [SafeJSONDecode] when the destination
// type is known at the call site; this variant exists for callers that
// receive an already-allocated target, mirroring the target-pointer style
// used elsewhere in this codebase's JSON helpers.
func SafeJSONDecodeInto(data []byte, target any) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", ErrEncoding, err)
	}
	return nil
}
