// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

// Secret wraps a byte slice that must never appear in a log line, an error
// message, or a %v/%+v formatting of a struct that embeds it. [Secret.String]
// and [Secret.GoString] are deliberately opaque; call [Secret.Bytes] to get
// at the underlying material, and [Secret.Zeroize] once it is no longer
// needed.
type Secret struct {
	b []byte
}

// NewSecret takes ownership of b and returns it wrapped as a [Secret].
// Callers must not retain or mutate b after this call.
func NewSecret(b []byte) *Secret {
	return &Secret{b: b}
}

// Bytes returns the underlying secret material. The returned slice aliases
// the Secret's internal storage; callers must not retain it past a call to
// [Secret.Zeroize].
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Zeroize overwrites the secret's backing array with zeros. It is safe to
// call multiple times and on a nil receiver.
func (s *Secret) Zeroize() {
	if s == nil {
		return
	}
	for i := range s.b {
		s.b[i] = 0
	}
}

// String implements [fmt.Stringer] without revealing the secret, so a
// stray %s/%v of a struct holding a *Secret cannot leak it into a log.
func (s *Secret) String() string {
	return "keychain.Secret{REDACTED}"
}

// GoString implements [fmt.GoStringer] for the same reason as [Secret.String].
func (s *Secret) GoString() string {
	return s.String()
}
