// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"github.com/ArmCyber/go-keychain/internal/codec"
)

// PairKeySize is the size, in bytes, of an X25519 public or secret key.
const PairKeySize = 32

const pairNonceSize = 24

// PairEncryptor implements the asymmetric authenticated encryption layer of
// the keychain: X25519 key agreement with XSalsa20-Poly1305 sealing, i.e.
// NaCl's crypto_box, via [golang.org/x/crypto/nacl/box]. Every call to
// [PairEncryptor.Encrypt] generates a fresh ephemeral sender keypair so the
// writer never needs to hold (or ever learn) the recipient's secret key.
//
// A PairToken is the payload envelope
// [nonce(24) | ephemeral_public(32) | box_ciphertext(var)].
type PairEncryptor struct {
	entropy Entropy
}

// NewPairEncryptor constructs a [PairEncryptor] drawing nonces and
// ephemeral keypairs from entropy.
func NewPairEncryptor(entropy Entropy) *PairEncryptor {
	return &PairEncryptor{entropy: entropy}
}

// PairKeyPair is a generated X25519 keypair.
type PairKeyPair struct {
	Public [PairKeySize]byte
	Secret [PairKeySize]byte
}

// GenerateKeys returns a fresh X25519 keypair.
func (p *PairEncryptor) GenerateKeys() (PairKeyPair, error) {
	pub, sec, err := box.GenerateKey(&entropyReader{entropy: p.entropy})
	if err != nil {
		return PairKeyPair{}, fmt.Errorf("keychain: generate pair keys: %w", err)
	}
	return PairKeyPair{Public: *pub, Secret: *sec}, nil
}

// Encrypt JSON-encodes data and seals it to recipientPublic using a fresh
// ephemeral sender keypair. The ephemeral secret key is used once and
// discarded; it is never retained past this call.
func (p *PairEncryptor) Encrypt(data any, recipientPublic [PairKeySize]byte) (string, error) {
	plaintext, err := codec.SafeJSONEncode(data)
	if err != nil {
		return "", err
	}

	nonceBytes, err := p.entropy.RandomBytes(pairNonceSize)
	if err != nil {
		return "", err
	}
	var nonce [pairNonceSize]byte
	copy(nonce[:], nonceBytes)

	ephemeralPub, ephemeralSec, err := box.GenerateKey(&entropyReader{entropy: p.entropy})
	if err != nil {
		return "", fmt.Errorf("keychain: generate ephemeral keypair: %w", err)
	}

	ciphertext := box.Seal(nil, plaintext, &nonce, &recipientPublic, ephemeralSec)

	return codec.StringifyPayload(nonce[:], ephemeralPub[:], ciphertext), nil
}

// PairDecrypt parses token as a PairToken, reconstructs the shared key from
// ownSecret and the ephemeral public key enclosed in the token, opens the
// box, and unmarshals the plaintext into a fresh value of type T. Any
// failure surfaces uniformly as [ErrDecrypt].
func PairDecrypt[T any](token string, ownSecret [PairKeySize]byte) (T, error) {
	var zero T

	parts, err := codec.ParsePayload(token, 3)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	nonceBytes, ephemeralPubBytes, ciphertext := parts[0], parts[1], parts[2]

	if len(nonceBytes) != pairNonceSize {
		return zero, fmt.Errorf("%w: nonce has length %d, want %d", ErrDecrypt, len(nonceBytes), pairNonceSize)
	}
	if len(ephemeralPubBytes) != PairKeySize {
		return zero, fmt.Errorf("%w: ephemeral public key has length %d, want %d", ErrDecrypt, len(ephemeralPubBytes), PairKeySize)
	}

	var nonce [pairNonceSize]byte
	copy(nonce[:], nonceBytes)
	var ephemeralPub [PairKeySize]byte
	copy(ephemeralPub[:], ephemeralPubBytes)

	plaintext, ok := box.Open(nil, ciphertext, &nonce, &ephemeralPub, &ownSecret)
	if !ok {
		return zero, fmt.Errorf("%w: box open failed", ErrDecrypt)
	}

	value, err := codec.SafeJSONDecode[T](plaintext)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return value, nil
}

// entropyReader adapts [Entropy] to [io.Reader] so nacl/box's key-generation
// helpers, which accept an io.Reader, draw their randomness from the same
// injected capability as the rest of the keychain rather than reaching for
// crypto/rand directly.
type entropyReader struct {
	entropy Entropy
}

func (r *entropyReader) Read(p []byte) (int, error) {
	b, err := r.entropy.RandomBytes(len(p))
	if err != nil {
		return 0, err
	}
	copy(p, b)
	return len(b), nil
}

var _ io.Reader = (*entropyReader)(nil)
