// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ArmCyber contributors

package keychain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ArmCyber/go-keychain/internal/codec"
)

// verifierLen is the length of the random string used to verify a candidate
// pair secret against the keychain's own pair public key at installation
// time. 32 bytes of printable entropy is comfortably more than enough to
// make an accidental collision on the wrong secret impossible.
const verifierLen = 32

// generatedPasswordLen is the length of passwords minted by
// [Keychain.GenerateKeychainPasswordAndToken].
const generatedPasswordLen = 24

// Keychain is the aggregate at the center of this module. It holds a
// stable UUID identity, three credential parts (UUID bytes, general key,
// pair public key), and — iff unlocked — the pair secret key.
//
// A Keychain is either constructed by [Generate] (fresh material, secret
// held from birth, Unlocked, CanRetrieveKeys) or by [Adopt] (parsed from a
// [KeychainKey] string, Locked, not CanRetrieveKeys, until [Keychain.Unlock]
// or [Keychain.UnlockUsingMasterKey] installs the secret). Unlock is a
// one-way, monotonic transition: there is no relock, and a second unlock
// call is a silent no-op.
//
// A *Keychain is safe for concurrent use by multiple goroutines holding the
// same pointer, but the aggregate is not designed to be shared for mutation
// beyond the one-shot unlock transition — callers that want independent
// credential pipelines should construct independent Keychains.
type Keychain struct {
	uuid       [16]byte
	uuidString string

	generalKey []byte
	pairPublic [PairKeySize]byte

	canRetrieveKeys bool

	general  *GeneralEncryptor
	pair     *PairEncryptor
	password *PasswordEncryptor
	entropy  Entropy

	mu         sync.RWMutex
	pairSecret *Secret
}

// Generate draws a fresh UUID, a fresh general key, and a fresh X25519
// keypair, and returns a Keychain that holds the pair secret from birth:
// Unlocked and CanRetrieveKeys are both true immediately.
func Generate(entropy Entropy) (*Keychain, error) {
	if entropy == nil {
		entropy = NewCSPRNGEntropy()
	}
	general, pair, password := newEncryptors(entropy)

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	generalKey, err := general.GenerateKey()
	if err != nil {
		return nil, err
	}

	keys, err := pair.GenerateKeys()
	if err != nil {
		return nil, err
	}

	idBytes := [16]byte(id)
	credentials := [][]byte{idBytes[:], generalKey, keys.Public[:]}

	return adopt(credentials, keys.Secret[:], true, general, pair, password, entropy)
}

// Adopt parses keychainKey as a [KeychainKey] string (three dot-joined
// payload parts: UUID, general key, pair public key) and returns a
// Keychain built from it. The returned Keychain starts Locked and does not
// have CanRetrieveKeys, because it was not constructed with the pair
// secret in hand. Fails with [ErrInvalidCredential] if keychainKey is
// malformed.
func Adopt(keychainKey string, entropy Entropy) (*Keychain, error) {
	if entropy == nil {
		entropy = NewCSPRNGEntropy()
	}

	parts, err := codec.ParsePayload(keychainKey, 3)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	general, pair, password := newEncryptors(entropy)
	return adopt(parts, nil, false, general, pair, password, entropy)
}

func newEncryptors(entropy Entropy) (*GeneralEncryptor, *PairEncryptor, *PasswordEncryptor) {
	general := NewGeneralEncryptor(entropy)
	pair := NewPairEncryptor(entropy)
	password := NewPasswordEncryptor(general, entropy)
	return general, pair, password
}

// adopt is the single internal constructor both [Generate] and [Adopt]
// route through. It validates the invariants of §3 (exactly three
// credential parts, each of the right size, a well-formed UUID) and, if
// pairSecret is non-nil, verifies and installs it.
func adopt(
	credentials [][]byte,
	pairSecret []byte,
	canRetrieveKeys bool,
	general *GeneralEncryptor,
	pair *PairEncryptor,
	password *PasswordEncryptor,
	entropy Entropy,
) (*Keychain, error) {
	if len(credentials) != 3 {
		return nil, fmt.Errorf("%w: expected 3 credential parts, got %d", ErrInternal, len(credentials))
	}

	uuidBytes, generalKey, pairPublicBytes := credentials[0], credentials[1], credentials[2]

	if len(uuidBytes) != 16 {
		return nil, fmt.Errorf("%w: uuid part has length %d, want 16", ErrInvalidCredential, len(uuidBytes))
	}
	var uuidArr [16]byte
	copy(uuidArr[:], uuidBytes)

	uuidString, err := codec.DecompressUUID(uuidArr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}

	if len(generalKey) != GeneralKeySize {
		return nil, fmt.Errorf("%w: general key has length %d, want %d", ErrInvalidCredential, len(generalKey), GeneralKeySize)
	}

	if len(pairPublicBytes) != PairKeySize {
		return nil, fmt.Errorf("%w: pair public key has length %d, want %d", ErrInvalidCredential, len(pairPublicBytes), PairKeySize)
	}
	var pairPublicArr [PairKeySize]byte
	copy(pairPublicArr[:], pairPublicBytes)

	kc := &Keychain{
		uuid:            uuidArr,
		uuidString:      uuidString,
		generalKey:      append([]byte(nil), generalKey...),
		pairPublic:      pairPublicArr,
		canRetrieveKeys: canRetrieveKeys,
		general:         general,
		pair:            pair,
		password:        password,
		entropy:         entropy,
	}

	if pairSecret != nil {
		if len(pairSecret) != PairKeySize {
			return nil, fmt.Errorf("%w: pair secret has length %d, want %d", ErrInvalidCredential, len(pairSecret), PairKeySize)
		}
		var secretArr [PairKeySize]byte
		copy(secretArr[:], pairSecret)
		if err := kc.installSecret(secretArr); err != nil {
			return nil, err
		}
	}

	return kc, nil
}

// installSecret verifies that secret is algebraically consistent with the
// keychain's own pair public key — encrypting a random verifier under the
// public key and opening it with secret must yield the original verifier —
// and, if so, installs it. The asymmetric primitive will happily decrypt
// gibberish into gibberish under a wrong secret, so this round trip is the
// only way to catch a mismatched key at installation time rather than at
// the first real credential read.
//
// Caller must hold k.mu for writing, or call this before kc is shared
// (construction time).
func (k *Keychain) installSecret(secret [PairKeySize]byte) error {
	verifier, err := k.entropy.GeneratePassword(verifierLen)
	if err != nil {
		return err
	}

	token, err := k.pair.Encrypt(verifier, k.pairPublic)
	if err != nil {
		return err
	}

	got, err := PairDecrypt[string](token, secret)
	if err != nil || got != verifier {
		return fmt.Errorf("%w: pair secret key does not match pair public key", ErrInvalidCredential)
	}

	k.pairSecret = NewSecret(append([]byte(nil), secret[:]...))
	return nil
}

// IsUnlocked reports whether the keychain currently holds the pair secret.
func (k *Keychain) IsUnlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.pairSecret != nil
}

func (k *Keychain) secretSnapshot() (secret [PairKeySize]byte, unlocked bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.pairSecret == nil {
		return secret, false
	}
	copy(secret[:], k.pairSecret.Bytes())
	return secret, true
}

// Unlock recovers the pair secret from a password and the GeneralToken
// issued by [Keychain.GenerateKeychainPasswordAndToken], and installs it.
// If the keychain is already unlocked, Unlock is a silent no-op — unlock is
// monotonic and this design has no relock.
//
// Decrypting token with the general key must succeed before the password
// layer is even attempted; a failure there is a structural/[ErrDecrypt]
// failure, not a wrong password. Once the general layer opens, a failure to
// open the enclosed PasswordToken with password is specifically
// [ErrInvalidPassword], since the password layer is the only thing that
// can have gone wrong at that point.
func (k *Keychain) Unlock(password, token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pairSecret != nil {
		return nil
	}

	encryptedSecretKey, err := GeneralDecrypt[string](token, k.generalKey)
	if err != nil {
		return err
	}

	secretB64, err := PasswordDecrypt[string](encryptedSecretKey, password)
	if err != nil {
		if errors.Is(err, ErrDecrypt) {
			return ErrInvalidPassword
		}
		return err
	}

	secretBytes, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return fmt.Errorf("%w: decode recovered secret: %v", ErrDecrypt, err)
	}
	if len(secretBytes) != PairKeySize {
		return fmt.Errorf("%w: recovered secret has length %d, want %d", ErrDecrypt, len(secretBytes), PairKeySize)
	}

	var secretArr [PairKeySize]byte
	copy(secretArr[:], secretBytes)
	return k.installSecret(secretArr)
}

// UnlockUsingMasterKey installs pairSecret, the base64-encoded pair secret
// key ([MasterKey]), after verifying it matches this keychain's pair public
// key. Fails with [ErrInvalidCredential] if masterKey is not valid base64,
// is the wrong length, or does not match. If the keychain is already
// unlocked, UnlockUsingMasterKey is a silent no-op.
func (k *Keychain) UnlockUsingMasterKey(masterKey string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.pairSecret != nil {
		return nil
	}

	secretBytes, err := base64.StdEncoding.DecodeString(masterKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if len(secretBytes) != PairKeySize {
		return fmt.Errorf("%w: master key has length %d, want %d", ErrInvalidCredential, len(secretBytes), PairKeySize)
	}

	var secretArr [PairKeySize]byte
	copy(secretArr[:], secretBytes)
	return k.installSecret(secretArr)
}

// EncryptCredential seals value for this keychain: first under the pair
// public key ([PairEncryptor], asymmetric), then under the general key
// ([GeneralEncryptor], symmetric). No lock is required — this is the write
// path a read-only (Locked) keychain must still support.
//
// The two layers serve different purposes: the inner crypto_box gives
// asymmetric sealing so a writer never needs the read key, and the outer
// AES-GCM binds every ciphertext to possession of the general key, so a
// token leaked from storage cannot be opened by an attacker who only
// recovered the pair secret, and vice versa.
func (k *Keychain) EncryptCredential(value any) (string, error) {
	inner, err := k.pair.Encrypt(value, k.pairPublic)
	if err != nil {
		return "", err
	}
	return k.general.Encrypt(inner, k.generalKey)
}

// DecryptCredential opens token, which must have been produced by
// [Keychain.EncryptCredential] on a keychain with the same credentials, and
// unmarshals the recovered plaintext into a fresh value of type T. Requires
// k to be Unlocked; fails with [ErrKeychainLocked] otherwise.
//
// DecryptCredential is a package-level function rather than a method
// because Go methods cannot carry their own type parameters.
func DecryptCredential[T any](k *Keychain, token string) (T, error) {
	var zero T

	secret, unlocked := k.secretSnapshot()
	if !unlocked {
		return zero, ErrKeychainLocked
	}

	inner, err := GeneralDecrypt[string](token, k.generalKey)
	if err != nil {
		return zero, err
	}

	return PairDecrypt[T](inner, secret)
}

// GenerateKeychainPasswordAndToken mints a fresh high-entropy password and
// a GeneralToken that recovers the pair secret when later passed to
// [Keychain.Unlock] along with that password. Requires k to be Unlocked;
// fails with [ErrKeychainLocked] otherwise.
//
// The outer GeneralEncryptor layer means a token stolen from storage
// cannot be attacked with an offline password guess unless the general key
// has also leaked.
func (k *Keychain) GenerateKeychainPasswordAndToken() (password, token string, err error) {
	secret, unlocked := k.secretSnapshot()
	if !unlocked {
		return "", "", ErrKeychainLocked
	}

	password, err = k.entropy.GeneratePassword(generatedPasswordLen)
	if err != nil {
		return "", "", err
	}

	encodedSecret := base64.StdEncoding.EncodeToString(secret[:])

	inner, err := k.password.Encrypt(encodedSecret, password)
	if err != nil {
		return "", "", err
	}

	token, err = k.general.Encrypt(inner, k.generalKey)
	if err != nil {
		return "", "", err
	}

	return password, token, nil
}

// GetUUID returns the keychain's canonical UUID string. Always allowed,
// regardless of lock state or CanRetrieveKeys.
func (k *Keychain) GetUUID() string {
	return k.uuidString
}

// GetKeychainKey returns the [KeychainKey] string (the public, write-only
// identity: UUID + general key + pair public key). Requires
// CanRetrieveKeys; fails with [ErrKeyAccessForbidden] otherwise.
func (k *Keychain) GetKeychainKey() (string, error) {
	if !k.canRetrieveKeys {
		return "", ErrKeyAccessForbidden
	}
	return codec.StringifyPayload(k.uuid[:], k.generalKey, k.pairPublic[:]), nil
}

// GetMasterKey returns the base64-encoded pair secret key. Requires both
// CanRetrieveKeys and Unlocked; fails with [ErrKeyAccessForbidden] or
// [ErrKeychainLocked] respectively.
func (k *Keychain) GetMasterKey() (string, error) {
	if !k.canRetrieveKeys {
		return "", ErrKeyAccessForbidden
	}

	secret, unlocked := k.secretSnapshot()
	if !unlocked {
		return "", ErrKeychainLocked
	}

	return base64.StdEncoding.EncodeToString(secret[:]), nil
}

// Close zeroizes the pair secret in memory. Callers that hold a Keychain
// for the lifetime of a request or process should call Close when it is no
// longer needed; a Keychain is not usable afterward.
func (k *Keychain) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pairSecret.Zeroize()
	k.pairSecret = nil
}
