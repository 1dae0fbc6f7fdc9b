package crypto

import (
	"crypto/sha256"
	"fmt"

	"pixelvault/internal/util/memzero"
)

// KeySize is the length in bytes of a derived key.
const KeySize = sha256.Size

// Key is the symmetric key shared by both ends of a covert channel.
type Key [KeySize]byte

// DeriveKey hashes the UTF-8 bytes of passphrase with SHA-256.
//
// There is no salt: the same passphrase yields the same key on every machine,
// which is what lets two parties interoperate from a shared secret alone. It
// also means guessing attacks against weak passphrases are cheap.
func DeriveKey(passphrase string) Key {
	return Key(sha256.Sum256([]byte(passphrase)))
}

// ParseKey decodes the URL-safe base64 form produced by Encode.
func ParseKey(s string) (Key, error) {
	var k Key
	b, err := tokenEncoding.DecodeString(s)
	if err != nil {
		return k, fmt.Errorf("decode key: %w", err)
	}
	defer memzero.Zero(b)
	if len(b) != KeySize {
		return k, fmt.Errorf("decode key: want %d bytes, got %d", KeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// Encode returns the key in the URL-safe base64 form Fernet expects.
func (k Key) Encode() string { return B64(k[:]) }

// Wipe zeroes the key in place.
func (k *Key) Wipe() { memzero.Zero(k[:]) }
