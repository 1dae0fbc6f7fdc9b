package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"pixelvault/internal/domain"
)

// fingerprintLabel separates fingerprint hashing from key derivation.
const fingerprintLabel = "pixelvault/key-fingerprint/v1"

// Fingerprint returns a short hex fingerprint of a derived key.
//
// It hashes a fixed label and the key with SHA-256 and truncates to 10 bytes
// (20 hex chars), so the printed value reveals nothing usable about the key.
func Fingerprint(k Key) domain.Fingerprint {
	h := sha256.New()
	h.Write([]byte(fingerprintLabel))
	h.Write(k[:])
	sum := h.Sum(nil)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
