package crypto

import (
	"crypto/aes"
	"crypto/sha256"
	"time"

	"github.com/fernet/fernet-go"

	"pixelvault/internal/domain"
	"pixelvault/internal/util/memzero"
)

const (
	// FernetSuiteName selects FernetSuite.
	FernetSuiteName = "fernet"

	fernetID domain.SuiteID = 0x80
	// version || timestamp || IV || HMAC; the ciphertext adds at least one block.
	fernetFixed = 1 + 8 + aes.BlockSize + sha256.Size
)

// FernetSuite produces standard Fernet tokens: URL-safe base64 of
//
//	0x80 || timestamp (8) || IV (16) || AES-128-CBC ciphertext || HMAC-SHA256 (32)
//
// with the signing and encryption keys split from the derived key. Tokens
// interoperate with any Fernet implementation given Key.Encode, and the
// embedded timestamp allows a freshness window.
type FernetSuite struct{}

func (FernetSuite) ID() domain.SuiteID { return fernetID }
func (FernetSuite) Name() string       { return FernetSuiteName }

func (FernetSuite) TokenLen(n int) int {
	padded := (n/aes.BlockSize + 1) * aes.BlockSize
	return tokenEncoding.EncodedLen(fernetFixed + padded)
}

// Match checks the first base64 character: every Fernet token starts with "gA".
func (FernetSuite) Match(token []byte) bool {
	return len(token) >= 2 && token[0] == 'g' && token[1] == 'A'
}

func (FernetSuite) Seal(key Key, plaintext []byte) ([]byte, error) {
	fk, err := fernet.DecodeKey(key.Encode())
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(fk[:])
	return fernet.EncryptAndSign(plaintext, fk)
}

func (FernetSuite) Open(key Key, token []byte, ttl time.Duration) ([]byte, error) {
	if !wellFormedFernet(token) {
		return nil, domain.ErrInvalidToken
	}
	fk, err := fernet.DecodeKey(key.Encode())
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	defer memzero.Zero(fk[:])
	if ttl <= 0 {
		ttl = -1 // fernet-go skips the timestamp check for negative ttl
	}
	pt := fernet.VerifyAndDecrypt(token, ttl, []*fernet.Key{fk})
	if pt == nil {
		return nil, domain.ErrInvalidToken
	}
	return pt, nil
}

// wellFormedFernet checks encoding and framing before the token reaches
// fernet-go, which assumes a minimum length.
func wellFormedFernet(token []byte) bool {
	raw := make([]byte, tokenEncoding.DecodedLen(len(token)))
	n, err := tokenEncoding.Decode(raw, token)
	if err != nil {
		return false
	}
	raw = raw[:n]
	if len(raw) < fernetFixed+aes.BlockSize || domain.SuiteID(raw[0]) != fernetID {
		return false
	}
	return (len(raw)-fernetFixed)%aes.BlockSize == 0
}
