package crypto

import (
	"crypto/rand"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"pixelvault/internal/domain"
)

const (
	// ChaChaSuiteName selects ChaChaSuite.
	ChaChaSuiteName = "chacha20poly1305"

	chachaID       domain.SuiteID = 0x01
	chachaOverhead                = 1 + chacha20poly1305.NonceSize + chacha20poly1305.Overhead
)

// ChaChaSuite is the compact binary token:
//
//	0x01 || nonce (12) || ciphertext || Poly1305 tag (16)
//
// The leading byte is authenticated as associated data. At 29 bytes of
// overhead it suits small covers; it carries no timestamp, so ttl is ignored.
//
// The token is raw binary, not base64: text encoding would add a third to
// its size and push a two-byte message past a 10x10 cover. Binary tokens may
// contain the delimiter bytes; a false match truncates the token and fails
// authentication. Use FernetSuite where a text-safe token is required.
type ChaChaSuite struct{}

func (ChaChaSuite) ID() domain.SuiteID { return chachaID }
func (ChaChaSuite) Name() string       { return ChaChaSuiteName }
func (ChaChaSuite) TokenLen(n int) int { return n + chachaOverhead }

func (ChaChaSuite) Match(token []byte) bool {
	return len(token) > 0 && domain.SuiteID(token[0]) == chachaID
}

func (ChaChaSuite) Seal(key Key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 1+aead.NonceSize(), chachaOverhead+len(plaintext))
	out[0] = byte(chachaID)
	nonce := out[1:]
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(out, nonce, plaintext, out[:1]), nil
}

func (ChaChaSuite) Open(key Key, token []byte, _ time.Duration) ([]byte, error) {
	if len(token) < chachaOverhead || domain.SuiteID(token[0]) != chachaID {
		return nil, domain.ErrInvalidToken
	}
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	nonce := token[1 : 1+aead.NonceSize()]
	pt, err := aead.Open(nil, nonce, token[1+aead.NonceSize():], token[:1])
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return pt, nil
}
