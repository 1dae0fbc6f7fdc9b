package crypto

import (
	"fmt"
	"sort"
	"time"

	"pixelvault/internal/domain"
)

// Suite is one authenticated token construction.
//
// Tokens are self-describing: Detect recognises the producing suite from the
// token's leading byte, so Decrypt needs no side channel.
type Suite interface {
	ID() domain.SuiteID
	Name() string
	// TokenLen returns the exact token length for a plaintext of n bytes.
	TokenLen(n int) int
	// Match reports whether token looks like one this suite produced.
	Match(token []byte) bool
	Seal(key Key, plaintext []byte) ([]byte, error)
	// Open verifies and decrypts token. A positive ttl rejects tokens older
	// than ttl on suites that carry a timestamp. Every failure is
	// domain.ErrInvalidToken.
	Open(key Key, token []byte, ttl time.Duration) ([]byte, error)
}

var suites = map[string]Suite{
	ChaChaSuiteName: ChaChaSuite{},
	FernetSuiteName: FernetSuite{},
}

// DefaultSuite is used when no suite is configured.
func DefaultSuite() Suite { return ChaChaSuite{} }

// SuiteByName returns the suite registered under name.
func SuiteByName(name string) (Suite, error) {
	if s, ok := suites[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown cipher suite %q (have %v)", name, SuiteNames())
}

// SuiteNames lists registered suite names in sorted order.
func SuiteNames() []string {
	names := make([]string, 0, len(suites))
	for n := range suites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Detect returns the suite that produced token, or nil.
func Detect(token []byte) Suite {
	for _, n := range SuiteNames() {
		if s := suites[n]; s.Match(token) {
			return s
		}
	}
	return nil
}

// Encrypt seals plaintext under key with suite s, or the default suite when s is nil.
// Each call draws a fresh nonce, so equal plaintexts give distinct tokens.
func Encrypt(key Key, plaintext []byte, s Suite) ([]byte, error) {
	if s == nil {
		s = DefaultSuite()
	}
	tok, err := s.Seal(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%s: seal: %w", s.Name(), err)
	}
	return tok, nil
}

// Decrypt opens a token produced by any registered suite. It fails closed
// with domain.ErrInvalidToken and never returns partial plaintext.
func Decrypt(key Key, token []byte, ttl time.Duration) ([]byte, error) {
	s := Detect(token)
	if s == nil {
		return nil, domain.ErrInvalidToken
	}
	pt, err := s.Open(key, token, ttl)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if pt == nil {
		pt = []byte{}
	}
	return pt, nil
}
