package passphrase

import (
	"fmt"
	"unicode"

	"pixelvault/internal/domain"
)

const (
	// DefaultMinLength defines the minimum number of characters required for a passphrase.
	DefaultMinLength = 12
)

// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
var ErrWeakPassphrase = fmt.Errorf("weak passphrase")

// Service checks passphrases against a minimum length and character-class policy.
type Service struct {
	minLen int
}

// New returns a passphrase service. A minLen of zero or less selects DefaultMinLength.
func New(minLen int) *Service {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	return &Service{minLen: minLen}
}

// Check returns an error wrapping ErrWeakPassphrase that names every rule the
// passphrase breaks, or nil when it satisfies the policy.
func (s *Service) Check(passphrase string) error {
	var missing []string
	if n := len([]rune(passphrase)); n < s.minLen {
		missing = append(missing, fmt.Sprintf("at least %d characters (have %d)", s.minLen, n))
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		missing = append(missing, "an upper-case letter")
	}
	if !hasLower {
		missing = append(missing, "a lower-case letter")
	}
	if !hasDigit {
		missing = append(missing, "a digit")
	}
	if !hasSymbol {
		missing = append(missing, "a symbol")
	}
	if len(missing) == 0 {
		return nil
	}
	return &WeakError{Missing: missing}
}

// WeakError lists the policy rules a passphrase failed.
type WeakError struct {
	Missing []string
}

func (e *WeakError) Error() string {
	msg := "weak passphrase: needs "
	for i, m := range e.Missing {
		if i > 0 {
			msg += ", "
		}
		msg += m
	}
	return msg
}

func (e *WeakError) Unwrap() error { return ErrWeakPassphrase }

// Compile-time assertion that Service implements domain.PassphraseService.
var _ domain.PassphraseService = (*Service)(nil)
