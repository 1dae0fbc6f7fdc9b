package domain

import (
	"errors"
	"fmt"

	types "pixelvault/internal/domain/types"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrCapacityExceeded is returned when a framed payload needs more bits than the grid offers.
	ErrCapacityExceeded = errors.New("payload exceeds image capacity")

	// ErrPayloadNotFound is returned when no delimiter occurs in the grid's LSB stream.
	ErrPayloadNotFound = errors.New("no embedded payload found")

	// ErrInvalidToken is returned for malformed, tampered, expired or wrongly keyed tokens.
	// It deliberately does not say which.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMalformedInput is returned when a grid's dimensions disagree with its pixel data.
	ErrMalformedInput = types.ErrMalformedInput

	// ErrUnsupportedFormat is returned when an image format would not preserve channel values.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// CapacityError carries the numbers behind ErrCapacityExceeded.
type CapacityError struct {
	Required  int // bits
	Available int // bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: need %d bits, have %d", ErrCapacityExceeded, e.Required, e.Available)
}

// Unwrap returns ErrCapacityExceeded so errors.Is matches.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
