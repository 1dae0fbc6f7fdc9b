package stego

import (
	"pixelvault/internal/domain"
)

// CapacityBits returns how many payload bits g can carry at one bit per
// R, G and B channel. Alpha is never used.
func CapacityBits(g *domain.Grid) int {
	return g.Width * g.Height * domain.ChannelsPerPixel
}

// Fits reports whether payloadBits fit into capacityBits.
func Fits(payloadBits, capacityBits int) bool {
	return payloadBits <= capacityBits
}

// FramedBits returns the bit length of a payload of payloadLen bytes
// followed by a delimiter of delimLen bytes.
func FramedBits(payloadLen, delimLen int) int {
	return (payloadLen + delimLen) * 8
}

// checkCapacity validates g and fails with a *domain.CapacityError when
// bits do not fit.
func checkCapacity(g *domain.Grid, bits int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if capacity := CapacityBits(g); !Fits(bits, capacity) {
		return &domain.CapacityError{Required: bits, Available: capacity}
	}
	return nil
}
