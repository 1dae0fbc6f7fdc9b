package stego

import (
	"pixelvault/internal/bitstream"
	"pixelvault/internal/domain"
)

// Embed writes bits into the channel LSBs of a copy of g and returns the copy.
//
// Channels are visited row by row from the top, left to right within a row,
// and R, G, B within a pixel. Channels past the last bit keep their original
// values. g itself is never modified; when bits exceed the capacity a
// *domain.CapacityError is returned and no copy is made.
func Embed(g *domain.Grid, bits []uint8) (*domain.Grid, error) {
	if err := checkCapacity(g, len(bits)); err != nil {
		return nil, err
	}
	out := g.Clone()
	// Pix is already in scan order, so the i-th bit lands in the i-th channel.
	for i, bit := range bits {
		out.Pix[i] = out.Pix[i]&^1 | bit&1
	}
	return out, nil
}

// EmbedBytes frames payload with delim and embeds the result.
func EmbedBytes(g *domain.Grid, payload, delim []byte) (*domain.Grid, error) {
	if len(delim) == 0 {
		return nil, errEmptyDelimiter
	}
	if err := checkCapacity(g, FramedBits(len(payload), len(delim))); err != nil {
		return nil, err
	}
	framed := make([]byte, 0, len(payload)+len(delim))
	framed = append(framed, payload...)
	framed = append(framed, delim...)
	return Embed(g, bitstream.Encode(framed))
}
