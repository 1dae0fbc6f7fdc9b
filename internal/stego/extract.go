package stego

import (
	"errors"

	"pixelvault/internal/bitstream"
	"pixelvault/internal/domain"
)

var errEmptyDelimiter = errors.New("stego: delimiter must not be empty")

// Extract reads channel LSBs of g in embedding order and returns the bytes
// preceding the first occurrence of delim.
//
// Reading stops as soon as the delimiter completes; later pixels are never
// inspected. If the delimiter never occurs, found is false and err is nil:
// an image without a payload is an ordinary outcome. err is reserved for a
// malformed grid or an empty delimiter.
func Extract(g *domain.Grid, delim []byte) (payload []byte, found bool, err error) {
	if len(delim) == 0 {
		return nil, false, errEmptyDelimiter
	}
	if err := g.Validate(); err != nil {
		return nil, false, err
	}

	m := NewMatcher(delim)
	var asm bitstream.Assembler
	out := make([]byte, 0, 64)
	for _, c := range g.Pix {
		b, ok := asm.Push(c & 1)
		if !ok {
			continue
		}
		out = append(out, b)
		if m.Feed(b) {
			return out[:len(out)-m.Len()], true, nil
		}
	}
	return nil, false, nil
}

// ExtractAll returns every whole byte carried by g's channel LSBs, with no
// delimiter search. The trailing partial byte is dropped.
func ExtractAll(g *domain.Grid) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	bits := make([]uint8, len(g.Pix))
	for i, c := range g.Pix {
		bits[i] = c & 1
	}
	return bitstream.Decode(bits), nil
}
