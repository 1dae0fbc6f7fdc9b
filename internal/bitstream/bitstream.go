package bitstream

// Encode expands b into one element per bit, most-significant bit of each
// byte first. Every element is 0 or 1.
func Encode(b []byte) []uint8 {
	bits := make([]uint8, 0, len(b)*8)
	for _, c := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (c>>uint(i))&1)
		}
	}
	return bits
}

// Decode packs bits back into bytes, eight at a time. A trailing group of
// fewer than eight bits is dropped. Only the low bit of each element is used.
func Decode(bits []uint8) []byte {
	out := make([]byte, 0, len(bits)/8)
	var a Assembler
	for _, bit := range bits {
		if b, ok := a.Push(bit); ok {
			out = append(out, b)
		}
	}
	return out
}

// Assembler packs a stream of bits into bytes incrementally.
// The zero value is ready to use.
type Assembler struct {
	cur byte
	n   uint8
}

// Push appends one bit. It returns the completed byte and true after every
// eighth bit.
func (a *Assembler) Push(bit uint8) (byte, bool) {
	a.cur = a.cur<<1 | bit&1
	a.n++
	if a.n < 8 {
		return 0, false
	}
	b := a.cur
	a.cur, a.n = 0, 0
	return b, true
}
