package stego

// Matcher finds the first occurrence of a fixed byte pattern in a stream fed
// one byte at a time. It is a Knuth-Morris-Pratt automaton, so each byte is
// processed in amortised constant time regardless of pattern overlap.
type Matcher struct {
	pattern []byte
	fail    []int
	state   int
}

// NewMatcher returns a Matcher for pattern. pattern must be non-empty.
func NewMatcher(pattern []byte) *Matcher {
	p := append([]byte(nil), pattern...)
	fail := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = fail[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		fail[i] = k
	}
	return &Matcher{pattern: p, fail: fail}
}

// Feed consumes one byte and reports whether the stream now ends with the
// full pattern.
func (m *Matcher) Feed(b byte) bool {
	for m.state > 0 && b != m.pattern[m.state] {
		m.state = m.fail[m.state-1]
	}
	if b == m.pattern[m.state] {
		m.state++
	}
	if m.state == len(m.pattern) {
		m.state = m.fail[m.state-1]
		return true
	}
	return false
}

// Len returns the pattern length.
func (m *Matcher) Len() int { return len(m.pattern) }
