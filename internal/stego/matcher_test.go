package stego_test

import (
	"bytes"
	"testing"

	"pixelvault/internal/stego"
)

// firstEnd returns the index just past the first match of pattern in s, or -1.
func firstEnd(m *stego.Matcher, s []byte) int {
	for i, b := range s {
		if m.Feed(b) {
			return i + 1
		}
	}
	return -1
}

func TestMatcher_AgreesWithBytesIndex(t *testing.T) {
	cases := []struct {
		pattern, stream string
	}{
		{"#####", "abc#####def"},
		{"#####", "####x#####"},
		{"#####", "########"},
		{"#####", "#### ####"},
		{"abab", "abaabababab"},
		{"aab", "aaaab"},
		{"x", "yyyx"},
		{"abc", "ababab"},
	}
	for _, c := range cases {
		m := stego.NewMatcher([]byte(c.pattern))
		want := bytes.Index([]byte(c.stream), []byte(c.pattern))
		if want >= 0 {
			want += len(c.pattern)
		}
		if got := firstEnd(m, []byte(c.stream)); got != want {
			t.Fatalf("pattern %q in %q: want end %d, got %d", c.pattern, c.stream, want, got)
		}
	}
}

func TestMatcher_MatchesAgainAfterHit(t *testing.T) {
	m := stego.NewMatcher([]byte("##"))
	if m.Feed('#') {
		t.Fatal("match reported after a single byte")
	}
	if !m.Feed('#') {
		t.Fatal("expected match on second byte")
	}
	if !m.Feed('#') {
		t.Fatal("expected overlapping match on third byte")
	}
	if m.Len() != 2 {
		t.Fatalf("want Len 2, got %d", m.Len())
	}
}
