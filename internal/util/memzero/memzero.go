// Package memzero clears sensitive buffers such as derived keys and
// passphrase bytes read from a terminal.
package memzero

import "crypto/subtle"

// Zero overwrites every given buffer with zeros using a constant-time copy.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
	}
}
