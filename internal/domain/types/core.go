package types

// SuiteID is the leading byte of a cipher token identifying its construction.
type SuiteID byte

// Format names a pixel container encoding, e.g. "png" or "jpeg".
type Format string

// String returns the string form of the format.
func (f Format) String() string { return string(f) }

// Lossless reports whether a decode/encode round trip preserves every channel value.
func (f Format) Lossless() bool {
	switch f {
	case "png", "bmp", "tiff", "qoi":
		return true
	}
	return false
}

// Fingerprint is a short identifier of a derived key, safe to show to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
