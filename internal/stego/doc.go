// Package stego embeds bit streams into, and extracts them from, the least
// significant bits of a pixel grid's R, G and B channels.
//
// # Scan order
//
// Rows top to bottom, columns left to right, channels R then G then B. One bit
// per channel; the seven higher bits of every channel are preserved.
//
// # Framing
//
// A payload's end is marked by a fixed delimiter appended before embedding.
// Extract streams decoded bytes through a KMP matcher and stops at the first
// match. A payload that itself contains the delimiter is truncated there.
//
// The package holds no state and performs no locking; callers must not
// share a grid between concurrent calls that mutate it.
package stego
