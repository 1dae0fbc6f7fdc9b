// Package bitstream converts byte sequences to and from MSB-first bit sequences.
//
// Both directions are total: Encode always yields 8 bits per byte and Decode
// silently drops a trailing partial byte.
package bitstream
