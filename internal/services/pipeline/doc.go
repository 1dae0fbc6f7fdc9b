// Package pipeline conceals encrypted payloads in pixel grids and reveals them.
//
// It is the only place where the cipher and the LSB codec meet: the token
// produced by internal/crypto, followed by the delimiter, is what
// internal/stego embeds, and the bytes before the first delimiter are what
// Reveal hands back to the cipher.
package pipeline
