// Package passphrase implements the passphrase strength policy applied before
// a key is derived. The key is an unsalted SHA-256 of the passphrase, so the
// policy is the only thing standing between a short passphrase and a
// dictionary attack on a stego image.
package passphrase
