// Package crypto derives the channel key from a passphrase and seals payloads
// into self-describing authenticated tokens.
//
// Contents
//
//   - Key derivation: unsalted SHA-256 of the passphrase (DeriveKey), URL-safe
//     base64 key form (Key.Encode, ParseKey) and a display fingerprint
//   - Token suites behind the Suite interface:
//     ChaChaSuite (compact binary, default) and FernetSuite (standard Fernet)
//   - Encrypt and Decrypt, which dispatch on the token's leading byte
//
// # Notes
//
// Keys are plain values passed to every call; nothing in this package holds
// key material between calls. Callers should Wipe keys when done.
// Decryption failures of any kind collapse to domain.ErrInvalidToken so that
// a wrong passphrase is indistinguishable from tampering.
package crypto
