// Package commands defines the pixelvault CLI and wires dependencies for subcommands.
//
// Commands
//
//   - conceal   Encrypt a message and hide it in a cover image
//   - reveal    Extract and decrypt a message hidden in an image
//   - capacity  Report how much plaintext an image can carry
//   - inspect   Describe an image and whether it carries a payload
//   - key       Print the key and fingerprint derived from a passphrase
//
// # Implementation
//
// The root command loads an optional .env file and builds the dependency
// graph (logger, image store, pipeline, passphrase policy) before any
// subcommand runs. Passphrases come from -p, then PIXELVAULT_PASSPHRASE,
// then a terminal prompt.
package commands
