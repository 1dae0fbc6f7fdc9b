// Package app wires application dependencies for the CLI.
//
// It turns Config into a logger, the image store, the pipeline and the
// passphrase policy, exposing them via the Wire struct. The file-level
// operations on Wire (ConcealFile, RevealFile, Inspect, Capacity) are what
// the commands call.
package app
