package crypto

import "encoding/base64"

// tokenEncoding is URL-safe base64 with padding, as used by Fernet keys and tokens.
var tokenEncoding = base64.URLEncoding

// B64 returns URL-safe base64 encoding without newlines.
func B64(b []byte) string { return tokenEncoding.EncodeToString(b) }
