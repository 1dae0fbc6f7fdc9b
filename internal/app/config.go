package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// PassphraseEnv names the environment variable consulted when no passphrase flag is given.
const PassphraseEnv = "PIXELVAULT_PASSPHRASE"

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel  string // logrus level name, e.g. "info" or "debug"
	LogFormat string // "text" or "json"

	Delimiter string        // end-of-payload marker; empty selects "#####"
	Cipher    string        // suite name used when concealing; empty selects the default
	TTL       time.Duration // maximum token age accepted on reveal; zero disables
	Compress  bool          // zstd-compress plaintext before encryption

	MinPassphraseLen int  // passphrase policy length; zero selects the default
	Strict           bool // treat passphrase policy violations as errors
}

// DefaultConfig returns the configuration used when no flags are set.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadEnv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
