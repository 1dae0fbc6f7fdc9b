package commands

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pixelvault/internal/app"
	"pixelvault/internal/util/memzero"
)

// resolvePassphrase returns the -p flag if set, else $PIXELVAULT_PASSPHRASE,
// else a terminal prompt. With confirm the prompt asks twice.
func resolvePassphrase(cmd *cobra.Command, confirm bool) (string, error) {
	if cmd.Flags().Changed("passphrase") {
		return passphraseFlag, nil
	}
	if env := os.Getenv(app.PassphraseEnv); env != "" {
		return env, nil
	}

	p, err := readPassword("Passphrase: ")
	if err != nil {
		return "", err
	}
	defer memzero.Zero(p)
	if confirm {
		again, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		defer memzero.Zero(again)
		if !bytes.Equal(p, again) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	return string(p), nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		return term.ReadPassword(fd)
	}

	// STDIN carries the message; read the passphrase from the controlling terminal.
	tty, err := os.Open("/dev/tty")
	if err != nil {
		if runtime.GOOS == "windows" {
			return nil, fmt.Errorf("passphrase must be set via -p or %s when STDIN is piped", app.PassphraseEnv)
		}
		return nil, fmt.Errorf("cannot prompt for passphrase: no terminal available; set -p or %s", app.PassphraseEnv)
	}
	defer tty.Close()
	return term.ReadPassword(int(tty.Fd()))
}

// passphraseFor resolves the passphrase and applies the strength policy.
func passphraseFor(cmd *cobra.Command, confirm bool) (string, error) {
	p, err := resolvePassphrase(cmd, confirm)
	if err != nil {
		return "", err
	}
	if err := wire.CheckPassphrase(p); err != nil {
		return "", err
	}
	return p, nil
}
