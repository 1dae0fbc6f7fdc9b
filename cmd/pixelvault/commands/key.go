package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pixelvault/internal/app"
)

// key: print the key derived from the passphrase so peers can compare fingerprints.
func keyCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the key and fingerprint derived from a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := passphraseFor(cmd, false)
			if err != nil {
				return err
			}
			key, fp := app.KeyInfo(p)
			if quiet {
				fmt.Fprintln(cmd.OutOrStdout(), fp)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key:         %s\nFingerprint: %s\n", key, fp)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "fingerprint-only", "f", false, "print only the fingerprint")
	return cmd
}
