package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// reveal <image>: extract and decrypt the hidden message.
func revealCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "reveal <image>",
		Short: "Extract and decrypt a message hidden in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePassphrase(cmd, false)
			if err != nil {
				return err
			}
			msg, err := wire.RevealFile(args[0], p)
			if err != nil {
				return err
			}
			if outPath != "" {
				return os.WriteFile(outPath, msg, 0o600)
			}
			_, err = cmd.OutOrStdout().Write(msg)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the message to this file instead of STDOUT")
	return cmd
}
