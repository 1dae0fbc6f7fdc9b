package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// conceal <cover> <out> [message]: encrypt message and hide it in cover.
func concealCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "conceal <cover> <out> [message]",
		Short: "Encrypt a message and hide it in a cover image",
		Long: "Encrypt a message and hide it in the least significant bits of a cover image.\n" +
			"The message comes from the third argument, --in, or STDIN. The output\n" +
			"extension picks the format and must be .png, .bmp, .tiff or .qoi.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(cmd, args, inPath)
			if err != nil {
				return err
			}
			p, err := passphraseFor(cmd, true)
			if err != nil {
				return err
			}
			report, err := wire.ConcealFile(args[0], args[1], p, msg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Concealed %d bytes in %s (%d of %d bits used).\n",
				len(msg), args[1], report.RequiredBits, report.CapacityBits)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", `read the message from this file ("-" for STDIN)`)
	return cmd
}

func readMessage(cmd *cobra.Command, args []string, inPath string) ([]byte, error) {
	switch {
	case len(args) == 3 && inPath != "":
		return nil, fmt.Errorf("give the message as an argument or with --in, not both")
	case len(args) == 3:
		return []byte(args[2]), nil
	case inPath != "" && inPath != "-":
		return os.ReadFile(inPath)
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}
