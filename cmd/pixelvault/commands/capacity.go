package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func capacityCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "capacity <image>",
		Short: "Report how much plaintext an image can carry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, maxLen, err := wire.Capacity(args[0], n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Image:     %dx%d (%d bits)\n", report.Width, report.Height, report.CapacityBits)
			if maxLen < 0 {
				fmt.Fprintln(out, "Max bytes: none; the image is too small for an empty message")
			} else {
				fmt.Fprintf(out, "Max bytes: %d\n", maxLen)
			}
			if cmd.Flags().Changed("bytes") {
				verdict := "fits"
				if !report.Fits {
					verdict = "does not fit"
				}
				fmt.Fprintf(out, "%d bytes:  %s (%d bits required, %d free)\n",
					n, verdict, report.RequiredBits, report.FreeBits())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "bytes", 0, "check whether a message of this many bytes fits")
	return cmd
}
