package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Describe an image and whether it carries a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := wire.Inspect(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			fmt.Fprintf(out, "Path:     %s\n", r.Path)
			fmt.Fprintf(out, "Format:   %s (lossless: %t)\n", r.Format, r.Lossless)
			fmt.Fprintf(out, "Size:     %dx%d\n", r.Width, r.Height)
			fmt.Fprintf(out, "Capacity: %d bits\n", r.CapacityBits)
			if !r.Delimited {
				fmt.Fprintln(out, "Payload:  none")
				return nil
			}
			suite := r.Suite
			if suite == "" {
				suite = "unknown"
			}
			fmt.Fprintf(out, "Payload:  %d bytes (%s)\n", r.PayloadBytes, suite)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
