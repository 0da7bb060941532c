package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	crc "github.com/noxworld-dev/gfcrc"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List known CRC models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIDTH\tPOLY\tINIT\tREFIN\tREFOUT\tXOROUT\tCHECK")
			for _, p := range crc.Presets() {
				fmt.Fprintf(w, "%s\t%d\t%#x\t%#x\t%t\t%t\t%#x\t%#x\n",
					p.Name, p.Width, p.Poly, p.Init, p.RefIn, p.RefOut, p.XorOut, p.Check)
			}
			return w.Flush()
		},
	}
}
