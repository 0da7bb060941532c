package main

import (
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	crc "github.com/noxworld-dev/gfcrc"
	"github.com/noxworld-dev/gfcrc/internal/rlog"
)

func newRemainderCmd() *cobra.Command {
	var msgWidth, genWidth uint
	cmd := &cobra.Command{
		Use:   "remainder MESSAGE GENERATOR",
		Short: "Divide a message by a generator polynomial and print the remainder in binary",
		Long: `Divide a message by a generator polynomial over GF(2) and print the remainder in binary.

Widths default to the bit length of the values.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := parseUint(args[0])
			if err != nil {
				return fmt.Errorf("message: %w", err)
			}
			gen, err := parseUint(args[1])
			if err != nil {
				return fmt.Errorf("generator: %w", err)
			}
			mw, gw := msgWidth, genWidth
			if !cmd.Flags().Changed("message-width") {
				mw = uint(bits.Len64(msg))
			}
			if !cmd.Flags().Changed("generator-width") {
				gw = uint(bits.Len64(gen))
			}
			rlog.Debug("dividing %#b (width %d) by %#b (width %d)", msg, mw, gen, gw)
			rem, err := crc.Remainder(msg, mw, gen, gw)
			if err != nil {
				return err
			}
			digits := 1
			if gw > 1 {
				digits = int(gw - 1)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%0*b\n", digits, rem)
			return nil
		},
	}
	cmd.Flags().UintVar(&msgWidth, "message-width", 0, "message width in bits")
	cmd.Flags().UintVar(&genWidth, "generator-width", 0, "generator width in bits, including the leading bit")
	return cmd
}
