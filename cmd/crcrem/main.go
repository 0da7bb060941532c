// Command crcrem computes CRC remainders and checksums.
package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/noxworld-dev/gfcrc/internal/rlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		rlog.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "crcrem",
		Short:         "Compute CRC remainders and checksums",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rlog.DebugEnabled = verbose
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(
		newRemainderCmd(),
		newSumCmd(),
		newPresetsCmd(),
	)
	return root
}

// parseUint accepts 0b, 0o and 0x prefixes as well as plain decimal numbers.
func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}
