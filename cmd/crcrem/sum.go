package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	crc "github.com/noxworld-dev/gfcrc"
	"github.com/noxworld-dev/gfcrc/internal/rlog"
)

func newSumCmd() *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:   "sum [FILE...]",
		Short: "Print the CRC of files, or of stdin if none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := crc.Lookup(preset)
			if !ok {
				return fmt.Errorf("unknown preset %q", preset)
			}
			tab, err := crc.MakeTable(p)
			if err != nil {
				return err
			}
			rlog.Debug("using %v", p)
			out := cmd.OutOrStdout()
			digits := int(p.Width+3) / 4
			if len(args) == 0 {
				sum, err := sumReader(tab, cmd.InOrStdin())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%0*x  -\n", digits, sum)
				return nil
			}
			for _, name := range args {
				sum, err := sumFile(tab, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%0*x  %s\n", digits, sum, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", crc.CRC32ISOHDLC.Name, "CRC model name, see the presets command")
	return cmd
}

func sumReader(tab *crc.Table, r io.Reader) (uint64, error) {
	h := crc.New(tab)
	if _, err := io.Copy(h, r); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func sumFile(tab *crc.Table, name string) (uint64, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return sumReader(tab, f)
}
