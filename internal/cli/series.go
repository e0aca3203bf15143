package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowbench/flowbench/pkg/compose"
	"github.com/flowbench/flowbench/pkg/graphio"
)

// newSeriesCmd creates the series command: n copies of one block chained
// end to end.
func newSeriesCmd() *cobra.Command {
	var (
		blockName string
		count     int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Chain copies of one block end to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			block, err := parseBlock(blockName)
			if err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			prog := newProgress(logger)
			og, err := compose.ComposeSeries(block, count)
			if err != nil {
				return err
			}

			if err := graphio.ExportJSON(og, output); err != nil {
				return err
			}
			printFile(output)
			printStats(og.Order(), og.Graph().Size(), false)
			prog.done(fmt.Sprintf("Chained %d copies", count))
			return nil
		},
	}

	cmd.Flags().StringVar(&blockName, "block", "browne", "block to chain")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of copies appended to the block")
	cmd.Flags().StringVarP(&output, "output", "o", "series.json", "output file")

	return cmd
}
