package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowbench/flowbench/pkg/compose"
	"github.com/flowbench/flowbench/pkg/graphio"
)

// newGridCmd creates the grid command: copies of one block arranged in a
// staggered brick-wall grid.
func newGridCmd() *cobra.Command {
	var (
		blockName    string
		rows, layers int
		output       string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Arrange copies of one block in a brick-wall grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			block, err := parseBlock(blockName)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			og, err := compose.ComposeGrid(block, rows, layers)
			if err != nil {
				return err
			}

			if err := graphio.ExportJSON(og, output); err != nil {
				return err
			}
			printFile(output)
			printStats(og.Order(), og.Graph().Size(), false)
			prog.done(fmt.Sprintf("Built %dx%d grid", rows, layers))
			return nil
		},
	}

	cmd.Flags().StringVar(&blockName, "block", "browne", "block to tile")
	cmd.Flags().IntVar(&rows, "rows", 1, "number of parallel rows")
	cmd.Flags().IntVar(&layers, "layers", 1, "number of stacked layers")
	cmd.Flags().StringVarP(&output, "output", "o", "grid.json", "output file")

	return cmd
}
