package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/puzzles"
)

// NewPuzzlesCommand creates the puzzles command.
func NewPuzzlesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "puzzles",
		Short: "List the built-in example puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := puzzles.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				e, err := puzzles.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, e.Description)
			}
			return nil
		},
	}
}
