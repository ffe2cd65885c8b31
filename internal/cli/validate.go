package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var puzzleName string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a puzzle for duplicate values and completeness",
		Long: `Validate runs the pre-search gate: it reports the first duplicated
value in any row, column, or box, or rejects a grid with no empty cell.
A fully filled grid is not a valid input to search.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(cmd, args, puzzleName)
			if err != nil {
				return err
			}

			uc := usecase.NewService(nil, nil, validator.New(), nil)
			conflicts, err := uc.Validate(cmd.Context(), b)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
				for _, cell := range conflicts {
					fmt.Fprintf(cmd.OutOrStdout(), "  conflict at row %d, column %d\n", cell.Row+1, cell.Col+1)
				}
				return fmt.Errorf("validation failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d empty cells\n", b.EmptyCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&puzzleName, "puzzle", "", "validate a named puzzle from the built-in library")
	return cmd
}
