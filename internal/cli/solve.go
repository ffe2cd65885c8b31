package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var puzzleName string

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Validate a puzzle and solve it to completion",
		Long: `Solve reads nine rows of cells (digits 1-9, '.' or '0' for empty),
validates them, and runs the synchronous backtracking search.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(cmd, args, puzzleName)
			if err != nil {
				return err
			}

			uc := usecase.NewService(solver.NewBacktrackingSolver(), nil, validator.New(), nil)
			out, st, err := uc.Solve(cmd.Context(), b)
			if err != nil {
				return describeSolveError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			if rootOpts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "nodes=%d dur=%v\n", st.Nodes, st.Duration)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&puzzleName, "puzzle", "", "solve a named puzzle from the built-in library")
	return cmd
}

// describeSolveError keeps the distinct failure classes distinguishable on
// the command line: bad input, proven unsolvable, and cancelled searches
// must never collapse into one message.
func describeSolveError(err error) error {
	var dup *validator.DuplicateValueError
	switch {
	case errors.As(err, &dup):
		return fmt.Errorf("invalid puzzle: %w", err)
	case errors.Is(err, validator.ErrAlreadyComplete):
		return fmt.Errorf("invalid puzzle: %w", err)
	case errors.Is(err, solver.ErrUnsolvable):
		return fmt.Errorf("proven unsolvable: every assignment was exhausted")
	case errors.Is(err, solver.ErrAborted):
		return fmt.Errorf("search cancelled before a result")
	default:
		return err
	}
}
