package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		puzzleName string
		interval   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Solve steppably, printing every placement and retraction",
		Long: `Trace runs the steppable search and prints one line per step event.
The search pauses for --interval between steps; Ctrl-C cancels it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBoard(cmd, args, puzzleName)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			obs := func(ev domain.StepEvent) {
				fmt.Fprintf(out, "%6d  %-6s %d at row %d, column %d\n",
					ev.Seq, ev.Kind, ev.Value, ev.Row+1, ev.Col+1)
			}

			stepper := solver.NewStepper(solver.WithInterval(interval))
			uc := usecase.NewService(nil, stepper, validator.New(), nil)
			solved, st, err := uc.SolveSteps(ctx, b, obs)
			switch {
			case err == nil:
				fmt.Fprintf(out, "solved in %d steps (%d nodes, %v)\n", st.Steps, st.Nodes, st.Duration)
				fmt.Fprint(out, solved.String())
				return nil
			case errors.Is(err, solver.ErrAborted):
				fmt.Fprintf(out, "aborted after %d steps\n", st.Steps)
				return err
			case errors.Is(err, solver.ErrUnsolvable):
				fmt.Fprintf(out, "unsolvable: exhausted after %d steps\n", st.Steps)
				return err
			default:
				return describeSolveError(err)
			}
		},
	}

	cmd.Flags().StringVar(&puzzleName, "puzzle", "", "trace a named puzzle from the built-in library")
	cmd.Flags().DurationVar(&interval, "interval", 0, "pacing delay between steps (e.g. 50ms)")
	return cmd
}
