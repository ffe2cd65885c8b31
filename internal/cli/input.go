package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/puzzles"
)

// loadBoard resolves the puzzle input for a command: a named library
// entry, a file argument, or rows piped on stdin.
func loadBoard(cmd *cobra.Command, args []string, puzzleName string) (*domain.Board, error) {
	if puzzleName != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("pass either --puzzle or a file, not both")
		}
		return puzzles.ByName(puzzleName)
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return domain.ParseText(string(data))
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no puzzle given: pass a file, pipe rows on stdin, or use --puzzle")
	}
	return domain.ParseText(string(data))
}
