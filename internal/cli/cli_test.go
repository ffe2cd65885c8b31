package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const classicText = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestSolveCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, classicText, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "5 3 4 | 6 7 8 | 9 1 2")
	assert.Contains(t, out, "------+-------+------")
}

func TestSolveCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(classicText), 0o644))

	out, err := runCommand(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5 3 4 | 6 7 8 | 9 1 2")
}

func TestSolveCommand_LibraryPuzzle(t *testing.T) {
	out, err := runCommand(t, "", "solve", "--puzzle", "classic")
	require.NoError(t, err)
	assert.Contains(t, out, "5 3 4 | 6 7 8 | 9 1 2")
}

func TestSolveCommand_PuzzleAndFileConflict(t *testing.T) {
	_, err := runCommand(t, "", "solve", "--puzzle", "classic", "some-file")
	assert.Error(t, err)
}

func TestSolveCommand_DuplicateInput(t *testing.T) {
	rows := "55.......\n" + strings.Repeat(".........\n", 8)
	_, err := runCommand(t, rows, "solve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid puzzle")
	assert.Contains(t, err.Error(), "duplicate value 5 at row 1, column 2")
}

func TestSolveCommand_Unsolvable(t *testing.T) {
	_, err := runCommand(t, "", "solve", "--puzzle", "blocked-corner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsolvable")
}

func TestValidateCommand(t *testing.T) {
	out, err := runCommand(t, classicText, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 51 empty cells")
}

func TestValidateCommand_Invalid(t *testing.T) {
	rows := "55.......\n" + strings.Repeat(".........\n", 8)
	out, err := runCommand(t, rows, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "invalid: duplicate value 5 at row 1, column 2")
	assert.Contains(t, out, "conflict at row 1, column 2")
}

func TestValidateCommand_CompleteGrid(t *testing.T) {
	solved := `534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`
	out, err := runCommand(t, solved, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "already complete")
}

func TestTraceCommand_NearlyDone(t *testing.T) {
	out, err := runCommand(t, "", "trace", "--puzzle", "nearly-done")
	require.NoError(t, err)
	assert.Contains(t, out, "place  1 at row 9, column 7")
	assert.Contains(t, out, "place  9 at row 9, column 9")
	assert.Contains(t, out, "solved in 2 steps")
}

func TestTraceCommand_Unsolvable(t *testing.T) {
	out, err := runCommand(t, "", "trace", "--puzzle", "blocked-corner")
	require.Error(t, err)
	assert.Contains(t, out, "unsolvable: exhausted after 0 steps")
}

func TestPuzzlesCommand(t *testing.T) {
	out, err := runCommand(t, "", "puzzles")
	require.NoError(t, err)
	for _, name := range []string{"classic", "nearly-done", "blocked-corner"} {
		assert.Contains(t, out, name)
	}
}
