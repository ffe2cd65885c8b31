package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func boardFromRows(t *testing.T, rows []string) *domain.Board {
	t.Helper()
	b, err := domain.ParseRows(rows)
	require.NoError(t, err)
	return b
}

func TestCheck_EmptyGridIsValid(t *testing.T) {
	err := New().Check(context.Background(), &domain.Board{})
	assert.NoError(t, err)
}

func TestCheck_RowDuplicate(t *testing.T) {
	b := boardFromRows(t, []string{
		"55.......",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	})

	err := New().Check(context.Background(), b)

	var dup *DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, &DuplicateValueError{Row: 0, Col: 1, Value: 5}, dup)
	assert.EqualError(t, err, "duplicate value 5 at row 1, column 2")
}

func TestCheck_ColumnDuplicate(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][4] = 7
	b.Values[6][4] = 7

	err := New().Check(context.Background(), b)

	var dup *DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, &DuplicateValueError{Row: 6, Col: 4, Value: 7}, dup)
}

func TestCheck_BoxDuplicate(t *testing.T) {
	// same box, different row and column
	b := &domain.Board{}
	b.Values[3][3] = 2
	b.Values[5][5] = 2

	err := New().Check(context.Background(), b)

	var dup *DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, &DuplicateValueError{Row: 5, Col: 5, Value: 2}, dup)
}

func TestCheck_ReportsFirstClashingCell(t *testing.T) {
	// two independent duplicates; the row-major earlier one wins
	b := &domain.Board{}
	b.Values[1][0] = 3
	b.Values[1][8] = 3
	b.Values[7][2] = 6
	b.Values[8][2] = 6

	err := New().Check(context.Background(), b)

	var dup *DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 1, dup.Row)
	assert.Equal(t, 8, dup.Col)
}

func TestCheck_CompleteGridRejected(t *testing.T) {
	err := New().Check(context.Background(), &domain.Board{Values: solved})
	assert.ErrorIs(t, err, ErrAlreadyComplete)
}

func TestCheck_DuplicateBeatsComplete(t *testing.T) {
	// a full grid with a conflict must report the conflict, not completeness
	b := &domain.Board{Values: solved}
	b.Values[8][8] = b.Values[8][7]

	err := New().Check(context.Background(), b)

	var dup *DuplicateValueError
	require.ErrorAs(t, err, &dup)
	assert.NotErrorIs(t, err, ErrAlreadyComplete)
	assert.Equal(t, &DuplicateValueError{Row: 8, Col: 8, Value: 7}, dup)
}

func TestConflicts(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][1] = 5
	b.Values[4][2] = 9
	b.Values[8][2] = 9

	got := New().Conflicts(context.Background(), b)
	assert.Equal(t, []domain.CellCoord{
		{Row: 0, Col: 1},
		{Row: 8, Col: 2},
	}, got)
}

func TestConflicts_CleanGrid(t *testing.T) {
	b := boardFromRows(t, []string{
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	})
	assert.Empty(t, New().Conflicts(context.Background(), b))
}
