package validator

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-engine/internal/domain"
)

// ErrAlreadyComplete marks a fully filled grid. A complete grid is not a
// valid input to search even when it is itself a correct solution; that
// rejection is deliberate and load-bearing for callers.
var ErrAlreadyComplete = errors.New("grid is already complete")

// DuplicateValueError reports the first cell whose value repeats an
// earlier occurrence in its row, column, or box. Row and Col are
// 0-indexed; the message renders them 1-indexed for display.
type DuplicateValueError struct {
	Row   int
	Col   int
	Value uint8
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate value %d at row %d, column %d", e.Value, e.Row+1, e.Col+1)
}

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Check gates a board before search. Duplicate detection runs first over
// the whole grid, completeness second; that precedence is fixed. A single
// row-major pass tracks seen digits per row, column, and box, so the
// reported cell is the first one (lowest row, then lowest column) that
// clashes with any earlier cell.
func (v *FastValidator) Check(ctx context.Context, b *domain.Board) error {
	var rows, cols, boxes [9]int
	empties := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == domain.Empty {
				empties++
				continue
			}
			box := (r/3)*3 + c/3
			bit := 1 << val
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[box]&bit != 0 {
				return &DuplicateValueError{Row: r, Col: c, Value: val}
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}
	if empties == 0 {
		return ErrAlreadyComplete
	}
	return nil
}

// Conflicts enumerates every cell that repeats an earlier value in its
// row, column, or box. Unlike Check it does not stop at the first hit;
// the result drives conflict highlighting in clients.
func (v *FastValidator) Conflicts(ctx context.Context, b *domain.Board) []domain.CellCoord {
	var rows, cols, boxes [9]int
	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == domain.Empty {
				continue
			}
			box := (r/3)*3 + c/3
			bit := 1 << val
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[box]&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}
	return conf
}
