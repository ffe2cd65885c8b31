package solver

import "errors"

var (
	// ErrUnsolvable means the search exhausted every assignment: a proof
	// that no solution exists for the input, not a timeout.
	ErrUnsolvable = errors.New("no solution exists")
	// ErrAborted means the search was cancelled before resolution. It is
	// distinct from ErrUnsolvable and must never be reported as one.
	ErrAborted = errors.New("search aborted")
	// ErrBusy means a steppable search was started while one was running.
	ErrBusy = errors.New("search already running")
)

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// isValid reports whether v may legally occupy (r,c): false iff v already
// appears in row r, column c, or the 3x3 box containing (r,c). The target
// cell is not required to be empty; callers clear it first.
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
