package domain

// Empty marks an unassigned cell. Legal cell values are Empty and 1..9.
const Empty uint8 = 0

// Board holds the current 9x9 grid and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// EmptyCount reports how many cells are unassigned.
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StepKind distinguishes the two observable search moves.
type StepKind int

const (
	// StepPlace is a trial placement of a digit into an empty cell.
	StepPlace StepKind = iota + 1
	// StepRemove is the retraction of a placement during backtracking.
	StepRemove
)

func (k StepKind) String() string {
	switch k {
	case StepPlace:
		return "place"
	case StepRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// StepEvent is one observable move of the steppable search: a placement or
// a retraction, with the grid state immediately after the move. Grid is a
// snapshot; observers may retain it.
type StepEvent struct {
	Seq   int64       `json:"seq"`
	Kind  StepKind    `json:"kind"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Value uint8       `json:"value"`
	Grid  [9][9]uint8 `json:"grid"`
}

// StepObserver receives one event per placement and per retraction.
// It is invoked between search steps, before the pacing delay.
type StepObserver func(StepEvent)

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
