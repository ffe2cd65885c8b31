package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Steps    int64
	Duration time.Duration
}

// Solver runs a search to completion and returns the solved board.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// StepSolver runs the same search but surfaces every placement and
// retraction to an observer, paced by a configurable interval, and can be
// cancelled through the context.
type StepSolver interface {
	Solve(ctx context.Context, b *domain.Board, obs domain.StepObserver) (*domain.Board, Stats, error)
}

// Validator gates a board before any search runs.
type Validator interface {
	// Check returns nil for a searchable board, a *DuplicateValueError for
	// the first constraint violation, or ErrAlreadyComplete for a full grid.
	Check(ctx context.Context, b *domain.Board) error
	// Conflicts enumerates every cell that clashes with an earlier cell in
	// its row, column, or box. Used for display highlighting.
	Conflicts(ctx context.Context, b *domain.Board) []domain.CellCoord
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
