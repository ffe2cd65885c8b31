package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Service wires the validator gate in front of both search variants and
// owns the restoration contract: pre-search failures and unsolvable
// searches always leave the caller's board untouched, because the solvers
// only ever mutate their own working copy.
type Service struct {
	Solver    ports.Solver
	Stepper   ports.StepSolver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, st ports.StepSolver, v ports.Validator, store ports.Storage) *Service {
	return &Service{Solver: s, Stepper: st, Validator: v, Storage: store}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve validates b and runs the synchronous search. On success the
// returned board holds the solution; on any error the input board is
// intact and no board is returned.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.Check(ctx, b); err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, b)
}

// SolveSteps validates b and runs the steppable search, streaming one
// event per placement and retraction to obs.
func (u *Service) SolveSteps(ctx context.Context, b *domain.Board, obs domain.StepObserver) (*domain.Board, ports.Stats, error) {
	if u.Stepper == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.Check(ctx, b); err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Stepper.Solve(ctx, b, obs)
}

// Validate runs the pre-search gate and, when it fails on a duplicate,
// enumerates every conflicting cell for display.
func (u *Service) Validate(ctx context.Context, b *domain.Board) ([]domain.CellCoord, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	err := u.Validator.Check(ctx, b)
	if err == nil {
		return nil, nil
	}
	return u.Validator.Conflicts(ctx, b), err
}

// Persistence

// Save stores p, assigning a fresh ID and creation time when missing.
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
