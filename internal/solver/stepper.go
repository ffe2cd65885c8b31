package solver

import (
	"context"
	"sync/atomic"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// State tracks a steppable search invocation:
// Idle -> Running -> {Solved, Unsolvable, Aborted} -> Idle.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateSolved
	StateUnsolvable
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSolved:
		return "solved"
	case StateUnsolvable:
		return "unsolvable"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stepper runs the same backtracking search as BacktrackingSolver but
// emits a StepEvent after every placement and every retraction, then
// suspends for a configurable interval before resuming. Cancelling the
// context aborts the search at the next check point; once cancellation is
// observed no further events are emitted and no further retractions run.
//
// A Stepper executes at most one search at a time (ErrBusy otherwise), but
// it is not safe for concurrent Solve calls from multiple goroutines;
// callers own that discipline. The context may be cancelled from any
// goroutine.
type Stepper struct {
	interval time.Duration
	state    atomic.Int32
	outcome  atomic.Int32 // terminal state of the last completed run
}

// StepperOption configures a Stepper.
type StepperOption func(*Stepper)

// WithInterval sets the pacing delay observed after each emitted event.
// Zero or negative means no delay.
func WithInterval(d time.Duration) StepperOption {
	return func(s *Stepper) { s.interval = d }
}

func NewStepper(opts ...StepperOption) *Stepper {
	s := &Stepper{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State reports whether a search is currently running.
func (s *Stepper) State() State { return State(s.state.Load()) }

// LastOutcome reports the terminal state of the most recent run, or
// StateIdle if none has completed yet.
func (s *Stepper) LastOutcome() State { return State(s.outcome.Load()) }

// Solve searches b with the same cell and digit ordering as the
// synchronous solver. The input board is copied; obs may be nil. Returns
// ErrUnsolvable when the root digit loop is exhausted, ErrAborted when the
// context was cancelled first.
func (s *Stepper) Solve(ctx context.Context, b *domain.Board, obs domain.StepObserver) (*domain.Board, ports.Stats, error) {
	if !s.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil, ports.Stats{}, ErrBusy
	}

	start := time.Now()
	grid := b.Values
	nodes := 0
	var seq int64
	aborted := false

	emit := func(kind domain.StepKind, r, c int, v uint8) {
		seq++
		if obs != nil {
			obs(domain.StepEvent{
				Seq:   seq,
				Kind:  kind,
				Row:   r,
				Col:   c,
				Value: v,
				Grid:  grid, // array copy: a snapshot, not an alias
			})
		}
	}

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			aborted = true
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if ctx.Err() != nil {
				aborted = true
				return false
			}
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				emit(domain.StepPlace, r, c, v)
				if !s.pause(ctx) {
					aborted = true
					return false
				}
				if dfs() {
					return true
				}
				if aborted {
					// unwind without retracting: the working grid stays
					// exactly as it was when cancellation was observed
					return false
				}
				grid[r][c] = 0
				emit(domain.StepRemove, r, c, v)
				if !s.pause(ctx) {
					aborted = true
					return false
				}
			}
		}
		return false
	}

	solved := dfs()
	st := ports.Stats{Nodes: nodes, Steps: seq, Duration: time.Since(start)}

	var outcome State
	var err error
	switch {
	case solved:
		outcome = StateSolved
	case aborted:
		outcome, err = StateAborted, ErrAborted
	default:
		outcome, err = StateUnsolvable, ErrUnsolvable
	}
	s.outcome.Store(int32(outcome))
	s.state.Store(int32(StateIdle))

	if err != nil {
		return nil, st, err
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, st, nil
}

// pause suspends between steps. Returns false when the context was
// cancelled during (or before) the suspension.
func (s *Stepper) pause(ctx context.Context) bool {
	if s.interval <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
