// Package bfs provides tunable options and error definitions
// for the minimum-dice-throws breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrBoardNil is returned if a nil Board is passed.
	ErrBoardNil = errors.New("bfs: board is nil")

	// ErrEmptyBoard is returned if the Board reports no cells.
	ErrEmptyBoard = errors.New("bfs: board has no cells")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrResolveOutOfRange is returned when Board.Resolve yields a cell
	// outside 0..Size()-1.
	ErrResolveOutOfRange = errors.New("bfs: resolved cell out of range")
)

// Unreachable is the Throws value of a Result whose goal cannot be reached.
const Unreachable = -1

// DefaultDieFaces is the number of faces on a standard die.
const DefaultDieFaces = 6

// Board is the view of a board the solver needs: its cell count and the
// effective destination of a landed-on cell.
// *board.Board satisfies it.
type Board interface {
	Size() int
	Resolve(cell int) int
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. zero die faces), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// DieFaces is the highest value one throw can produce.
	DieFaces int

	// OnEnqueue is called when a cell is enqueued.
	// Receives the resolved cell and its throw count from cell 0.
	OnEnqueue func(cell, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(cell, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(cell, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - a six-faced die
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		DieFaces:  DefaultDieFaces,
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDieFaces sets the number of faces on the die.
//
//	n > 0: throws produce 1..n
//	n <= 0: invalid option → ErrOptionViolation
func WithDieFaces(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: DieFaces must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.DieFaces = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Throws: minimum number of throws, or Unreachable.
//   - Path: one witness path from cell 0 to the goal; nil if unreachable.
//   - Order: cells in the order they were visited.
type Result struct {
	Throws int
	Path   []int
	Order  []int
}

// Reachable reports whether the goal was reached.
func (r *Result) Reachable() bool {
	return r.Throws != Unreachable
}
