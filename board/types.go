// Package board defines the Board type, its options, and sentinel errors
// for the board subpackage of github.com/katalvlaran/snakeladder.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	// ErrNonPositiveSize is returned by NewBoard when size <= 0.
	ErrNonPositiveSize = errors.New("board: size must be positive")

	// ErrInvalidShortcut is returned in strict mode when a ladder or snake
	// is out of bounds or points the wrong way.
	ErrInvalidShortcut = errors.New("board: invalid shortcut")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")
)

// Kind tells a ladder from a snake.
type Kind int

const (
	// Ladder moves the player to a higher-numbered cell.
	Ladder Kind = iota
	// Snake moves the player to a lower-numbered cell.
	Snake
)

// String returns "ladder" or "snake".
func (k Kind) String() string {
	switch k {
	case Ladder:
		return "ladder"
	case Snake:
		return "snake"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shortcut is one registered ladder or snake.
type Shortcut struct {
	Start int  // cell the player lands on
	End   int  // cell the player is moved to
	Kind  Kind // Ladder if End > Start, Snake otherwise
}

// Option configures a Board via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewBoard.
type Option func(*Options)

// Options holds construction-time parameters of a Board.
type Options struct {
	// Strict makes AddLadder and AddSnake return ErrInvalidShortcut
	// instead of silently dropping a bad registration.
	Strict bool

	// OnIgnored, if set, is called for every registration that is dropped.
	// It is called in both strict and non-strict mode.
	OnIgnored func(kind Kind, start, end int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with silent-ignore semantics and no hook.
func DefaultOptions() Options {
	return Options{
		Strict:    false,
		OnIgnored: func(Kind, int, int) {},
	}
}

// WithStrict reports invalid shortcut registrations as ErrInvalidShortcut.
// The registration is still not recorded.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithOnIgnored registers a callback run whenever a registration is dropped.
// A nil fn is an option violation.
func WithOnIgnored(fn func(kind Kind, start, end int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnIgnored callback is nil", ErrOptionViolation)
			return
		}
		o.OnIgnored = fn
	}
}

// Board is a linear sequence of Size cells overlaid with shortcuts.
// Cell 0 is the start and cell Size-1 is the goal.
//
// dest[i] == i for a plain cell; otherwise it holds the shortcut target.
// A Board is not safe for concurrent mutation; once setup is finished it
// may be read from any number of goroutines.
type Board struct {
	size int
	dest []int
	opts Options
}
