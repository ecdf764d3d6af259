// Package board models a snakes-and-ladders board: a fixed number of
// numbered cells plus an overlay of shortcuts that move a player who lands
// on a shortcut's start cell to its end cell.
//
// Ladders point forward, snakes point backward. The only thing a solver
// needs is Resolve, which applies at most one shortcut to a landed-on cell,
// so it never has to tell snakes and ladders apart.
package board

import "fmt"

// NewBoard constructs a Board with size cells, none of which has a shortcut.
// Returns ErrNonPositiveSize if size <= 0, or ErrOptionViolation for bad options.
// Complexity: O(size) time and memory.
func NewBoard(size int, opts ...Option) (*Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveSize, size)
	}

	dest := make([]int, size)
	for i := range dest {
		dest[i] = i
	}

	return &Board{size: size, dest: dest, opts: o}, nil
}

// AddLadder registers a forward shortcut start→end.
// The ladder is recorded only if 0 <= start < end < Size; otherwise it is
// dropped, and nil is returned unless the board is strict.
// A later shortcut at the same start replaces an earlier one.
func (b *Board) AddLadder(start, end int) error {
	if !b.inBounds(start) || !b.inBounds(end) || start >= end {
		return b.ignore(Ladder, start, end)
	}
	b.dest[start] = end

	return nil
}

// AddSnake registers a backward shortcut start→end.
// The snake is recorded only if 0 <= end < start < Size; otherwise it is
// dropped, and nil is returned unless the board is strict.
// A later shortcut at the same start replaces an earlier one.
func (b *Board) AddSnake(start, end int) error {
	if !b.inBounds(start) || !b.inBounds(end) || start <= end {
		return b.ignore(Snake, start, end)
	}
	b.dest[start] = end

	return nil
}

// ignore reports a dropped registration to the hook and, in strict mode,
// to the caller.
func (b *Board) ignore(kind Kind, start, end int) error {
	b.opts.OnIgnored(kind, start, end)
	if !b.opts.Strict {
		return nil
	}

	return fmt.Errorf("%w: %s %d->%d on board of size %d", ErrInvalidShortcut, kind, start, end, b.size)
}

// Resolve returns the cell a player ends up on after landing on cell.
// Exactly one level of shortcut is applied: chained shortcuts are not followed.
// Cells outside the board are returned unchanged.
// Complexity: O(1).
func (b *Board) Resolve(cell int) int {
	if !b.inBounds(cell) {
		return cell
	}

	return b.dest[cell]
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return b.size
}

// Strict reports whether invalid registrations are returned as errors.
func (b *Board) Strict() bool {
	return b.opts.Strict
}

// Ladders returns every ladder as start→end.
// Complexity: O(Size).
func (b *Board) Ladders() map[int]int {
	ladders := make(map[int]int)
	for i, d := range b.dest {
		if d > i {
			ladders[i] = d
		}
	}

	return ladders
}

// Snakes returns every snake as start→end.
// Complexity: O(Size).
func (b *Board) Snakes() map[int]int {
	snakes := make(map[int]int)
	for i, d := range b.dest {
		if d < i {
			snakes[i] = d
		}
	}

	return snakes
}

// Shortcuts returns every registered shortcut in ascending start order.
func (b *Board) Shortcuts() []Shortcut {
	var out []Shortcut
	for i, d := range b.dest {
		switch {
		case d > i:
			out = append(out, Shortcut{Start: i, End: d, Kind: Ladder})
		case d < i:
			out = append(out, Shortcut{Start: i, End: d, Kind: Snake})
		}
	}

	return out
}

// Clone returns a deep copy of b, options included.
func (b *Board) Clone() *Board {
	dest := make([]int, len(b.dest))
	copy(dest, b.dest)

	return &Board{size: b.size, dest: dest, opts: b.opts}
}

// inBounds reports whether cell lies on the board.
func (b *Board) inBounds(cell int) bool {
	return cell >= 0 && cell < b.size
}
