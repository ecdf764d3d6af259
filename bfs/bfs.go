// Package bfs finds the minimum number of dice throws needed to move from
// the first to the last cell of a snakes-and-ladders board.
//
// The board is an implicit unit-weight digraph: from cell c there is one
// edge per die value d with c+d < Size, leading to Resolve(c+d).
package bfs

import (
	"context"
	"fmt"
	"reflect"
)

// queueItem pairs a resolved cell with its throw count.
type queueItem struct {
	cell  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	board   Board
	opts    Options
	ctx     context.Context
	size    int
	queue   []queueItem
	visited []bool
	parent  []int
	res     *Result
}

// FindMinDiceThrows runs breadth-first search on b from cell 0 to cell
// b.Size()-1, applying any number of functional Options.
//
// An unreachable goal is not an error: the Result then has Throws ==
// Unreachable and a nil Path. Errors are ErrBoardNil, ErrEmptyBoard,
// ErrOptionViolation, ErrResolveOutOfRange, the context's error, or a
// wrapped OnVisit error.
func FindMinDiceThrows(b Board, opts ...Option) (*Result, error) {
	if isNil(b) {
		return nil, ErrBoardNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := b.Size()
	if n <= 0 {
		return nil, ErrEmptyBoard
	}

	w := &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		size:    n,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		parent:  make([]int, n),
		res: &Result{
			Throws: Unreachable,
			Order:  make([]int, 0, n),
		},
	}

	// Seed queue with cell 0 (no parent)
	w.parent[0] = -1
	w.enqueue(0, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// isNil reports whether b is nil, including a typed nil pointer
// wrapped in the interface.
func isNil(b Board) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// enqueue marks cell visited at depth d, calls OnEnqueue, and adds it to
// the queue. The parent link is set by the caller.
func (w *walker) enqueue(cell, d int) {
	w.visited[cell] = true
	w.opts.OnEnqueue(cell, d)
	w.queue = append(w.queue, queueItem{cell: cell, depth: d})
}

// loop processes the queue until the goal is dequeued, the queue is
// empty, or an error occurs.
func (w *walker) loop() error {
	goal := w.size - 1
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.cell == goal {
			w.res.Throws = item.depth
			w.res.Path = w.pathTo(goal)
			return nil
		}
		if err := w.enqueueMoves(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at cell %d: %w", item.cell, err)
	}
	return nil
}

// enqueueMoves tries every die value from item.cell in ascending order.
// Throws past the last cell are not moves. The shortcut is applied before
// the visited check, so a cell reached twice at the same depth keeps the
// parent of the smaller die value.
func (w *walker) enqueueMoves(item queueItem) error {
	for d := 1; d <= w.opts.DieFaces && item.cell+d < w.size; d++ {
		landed := item.cell + d
		next := w.board.Resolve(landed)
		if next < 0 || next >= w.size {
			return fmt.Errorf("%w: cell %d resolved to %d on board of size %d",
				ErrResolveOutOfRange, landed, next, w.size)
		}
		if !w.visited[next] {
			w.parent[next] = item.cell
			w.enqueue(next, item.depth+1)
		}
	}
	return nil
}

// pathTo walks parent links back from cell to 0 and returns the path
// in start → cell order.
func (w *walker) pathTo(cell int) []int {
	path := []int{}
	for cur := cell; cur != -1; cur = w.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
