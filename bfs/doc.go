// Package bfs computes the minimum number of dice throws needed to travel
// from cell 0 to the last cell of a snakes-and-ladders board, together with
// one witness path of that length.
//
// What
//
//   - Explores cells in non-decreasing throw count from cell 0.
//   - From a cell c, each die value d (1..DieFaces) with c+d < Size is one
//     move; the move ends on Board.Resolve(c+d), never on the raw landed cell
//     when a shortcut starts there.
//   - Returns a Result containing:
//   - Throws: minimum throw count, or Unreachable (-1)
//   - Path:   one shortest path of resolved cells, starting at 0
//   - Order:  visit sequence
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a cell is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//
// Determinism
//
//	Die values are tried in ascending order and a cell is marked visited when
//	it is enqueued, so when several moves reach the same cell at the same
//	depth the first one (smallest source in queue order, then smallest die
//	value) decides the witness path. The throw count is always exact; the
//	path is one valid shortest path, not a canonical one.
//
// Rules
//
//   - Throws that overshoot the last cell are not moves; there is no
//     bounce-back and no exact-landing requirement.
//   - Exactly one shortcut is applied per move; a shortcut ending on the
//     start of another shortcut is not followed further.
//   - An unreachable goal (e.g. every move from cell 0 is a snake back to 0)
//     is a normal outcome reported through Result, not an error.
//
// Complexity (N = Size, F = DieFaces)
//
//   - Time:   O(N × F)   (each cell enqueued at most once)
//   - Memory: O(N)       (queue, visited set, parent links)
//
// Usage
//
//	res, err := bfs.FindMinDiceThrows(b)
//	if err != nil {
//	    // ErrBoardNil, ErrEmptyBoard, ErrOptionViolation,
//	    // ErrResolveOutOfRange, ctx.Err() or a wrapped OnVisit error
//	}
//	if !res.Reachable() {
//	    fmt.Println("Destination is unreachable!")
//	}
//
//	// With functional options:
//	res, err := bfs.FindMinDiceThrows(
//	    b,
//	    bfs.WithContext(ctx),
//	    bfs.WithDieFaces(4),
//	    bfs.WithOnVisit(func(cell, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrBoardNil           if the board is nil, or a typed nil pointer.
//   - ErrEmptyBoard         if Size() <= 0.
//   - ErrOptionViolation    if an Option is invalid (e.g. WithDieFaces(0)).
//   - ErrResolveOutOfRange  if Resolve returns a cell outside the board.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
