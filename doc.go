// Package snakeladder finds the fewest dice throws needed to get from the
// first to the last cell of a snakes-and-ladders board.
//
// A board is a line of numbered cells. Ladders jump a player forward,
// snakes send a player back. Every throw is one unit-weight edge, so the
// answer is a breadth-first search over an implicit graph whose edges are
// rewritten by the shortcuts.
//
// Under the hood, everything is organized under these subpackages:
//
//	board/           — Board: cell count and cell → destination overlay
//	bfs/             — FindMinDiceThrows: minimum throws plus one witness path
//	config/          — TOML board definitions
//	cmd/snakeladder/ — command-line front end
//
// Quick ASCII example (size 8, ladder 2→6, snake 5→1):
//
//	0 ─ 1 ─ 2 ─ 3 ─ 4 ─ 5 ─ 6 ─ 7
//	        └──────────────►│
//	    ◄───────────────┘
//
//	go install github.com/katalvlaran/snakeladder/cmd/snakeladder@latest
package snakeladder
