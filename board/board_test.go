package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snakeladder/board"
)

// newBoard builds a non-strict board or fails the test.
func newBoard(t *testing.T, size int, opts ...board.Option) *board.Board {
	t.Helper()
	b, err := board.NewBoard(size, opts...)
	require.NoError(t, err)

	return b
}

// TestNewBoard_NonPositiveSize verifies that sizes <= 0 are rejected.
func TestNewBoard_NonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		b, err := board.NewBoard(size)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, board.ErrNonPositiveSize, "size %d", size)
	}
}

// TestNewBoard_NilOnIgnored verifies that a nil OnIgnored hook is an option violation.
func TestNewBoard_NilOnIgnored(t *testing.T) {
	b, err := board.NewBoard(10, board.WithOnIgnored(nil))
	assert.Nil(t, b)
	assert.ErrorIs(t, err, board.ErrOptionViolation)
}

// TestNewBoard_IdentityResolve checks that a fresh board resolves every cell to itself.
func TestNewBoard_IdentityResolve(t *testing.T) {
	b := newBoard(t, 10)
	assert.Equal(t, 10, b.Size())
	assert.False(t, b.Strict())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, b.Resolve(i))
	}
	assert.Empty(t, b.Ladders())
	assert.Empty(t, b.Snakes())
	assert.Empty(t, b.Shortcuts())
}

// TestResolve_OutOfRange ensures off-board cells are returned unchanged.
func TestResolve_OutOfRange(t *testing.T) {
	b := newBoard(t, 5)
	assert.Equal(t, -1, b.Resolve(-1))
	assert.Equal(t, 5, b.Resolve(5))
	assert.Equal(t, 42, b.Resolve(42))
}

// TestAddLadder covers a valid forward shortcut.
func TestAddLadder(t *testing.T) {
	b := newBoard(t, 30)
	require.NoError(t, b.AddLadder(2, 21))
	assert.Equal(t, 21, b.Resolve(2))
	assert.Equal(t, map[int]int{2: 21}, b.Ladders())
	assert.Empty(t, b.Snakes())
}

// TestAddSnake covers a valid backward shortcut.
func TestAddSnake(t *testing.T) {
	b := newBoard(t, 30)
	require.NoError(t, b.AddSnake(26, 0))
	assert.Equal(t, 0, b.Resolve(26))
	assert.Equal(t, map[int]int{26: 0}, b.Snakes())
	assert.Empty(t, b.Ladders())
}

// TestInvalidShortcuts_SilentlyIgnored ensures bad registrations leave the board unmodified.
func TestInvalidShortcuts_SilentlyIgnored(t *testing.T) {
	cases := []struct {
		name       string
		kind       board.Kind
		start, end int
	}{
		{"ladder backwards", board.Ladder, 21, 2},
		{"ladder to self", board.Ladder, 5, 5},
		{"ladder start negative", board.Ladder, -1, 4},
		{"ladder end past goal", board.Ladder, 3, 10},
		{"snake forwards", board.Snake, 2, 8},
		{"snake to self", board.Snake, 4, 4},
		{"snake start past goal", board.Snake, 10, 1},
		{"snake end negative", board.Snake, 5, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, 10)
			var err error
			if tc.kind == board.Ladder {
				err = b.AddLadder(tc.start, tc.end)
			} else {
				err = b.AddSnake(tc.start, tc.end)
			}
			assert.NoError(t, err)
			for i := 0; i < b.Size(); i++ {
				assert.Equal(t, i, b.Resolve(i), "cell %d must be unmodified", i)
			}
			assert.Empty(t, b.Shortcuts())
		})
	}
}

// TestInvalidShortcuts_Strict verifies strict mode reports bad registrations.
func TestInvalidShortcuts_Strict(t *testing.T) {
	b := newBoard(t, 10, board.WithStrict())
	assert.True(t, b.Strict())

	assert.ErrorIs(t, b.AddLadder(7, 3), board.ErrInvalidShortcut)
	assert.ErrorIs(t, b.AddSnake(3, 7), board.ErrInvalidShortcut)
	assert.ErrorIs(t, b.AddLadder(0, 10), board.ErrInvalidShortcut)
	assert.Empty(t, b.Shortcuts(), "strict mode must not record invalid shortcuts")

	assert.NoError(t, b.AddLadder(3, 7))
	assert.NoError(t, b.AddSnake(9, 1))
	assert.Equal(t, 7, b.Resolve(3))
	assert.Equal(t, 1, b.Resolve(9))
}

// TestOnIgnored asserts the hook sees every dropped registration.
func TestOnIgnored(t *testing.T) {
	var got []board.Shortcut
	b := newBoard(t, 10, board.WithOnIgnored(func(kind board.Kind, start, end int) {
		got = append(got, board.Shortcut{Start: start, End: end, Kind: kind})
	}))

	require.NoError(t, b.AddLadder(8, 2))
	require.NoError(t, b.AddSnake(1, 6))
	require.NoError(t, b.AddLadder(1, 6))

	assert.Equal(t, []board.Shortcut{
		{Start: 8, End: 2, Kind: board.Ladder},
		{Start: 1, End: 6, Kind: board.Snake},
	}, got)
}

// TestLastWriteWins checks that a later shortcut at the same start replaces the earlier one.
func TestLastWriteWins(t *testing.T) {
	b := newBoard(t, 20)
	require.NoError(t, b.AddLadder(5, 10))
	require.NoError(t, b.AddLadder(5, 15))
	assert.Equal(t, 15, b.Resolve(5))

	// a snake at the same start replaces the ladder
	require.NoError(t, b.AddSnake(5, 1))
	assert.Equal(t, 1, b.Resolve(5))
	assert.Empty(t, b.Ladders())
	assert.Equal(t, map[int]int{5: 1}, b.Snakes())
}

// TestResolve_SingleLevel ensures chained shortcuts are not followed.
func TestResolve_SingleLevel(t *testing.T) {
	b := newBoard(t, 20)
	require.NoError(t, b.AddLadder(2, 8))
	require.NoError(t, b.AddLadder(8, 15))
	assert.Equal(t, 8, b.Resolve(2), "chained shortcuts must not be followed")
	assert.Equal(t, 15, b.Resolve(8))
}

// TestShortcuts_Ordered verifies Shortcuts is sorted by start cell.
func TestShortcuts_Ordered(t *testing.T) {
	b := newBoard(t, 30)
	require.NoError(t, b.AddSnake(26, 0))
	require.NoError(t, b.AddLadder(2, 21))
	require.NoError(t, b.AddSnake(16, 3))

	assert.Equal(t, []board.Shortcut{
		{Start: 2, End: 21, Kind: board.Ladder},
		{Start: 16, End: 3, Kind: board.Snake},
		{Start: 26, End: 0, Kind: board.Snake},
	}, b.Shortcuts())
}

// TestClone_Independent ensures a clone does not share state with its source.
func TestClone_Independent(t *testing.T) {
	b := newBoard(t, 10, board.WithStrict())
	require.NoError(t, b.AddLadder(1, 5))

	c := b.Clone()
	require.NoError(t, c.AddSnake(9, 0))
	assert.True(t, c.Strict())

	assert.Equal(t, 9, b.Resolve(9), "original must not see the clone's snake")
	assert.Equal(t, 0, c.Resolve(9))
	assert.Equal(t, 5, c.Resolve(1))
}

// TestKind_String covers Kind names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "ladder", board.Ladder.String())
	assert.Equal(t, "snake", board.Snake.String())
	assert.Equal(t, "Kind(7)", board.Kind(7).String())
}
