package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newThreeThreeGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(threeThreeParams())
	require.NoError(t, err)
	return g
}

func TestHasWin(t *testing.T) {
	g := newThreeThreeGame(t)

	t.Run("detecting a row win", func(t *testing.T) {
		grid := parseGrid(t, "XXX", "OO.", "...")
		require.True(t, g.HasWin(grid, Position{Row: 0, Col: 1}))
	})

	t.Run("detecting a column win", func(t *testing.T) {
		grid := parseGrid(t, "OX.", "OX.", ".X.")
		require.True(t, g.HasWin(grid, Position{Row: 2, Col: 1}))
	})

	t.Run("detecting a south-east diagonal win", func(t *testing.T) {
		grid := parseGrid(t, "X.O", ".XO", "..X")
		require.True(t, g.HasWin(grid, Position{Row: 2, Col: 2}))
	})

	t.Run("detecting a north-east diagonal win", func(t *testing.T) {
		grid := parseGrid(t, "X.O", "XO.", "O..")
		require.True(t, g.HasWin(grid, Position{Row: 0, Col: 2}))
	})

	t.Run("detecting a win from any cell on the line", func(t *testing.T) {
		grid := parseGrid(t, "XXX", "OO.", "...")
		for col := 0; col < 3; col++ {
			require.True(t, g.HasWin(grid, Position{Row: 0, Col: col}),
				"the scan spans both sides of the last move")
		}
	})

	t.Run("ignoring an interrupted line", func(t *testing.T) {
		grid := parseGrid(t, "XOX", "OO.", "X..")
		require.False(t, g.HasWin(grid, Position{Row: 0, Col: 0}))
	})

	t.Run("clipping the span at the board edge", func(t *testing.T) {
		grid := parseGrid(t, "X..", ".O.", "..O")
		require.False(t, g.HasWin(grid, Position{Row: 0, Col: 0}),
			"a corner scan must not reach outside the board")
	})

	t.Run("ignoring a win elsewhere on the board", func(t *testing.T) {
		// The scan is local to the last move: a winning line that does not
		// pass through it is invisible here. The whole-board fallback is
		// responsible for such boards.
		grid := parseGrid(t, "XXX", "OO.", "..O")
		require.False(t, g.HasWin(grid, Position{Row: 2, Col: 2}))
		require.True(t, g.HasWinAnywhere(grid))
	})

	t.Run("detecting a mid-board win on a larger game", func(t *testing.T) {
		params := threeThreeParams()
		params.Rows = 5
		params.Cols = 6
		params.WinLength = 4
		big, err := NewGame(params)
		require.NoError(t, err)

		grid := NewGrid(5, 6)
		for i := 0; i < 4; i++ {
			grid.set(Position{Row: 1 + i, Col: 1 + i}, O)
		}

		require.True(t, big.HasWin(grid, Position{Row: 2, Col: 2}))
		require.False(t, big.HasWin(grid, Position{Row: 0, Col: 0}))
	})
}

func TestWinningLine(t *testing.T) {
	g := newThreeThreeGame(t)

	t.Run("locating a row win", func(t *testing.T) {
		grid := parseGrid(t, "OO.", "XXX", "...")

		won, line := g.WinningLine(grid, Position{Row: 1, Col: 2})

		require.True(t, won)
		require.Equal(t, []Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, line,
			"the line should be exactly the winning window, in direction order")
	})

	t.Run("locating a north-east diagonal win", func(t *testing.T) {
		grid := parseGrid(t, "X.O", "XO.", "O..")

		won, line := g.WinningLine(grid, Position{Row: 1, Col: 1})

		require.True(t, won)
		require.ElementsMatch(t,
			[]Position{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}}, line)
	})

	t.Run("returning no line without a win", func(t *testing.T) {
		grid := parseGrid(t, "XO.", "...", "...")

		won, line := g.WinningLine(grid, Position{Row: 0, Col: 0})

		require.False(t, won)
		require.Nil(t, line)
	})

	t.Run("locating a win on a longer-than-k line", func(t *testing.T) {
		params := threeThreeParams()
		params.Rows = 1
		params.Cols = 5
		params.WinLength = 3
		wide, err := NewGame(params)
		require.NoError(t, err)

		grid := NewGrid(1, 5)
		for col := 1; col <= 3; col++ {
			grid.set(Position{Row: 0, Col: col}, X)
		}

		won, line := wide.WinningLine(grid, Position{Row: 0, Col: 2})

		require.True(t, won)
		require.Equal(t, []Position{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, line,
			"only the cells of the winning window belong to the line")
	})
}

func TestHasWinAnywhere(t *testing.T) {
	g := newThreeThreeGame(t)

	t.Run("finding wins in every orientation", func(t *testing.T) {
		for name, grid := range map[string]*Grid{
			"row":        parseGrid(t, "OO.", "XXX", "..."),
			"column":     parseGrid(t, ".OX", ".OX", "..X"),
			"south-east": parseGrid(t, "O..", "XO.", "X.O"),
			"north-east": parseGrid(t, "X.O", ".OX", "O.."),
		} {
			require.True(t, g.HasWinAnywhere(grid), "should find the %s win", name)
		}
	})

	t.Run("reporting no win on an open board", func(t *testing.T) {
		require.False(t, g.HasWinAnywhere(parseGrid(t, "XO.", ".X.", "..O")))
	})

	t.Run("reporting no win on a full drawn board", func(t *testing.T) {
		grid := parseGrid(t, "XOX", "XOO", "OXX")

		require.False(t, g.HasWinAnywhere(grid))
		require.True(t, g.Draw(grid), "a full board without a win is the draw terminal state")
	})

	t.Run("skipping diagonals too short for a streak", func(t *testing.T) {
		params := threeThreeParams()
		params.Rows = 2
		params.Cols = 5
		params.WinLength = 4
		wide, err := NewGame(params)
		require.NoError(t, err)

		grid := NewGrid(2, 5)
		for col := 0; col < 4; col++ {
			grid.set(Position{Row: 0, Col: col}, O)
		}

		require.True(t, wide.HasWinAnywhere(grid), "the row win is long enough")
	})
}
