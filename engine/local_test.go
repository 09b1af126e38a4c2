package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"mnk/game"
	"mnk/searcher"
)

func newThreeThreeGame(t *testing.T, starting game.StartingChoice) (*game.Game, *game.Player, *game.Player) {
	t.Helper()
	playerX := game.NewPlayer("Xavier", game.X)
	playerO := game.NewPlayer("Otto", game.O)
	g, err := game.NewGame(game.SetupParameters{
		Rows:      3,
		Cols:      3,
		WinLength: 3,
		PlayerX:   playerX,
		PlayerO:   playerO,
		Starting:  starting,
	})
	require.NoError(t, err)
	return g, playerX, playerO
}

// scripted returns an agent that plays a fixed sequence of moves.
func scripted(moves ...game.Position) Agent {
	i := 0
	return AgentFunc(func(grid *game.Grid) (game.Position, error) {
		if i >= len(moves) {
			return game.Position{}, errors.New("script exhausted")
		}
		move := moves[i]
		i++
		return move, nil
	})
}

func minimaxAgent(g *game.Game, maximising *game.Player, seed uint64) Agent {
	return NewMinimaxAgent(searcher.NewMinimax(g, maximising,
		searcher.WithRand(rand.New(rand.NewSource(seed))),
		searcher.WithMetrics()))
}

func TestLocal(t *testing.T) {
	t.Run("wiring a complete engine", func(t *testing.T) {
		g, _, _ := newThreeThreeGame(t, game.StartWithX)

		e := Local(g, scripted(), scripted())

		require.NotNil(t, e)
		require.Equal(t, g, e.Game)
	})

	t.Run("panicking on missing pieces", func(t *testing.T) {
		g, _, _ := newThreeThreeGame(t, game.StartWithX)

		require.Panics(t, func() { Local(nil, scripted(), scripted()) })
		require.Panics(t, func() { Local(g, nil, scripted()) })
		require.Panics(t, func() { Local(g, scripted(), nil) })
	})
}

func TestRunScriptedWin(t *testing.T) {
	g, playerX, playerO := newThreeThreeGame(t, game.StartWithX)
	agentX := scripted(
		game.Position{Row: 0, Col: 0},
		game.Position{Row: 0, Col: 1},
		game.Position{Row: 0, Col: 2},
	)
	agentO := scripted(
		game.Position{Row: 1, Col: 0},
		game.Position{Row: 1, Col: 1},
	)

	result, err := Local(g, agentX, agentO).Run()

	require.NoError(t, err)
	require.Equal(t, playerX, result.Winner)
	require.Equal(t,
		[]game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		result.Line, "the result should carry the winning line for the caller to highlight")
	require.Len(t, result.Moves, 5)
	require.Equal(t, 1, playerX.Wins(), "the winner's counter should increment")
	require.Equal(t, 0, playerO.Wins())
	require.Equal(t, 0, g.Draws())
}

func TestRunPerfectPlayDraw(t *testing.T) {
	g, playerX, playerO := newThreeThreeGame(t, game.StartWithX)
	e := Local(g, minimaxAgent(g, playerX, 1), minimaxAgent(g, playerO, 2))

	result, err := e.Run()

	require.NoError(t, err)
	require.Nil(t, result.Winner, "two optimal players draw 3x3 noughts and crosses")
	require.Len(t, result.Moves, 9)
	require.True(t, g.Grid().Full())
	require.Equal(t, 1, g.Draws(), "the draw counter should increment")
	require.Equal(t, 0, playerX.Wins())
	require.Equal(t, 0, playerO.Wins())
	require.Positive(t, result.Moves[0].Nodes,
		"search metrics should flow through to the move records")
}

func TestRunAgentFailures(t *testing.T) {
	t.Run("surfacing an agent error", func(t *testing.T) {
		g, _, _ := newThreeThreeGame(t, game.StartWithX)
		failing := AgentFunc(func(grid *game.Grid) (game.Position, error) {
			return game.Position{}, errors.New("no move")
		})

		_, err := Local(g, failing, scripted()).Run()

		require.ErrorContains(t, err, "found no move")
	})

	t.Run("surfacing an illegal move", func(t *testing.T) {
		g, _, _ := newThreeThreeGame(t, game.StartWithX)
		agentX := scripted(game.Position{Row: 0, Col: 0})
		agentO := scripted(game.Position{Row: 0, Col: 0})

		_, err := Local(g, agentX, agentO).Run()

		require.ErrorIs(t, err, game.ErrIllegalMove,
			"a dropped move would desynchronize agent and engine state")
	})
}

func TestRunWinCountsAccumulateAcrossGames(t *testing.T) {
	g, playerX, _ := newThreeThreeGame(t, game.StartWithX)

	for i := 0; i < 2; i++ {
		agentX := scripted(
			game.Position{Row: 0, Col: 0},
			game.Position{Row: 0, Col: 1},
			game.Position{Row: 0, Col: 2},
		)
		agentO := scripted(
			game.Position{Row: 1, Col: 0},
			game.Position{Row: 1, Col: 1},
		)

		result, err := Local(g, agentX, agentO).Run()
		require.NoError(t, err)
		require.Equal(t, playerX, result.Winner)

		g.Reset()
	}

	require.Equal(t, 2, playerX.Wins(), "win counters persist across games on the same engine")
}
