package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"mnk/experiments/metrics"
	"mnk/game"
)

// Engine drives one game on the live grid: derive whose turn it is, ask
// that player's agent for a move, play it, and stop on a win or a draw.
// The live grid is mutated only here, through Game.Play, on the calling
// goroutine.
type Engine struct {
	Game   *game.Game
	agents map[game.Marking]Agent
}

// Local wires a game to one agent per marking. Missing pieces are a wiring
// bug, not a runtime condition, and panic.
func Local(g *game.Game, agentX, agentO Agent) *Engine {
	if g == nil {
		panic("engine requires a game")
	}
	if agentX == nil || agentO == nil {
		panic("engine requires an agent for each marking")
	}
	return &Engine{
		Game: g,
		agents: map[game.Marking]Agent{
			game.X: agentX,
			game.O: agentO,
		},
	}
}

// Result describes a finished game.
type Result struct {
	Winner *game.Player // nil for a draw
	Line   []game.Position
	Moves  []metrics.MoveMetric
}

// Run plays the current game to completion and updates the winner's win
// counter, or the game's draw counter. The caller resets the game between
// runs.
func (e *Engine) Run() (Result, error) {
	var result Result
	grid := e.Game.Grid()

	log.Info().
		Stringer("starting", e.Game.StartingMarking()).
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Int("win_length", e.Game.WinLength()).
		Msg("game started")

	for step := 1; ; step++ {
		turn := e.Game.Turn(grid)
		move, metric, err := e.agents[turn].FindMove(grid)
		if err != nil {
			return Result{}, fmt.Errorf("agent %v found no move at step %d: %w", turn, step, err)
		}
		if err := e.Game.Play(move); err != nil {
			return Result{}, fmt.Errorf("agent %v played an illegal move at step %d: %w", turn, step, err)
		}

		log.Debug().
			Int("step", step).
			Stringer("player", turn).
			Stringer("move", move).
			Int("nodes", metric.Nodes).
			Int("cutoffs", metric.Cutoffs).
			Msg("move played")

		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         step,
			Marking:      turn,
			SearchMetric: metric,
		})

		if won, line := e.Game.WinningLine(grid, move); won {
			winner := e.Game.WinningPlayer(won, grid)
			winner.RecordWin()
			result.Winner = winner
			result.Line = line
			log.Info().Str("winner", winner.Name()).Int("moves", step).Msg("game over")
			return result, nil
		}
		if e.Game.Draw(grid) {
			e.Game.RecordDraw()
			log.Info().Int("moves", step).Msg("game drawn")
			return result, nil
		}
	}
}
