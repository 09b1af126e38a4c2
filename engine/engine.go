package engine

import (
	"mnk/experiments/metrics"
	"mnk/game"
	"mnk/searcher"
)

// Agent produces the next move for whichever marking is to move on the
// given board.
type Agent interface {
	FindMove(grid *game.Grid) (game.Position, metrics.SearchMetric, error)
}

// MinimaxAgent adapts a searcher.Minimax to the Agent interface.
type MinimaxAgent struct {
	searcher *searcher.Minimax
}

func NewMinimaxAgent(s *searcher.Minimax) *MinimaxAgent {
	return &MinimaxAgent{searcher: s}
}

func (a *MinimaxAgent) FindMove(grid *game.Grid) (game.Position, metrics.SearchMetric, error) {
	move, _, metric, err := a.searcher.FindMove(grid)
	return move, metric, err
}

// AgentFunc adapts a plain move function (a UI input handler, a scripted
// test opponent) to the Agent interface.
type AgentFunc func(grid *game.Grid) (game.Position, error)

func (f AgentFunc) FindMove(grid *game.Grid) (game.Position, metrics.SearchMetric, error) {
	move, err := f(grid)
	return move, metrics.SearchMetric{}, err
}
