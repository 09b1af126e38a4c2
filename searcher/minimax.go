package searcher

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"mnk/experiments/metrics"
	"mnk/game"
)

// ErrTerminalBoard reports a search request on a board that is already won
// or drawn. Callers are expected to check terminality before asking for a
// move.
var ErrTerminalBoard = errors.New("cannot search a terminal board")

type Option func(*Minimax)

// WithRand injects the random source used to shuffle candidate moves, so
// tests can fix the ordering.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithoutPruning disables the alpha-beta cutoff, forcing exhaustive
// search. Pruning never changes the result, only the work done, so this
// exists to verify equivalence and measure the saving.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithMetrics attaches a collector recording nodes, cutoffs and duration
// per search.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// Minimax computes the game-theoretically optimal move for a designated
// maximising player by depth-unbounded recursive search to terminal states,
// pruned with alpha-beta cutoffs. It is a pure state-space search: every
// recursion level works on a private grid copy and the input grid is never
// mutated.
type Minimax struct {
	rules      *game.Game
	maximising *game.Player
	rng        *rand.Rand
	pruning    bool
	metrics    metrics.Collector
}

func NewMinimax(rules *game.Game, maximising *game.Player, options ...Option) *Minimax {
	m := &Minimax{
		rules:      rules,
		maximising: maximising,
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		pruning:    true,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the optimal next move on the given board together with
// its score from the maximising player's perspective. The board must be
// non-terminal; since no last-move index exists at the root, terminality is
// established with the whole-board scan. Among equally optimal moves the
// one returned depends on the shuffled candidate order.
func (m *Minimax) FindMove(grid *game.Grid) (game.Position, int, metrics.SearchMetric, error) {
	if m.rules.HasWinAnywhere(grid) || m.rules.Draw(grid) {
		return game.Position{}, 0, metrics.SearchMetric{}, ErrTerminalBoard
	}

	m.metrics.Start(m.pruning)

	maximising := m.rules.Turn(grid) == m.maximising.Marking()
	alpha, beta := math.MinInt, math.MaxInt
	var bestMove game.Position
	bestScore := math.MinInt
	if !maximising {
		bestScore = math.MaxInt
	}

	for _, candidate := range m.candidates(grid) {
		next := grid.Copy()
		if err := m.rules.Mark(next, candidate); err != nil {
			panic(fmt.Sprintf("marking an empty candidate cell failed: %v", err))
		}
		score := m.search(next, candidate, 1, alpha, beta)
		if maximising {
			if score > bestScore {
				bestScore = score
				bestMove = candidate
			}
			alpha = max(alpha, score)
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = candidate
			}
			beta = min(beta, score)
		}
	}

	return bestMove, bestScore, m.metrics.Complete(), nil
}

// search scores the board reached by playing lastPlayed, recursing until a
// terminal state. Whose turn it is, and therefore whether this node
// maximises or minimises, is derived from the board contents.
func (m *Minimax) search(grid *game.Grid, lastPlayed game.Position, depth int, alpha, beta int) int {
	m.metrics.AddNode()

	won := m.rules.HasWin(grid, lastPlayed)
	if won || m.rules.Draw(grid) {
		return m.evaluate(grid, won, depth)
	}

	if m.rules.Turn(grid) == m.maximising.Marking() {
		bestScore := math.MinInt
		for _, candidate := range m.candidates(grid) {
			next := grid.Copy()
			if err := m.rules.Mark(next, candidate); err != nil {
				panic(fmt.Sprintf("marking an empty candidate cell failed: %v", err))
			}
			score := m.search(next, candidate, depth+1, alpha, beta)
			bestScore = max(bestScore, score)
			alpha = max(alpha, score)
			if m.pruning && beta <= alpha {
				// The minimiser already has a better alternative
				// elsewhere; further siblings cannot matter.
				m.metrics.AddCutoff()
				break
			}
		}
		return bestScore
	}

	bestScore := math.MaxInt
	for _, candidate := range m.candidates(grid) {
		next := grid.Copy()
		if err := m.rules.Mark(next, candidate); err != nil {
			panic(fmt.Sprintf("marking an empty candidate cell failed: %v", err))
		}
		score := m.search(next, candidate, depth+1, alpha, beta)
		bestScore = min(bestScore, score)
		beta = min(beta, score)
		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return bestScore
}

// evaluate scores a terminal board from the maximising player's
// perspective, adjusted by depth. There is no heuristic for non-terminal
// positions: calling this on one is a programming error and panics.
func (m *Minimax) evaluate(grid *game.Grid, won bool, depth int) int {
	if won {
		if m.rules.WinningPlayer(won, grid) == m.maximising {
			return MaxWin - depth
		}
		return MaxLoss + depth
	}
	if m.rules.Draw(grid) {
		return Draw
	}
	panic("evaluate called on a non-terminal board")
}

// candidates returns the empty cells in a random order. The shuffle varies
// play across repeated identical positions and removes deterministic bias;
// it is a design choice, not an optimization.
func (m *Minimax) candidates(grid *game.Grid) []game.Position {
	cells := grid.EmptyCells()
	m.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}
