package game

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// ErrIllegalMove reports an attempt to mark an already-occupied cell. It is
// always surfaced to the caller; silently dropping a move would
// desynchronize the caller's view from the engine state.
var ErrIllegalMove = errors.New("cell already marked")

// SetupParameters fixes the board dimensions, the win length, both players
// and the starting choice for one game instance.
type SetupParameters struct {
	Rows      int
	Cols      int
	WinLength int
	PlayerX   *Player
	PlayerO   *Player
	Starting  StartingChoice
}

func (p SetupParameters) validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", p.Rows, p.Cols)
	}
	if p.WinLength < 1 {
		return fmt.Errorf("win length must be positive, got %d", p.WinLength)
	}
	if p.WinLength > max(p.Rows, p.Cols) {
		return fmt.Errorf("win length %d is not achievable on a %dx%d board", p.WinLength, p.Rows, p.Cols)
	}
	if p.PlayerX == nil || p.PlayerO == nil {
		return errors.New("both players must be set")
	}
	if p.PlayerX.Marking() != X || p.PlayerO.Marking() != O {
		return fmt.Errorf("players must own the X and O markings, got %v and %v",
			p.PlayerX.Marking(), p.PlayerO.Marking())
	}
	return nil
}

type Option func(*Game)

// WithRand injects the random source used for the StartRandom draw, so
// tests can fix the outcome.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// Game is the authoritative turn-taking state machine over a Grid. Turn
// order is always derived from the board contents, never tracked, so the
// searcher can explore hypothetical boards without parallel turn state.
type Game struct {
	rows       int
	cols       int
	winLength  int
	playerX    *Player
	playerO    *Player
	starting   Marking
	grid       *Grid
	directions []Direction
	rng        *rand.Rand
	draws      int
}

func NewGame(params SetupParameters, options ...Option) (*Game, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid game configuration: %w", err)
	}

	g := &Game{
		rows:       params.Rows,
		cols:       params.Cols,
		winLength:  params.WinLength,
		playerX:    params.PlayerX,
		playerO:    params.PlayerO,
		grid:       NewGrid(params.Rows, params.Cols),
		directions: searchDirections(),
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(g)
	}

	if err := g.SetStartingPlayer(params.Starting); err != nil {
		return nil, fmt.Errorf("invalid game configuration: %w", err)
	}
	return g, nil
}

// SetStartingPlayer resolves which marking opens the game. StartRandom
// draws uniformly between the two markings. Any value outside the
// enumerated choices is a configuration error.
func (g *Game) SetStartingPlayer(choice StartingChoice) error {
	switch choice {
	case StartWithX:
		g.starting = X
	case StartWithO:
		g.starting = O
	case StartRandom:
		if g.rng.Intn(2) == 0 {
			g.starting = X
		} else {
			g.starting = O
		}
	default:
		return fmt.Errorf("starting player choice %d is not a valid StartingChoice", choice)
	}
	return nil
}

// Grid returns the live board. Cells are read-only outside this package;
// Mark is the only write path.
func (g *Game) Grid() *Grid { return g.grid }

func (g *Game) WinLength() int { return g.winLength }

func (g *Game) StartingMarking() Marking { return g.starting }

// PlayerFor maps a marking to the player owning it.
func (g *Game) PlayerFor(m Marking) *Player {
	switch m {
	case X:
		return g.playerX
	case O:
		return g.playerO
	default:
		panic(fmt.Sprintf("no player owns marking %v", m))
	}
}

// Turn returns the marking whose move is next on the given grid. If the
// cell sum is zero both players have had an equal number of turns, so it is
// the starting player's turn; otherwise the starting player has had one
// extra move and it is the other player's turn.
func (g *Game) Turn(grid *Grid) Marking {
	if grid.Sum() != 0 {
		return g.starting.Other()
	}
	return g.starting
}

// Mark places the next mover's marking at pos on the given grid, which may
// be the live grid or a search copy. Marking a non-empty cell returns an
// error wrapping ErrIllegalMove; out-of-bounds positions panic.
func (g *Game) Mark(grid *Grid, pos Position) error {
	if grid.At(pos) != Empty {
		return fmt.Errorf("mark %v: %w", pos, ErrIllegalMove)
	}
	grid.set(pos, g.Turn(grid))
	return nil
}

// Play marks the live grid. Convenience wrapper for callers driving the
// actual game rather than a search copy.
func (g *Game) Play(pos Position) error {
	return g.Mark(g.grid, pos)
}

// WinningPlayer returns the player who made the last move on a board the
// caller has already established as won. It is a precondition-checked
// accessor, not a detector: calling it with won == false is a programming
// error and panics.
func (g *Game) WinningPlayer(won bool, grid *Grid) *Player {
	if !won {
		panic("WinningPlayer called on a non-winning board")
	}
	// The previous mover is the opposite of whoever moves next.
	return g.PlayerFor(g.Turn(grid).Other())
}

// Draw reports whether every cell on the grid is marked. This only detects
// full-board draws: a draw may in fact be guaranteed before the board
// fills, but earlier forced draws are intentionally not detected.
func (g *Game) Draw(grid *Grid) bool {
	return grid.Full()
}

// RecordDraw increments the session draw counter on a completed drawn game.
func (g *Game) RecordDraw() { g.draws++ }

// Draws returns the number of drawn games this session.
func (g *Game) Draws() int { return g.draws }

// Reset clears the live grid for a new game. Win and draw counters and the
// starting-player configuration survive.
func (g *Game) Reset() {
	g.grid.Reset()
}
