package game

import (
	"fmt"
	"strings"
)

// Grid is an m×n board of markings. Cells only ever hold Empty, X or O; the
// only write path is Game.Mark, so a cell once marked is never re-marked or
// cleared except by Reset.
type Grid struct {
	rows  int
	cols  int
	cells []Marking
}

func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Marking, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the marking at p. Out-of-bounds access is a caller bug and
// panics.
func (g *Grid) At(p Position) Marking {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid access out of bounds: %v on %dx%d board", p, g.rows, g.cols))
	}
	return g.cells[p.Row*g.cols+p.Col]
}

func (g *Grid) set(p Position, m Marking) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid access out of bounds: %v on %dx%d board", p, g.rows, g.cols))
	}
	g.cells[p.Row*g.cols+p.Col] = m
}

// Sum adds every cell value. A nonzero sum means the starting player has
// had one extra move; turn order is derived from this, never tracked.
func (g *Grid) Sum() int {
	sum := 0
	for _, c := range g.cells {
		sum += int(c)
	}
	return sum
}

// Full reports whether every cell is marked.
func (g *Grid) Full() bool {
	for _, c := range g.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all unmarked cells in row-major
// order.
func (g *Grid) EmptyCells() []Position {
	cells := make([]Position, 0, len(g.cells))
	for i, c := range g.cells {
		if c == Empty {
			cells = append(cells, Position{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return cells
}

// Copy returns an independent copy of the grid. The searcher mutates copies
// only; the live grid is never handed to search internals.
func (g *Grid) Copy() *Grid {
	cells := make([]Marking, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Reset clears every cell back to Empty.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

func (g *Grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.cells[row*g.cols+col].String())
		}
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
