package game

import "fmt"

// Marking is the symbol a player places in a cell. The numeric values are
// chosen so that summing cells yields turn parity and a filled line of k
// identical markings sums to ±k.
type Marking int8

const (
	Empty Marking = 0
	X     Marking = 1
	O     Marking = -1
)

// Other returns the opposing marking. Other(Empty) is Empty.
func (m Marking) Other() Marking {
	return -m
}

func (m Marking) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	case Empty:
		return "."
	default:
		return fmt.Sprintf("Marking(%d)", int8(m))
	}
}

// Position is a (row, col) cell index on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// StartingChoice selects which marking opens the game. The values mirror
// the markings so a concrete choice converts directly.
type StartingChoice int8

const (
	StartWithX  StartingChoice = 1
	StartRandom StartingChoice = 0
	StartWithO  StartingChoice = -1
)

// Direction is a unit step along one of the four canonical line
// orientations in 2D. Conceptually this extends to higher dimensions, but
// only the 2D direction set is generated.
type Direction struct {
	DRow int
	DCol int
}

// searchDirections returns the line directions the win detector scans, in
// the fixed tie-break order: row, column, south-east diagonal, north-east
// diagonal. Derived once per game.
func searchDirections() []Direction {
	return []Direction{
		{DRow: 1, DCol: 0},  // row
		{DRow: 0, DCol: 1},  // column
		{DRow: 1, DCol: 1},  // south-east
		{DRow: 1, DCol: -1}, // north-east
	}
}
