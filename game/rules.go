package game

// Win detection. The primary scan is locality-restricted to the line
// through the last-played cell: O(winLength) per direction regardless of
// board size, which matters because the searcher checks once per explored
// node. A whole-board scan exists as a fallback for boards with no known
// last move.

// HasWin reports whether the line through lastPlayed contains winLength
// consecutive identical markings. This is the cheap hot-path check.
func (g *Game) HasWin(grid *Grid, lastPlayed Position) bool {
	won, _ := g.winScan(grid, lastPlayed, false)
	return won
}

// WinningLine additionally returns the winLength cells forming the first
// winning window found, reconstructed from the same index bookkeeping used
// to compute the window sums.
func (g *Game) WinningLine(grid *Grid, lastPlayed Position) (bool, []Position) {
	return g.winScan(grid, lastPlayed, true)
}

// winScan checks each search direction in the fixed order row, column,
// south-east, north-east and returns on the first winning window. The span
// searched runs from winLength-1 steps before lastPlayed to winLength-1
// steps after, clipped to the board; a width-winLength sliding window sum
// over that span hits ±winLength exactly when all cells in the window share
// one nonzero marking.
func (g *Game) winScan(grid *Grid, lastPlayed Position, wantLocation bool) (bool, []Position) {
	k := g.winLength
	span := make([]Position, 0, 2*k-1)

	for _, dir := range g.directions {
		span = span[:0]
		for offset := -(k - 1); offset <= k-1; offset++ {
			p := Position{
				Row: lastPlayed.Row + offset*dir.DRow,
				Col: lastPlayed.Col + offset*dir.DCol,
			}
			if grid.InBounds(p) {
				span = append(span, p)
			}
		}
		if len(span) < k {
			continue
		}

		sum := 0
		for i := 0; i < k; i++ {
			sum += int(grid.At(span[i]))
		}
		for start := 0; ; start++ {
			if sum == k || sum == -k {
				if !wantLocation {
					return true, nil
				}
				line := make([]Position, k)
				copy(line, span[start:start+k])
				return true, line
			}
			if start+k >= len(span) {
				break
			}
			sum += int(grid.At(span[start+k])) - int(grid.At(span[start]))
		}
	}
	return false, nil
}

// HasWinAnywhere scans every row, column and diagonal of length at least
// winLength. O(rows·cols) per call, so it is only used when no last-move
// index is available (e.g. validating the board handed to the searcher),
// never inside the search hot path.
func (g *Game) HasWinAnywhere(grid *Grid) bool {
	for _, line := range wholeBoardLines(grid, g.winLength) {
		if hasStreak(line, g.winLength) {
			return true
		}
	}
	return false
}

// hasStreak reports whether line contains k consecutive identical nonzero
// markings, via the same sliding window sum as the local scan.
func hasStreak(line []Marking, k int) bool {
	if len(line) < k {
		return false
	}
	sum := 0
	for i := 0; i < k; i++ {
		sum += int(line[i])
	}
	for start := 0; ; start++ {
		if sum == k || sum == -k {
			return true
		}
		if start+k >= len(line) {
			break
		}
		sum += int(line[start+k]) - int(line[start])
	}
	return false
}

// wholeBoardLines extracts every row, every column, and the south-east and
// north-east diagonals long enough to hold a winning streak. The north-east
// diagonals are the south-east diagonals of the horizontally mirrored
// board.
func wholeBoardLines(grid *Grid, k int) [][]Marking {
	rows, cols := grid.Rows(), grid.Cols()
	lines := make([][]Marking, 0, rows+cols+2*(rows+cols))

	for r := 0; r < rows; r++ {
		line := make([]Marking, cols)
		for c := 0; c < cols; c++ {
			line[c] = grid.At(Position{Row: r, Col: c})
		}
		lines = append(lines, line)
	}

	for c := 0; c < cols; c++ {
		line := make([]Marking, rows)
		for r := 0; r < rows; r++ {
			line[r] = grid.At(Position{Row: r, Col: c})
		}
		lines = append(lines, line)
	}

	// Diagonal offsets outside this range yield diagonals shorter than k.
	for offset := -(rows - k); offset <= cols-k; offset++ {
		var southEast, northEast []Marking
		for r := 0; r < rows; r++ {
			c := r + offset
			if c < 0 || c >= cols {
				continue
			}
			southEast = append(southEast, grid.At(Position{Row: r, Col: c}))
			northEast = append(northEast, grid.At(Position{Row: r, Col: cols - 1 - c}))
		}
		lines = append(lines, southEast, northEast)
	}

	return lines
}
