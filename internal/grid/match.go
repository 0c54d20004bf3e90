package grid

// Orientation distinguishes horizontal from vertical matches.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the name of the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Match is a transient record of a contiguous run of 3+ same-colored gems.
// It is produced by FindMatches and consumed immediately by removal logic.
type Match struct {
	Color       GemColor
	Cells       []Coord
	Length      int
	Orientation Orientation
}

// Center returns the middle cell of the run (right-of-center for even runs).
func (m Match) Center() Coord {
	return m.Cells[len(m.Cells)/2]
}

// FindMatches scans every row left-to-right and every column top-to-bottom
// with single-pass run-length detection and returns all runs of length 3+.
// A cross-shaped match appears as two records sharing one cell; use
// UniqueCells to collapse records into the deduplicated cell set.
func (g *Grid) FindMatches() []Match {
	var matches []Match

	for row := 0; row < g.Rows; row++ {
		matches = g.scanLine(matches, row, 0, 0, 1, g.Cols, Horizontal)
	}
	for col := 0; col < g.Cols; col++ {
		matches = g.scanLine(matches, 0, col, 1, 0, g.Rows, Vertical)
	}
	return matches
}

// scanLine walks one row or column from (row, col) stepping by (dr, dc),
// emitting a match whenever a run of 3+ same-colored gems ends, either at
// a color change, an empty cell, or the board edge.
func (g *Grid) scanLine(matches []Match, row, col, dr, dc, length int, o Orientation) []Match {
	runStart := 0
	runLen := 0
	var runColor GemColor

	flush := func(endIdx int) {
		if runLen < 3 {
			return
		}
		cells := make([]Coord, 0, runLen)
		for i := runStart; i < endIdx; i++ {
			cells = append(cells, C(row+i*dr, col+i*dc))
		}
		matches = append(matches, Match{
			Color:       runColor,
			Cells:       cells,
			Length:      runLen,
			Orientation: o,
		})
	}

	for i := 0; i < length; i++ {
		gem := g.at(row+i*dr, col+i*dc)
		switch {
		case gem == nil:
			flush(i)
			runLen = 0
		case runLen > 0 && gem.Color == runColor:
			runLen++
		default:
			flush(i)
			runStart = i
			runLen = 1
			runColor = gem.Color
		}
	}
	flush(length)

	return matches
}

// UniqueCells collapses match records into a deduplicated cell set keyed
// by coordinate, in stable scan order. Overlapping horizontal and vertical
// runs contribute each shared cell once.
func UniqueCells(matches []Match) []Coord {
	seen := make(map[Coord]bool)
	var cells []Coord
	for _, m := range matches {
		for _, c := range m.Cells {
			if !seen[c] {
				seen[c] = true
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// HasMatches reports whether any run of 3+ exists on the board.
func (g *Grid) HasMatches() bool {
	return len(g.FindMatches()) > 0
}
