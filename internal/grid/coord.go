package grid

import "fmt"

// Coord represents a cell position on the board.
// Row increases downward (gravity pulls toward increasing row).
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent returns true if the other coordinate is exactly one step
// away horizontally or vertically (no diagonals).
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}
