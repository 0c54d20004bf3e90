// Package grid implements the match-3 board engine: the gem grid, match
// detection, and the remove/drop/refill cycle. It is UI-agnostic and
// deterministic given a seeded random source.
package grid

// GemColor identifies one of the K gem colors on a board.
// Valid values are in [0, Grid.Colors).
type GemColor int

// PowerKind tags a gem with an optional power-up behavior.
type PowerKind int

const (
	// PowerNone marks an ordinary gem.
	PowerNone PowerKind = iota
	// PowerArea clears the 3x3 block centered on the gem when activated.
	PowerArea
	// PowerColor clears every gem of the same color when activated.
	PowerColor
)

// String returns the name of the power kind.
func (p PowerKind) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerArea:
		return "area"
	case PowerColor:
		return "color"
	default:
		return "unknown"
	}
}

// Gem is a single colored token occupying one grid cell.
// Row and Col always equal the gem's actual position in the grid;
// drop and refill relocate gems in place rather than copying them.
type Gem struct {
	Color GemColor
	Row   int
	Col   int
	Power PowerKind
}

// Pos returns the gem's current coordinate.
func (g *Gem) Pos() Coord {
	return Coord{Row: g.Row, Col: g.Col}
}
