package grid

import "math/rand"

// DefaultRows and DefaultCols are the standard board dimensions.
const (
	DefaultRows   = 10
	DefaultCols   = 10
	DefaultColors = 4
)

// Grid is a fixed-size board of cells, each either empty or holding one gem.
// Cells are stored in row-major order; nil means empty. The grid owns its
// gems exclusively: callers mutate board state only through Grid operations.
type Grid struct {
	Rows   int
	Cols   int
	Colors int

	cells []*Gem
	rng   *rand.Rand
}

// New creates a fully populated board with no pre-existing matches.
// Each cell's color is drawn uniformly from [0, colors), rejecting any
// choice that would complete a run of three with the already-placed left
// or up neighbors, so the result is match-free by construction.
func New(rows, cols, colors int, rng *rand.Rand) *Grid {
	g := NewEmpty(rows, cols, colors, rng)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[row*cols+col] = &Gem{
				Color: g.rollSafeColor(row, col),
				Row:   row,
				Col:   col,
			}
		}
	}
	return g
}

// NewEmpty creates a board with every cell empty.
func NewEmpty(rows, cols, colors int, rng *rand.Rand) *Grid {
	if rows <= 0 || cols <= 0 {
		rows, cols = DefaultRows, DefaultCols
	}
	if colors < 3 {
		colors = DefaultColors
	}
	return &Grid{
		Rows:   rows,
		Cols:   cols,
		Colors: colors,
		cells:  make([]*Gem, rows*cols),
		rng:    rng,
	}
}

// rollSafeColor picks a random color that does not complete a horizontal or
// vertical run of three with the two cells to the left / above (row, col).
// Starting the scan at a random color keeps the choice uniform over the
// safe set; with three or more colors a safe choice always exists.
func (g *Grid) rollSafeColor(row, col int) GemColor {
	start := GemColor(g.rng.Intn(g.Colors))
	for i := 0; i < g.Colors; i++ {
		color := (start + GemColor(i)) % GemColor(g.Colors)
		if !g.wouldRun(row, col, color) {
			return color
		}
	}
	return start
}

// wouldRun reports whether placing color at (row, col) completes a run of
// three with already-placed neighbors to the left or above.
func (g *Grid) wouldRun(row, col int, color GemColor) bool {
	if col >= 2 {
		left1 := g.at(row, col-1)
		left2 := g.at(row, col-2)
		if left1 != nil && left2 != nil && left1.Color == color && left2.Color == color {
			return true
		}
	}
	if row >= 2 {
		up1 := g.at(row-1, col)
		up2 := g.at(row-2, col)
		if up1 != nil && up2 != nil && up1.Color == color && up2.Color == color {
			return true
		}
	}
	return false
}

// InBounds returns true if the coordinate lies on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the gem at the given coordinate, or nil if the cell is
// empty or the coordinate is out of bounds.
func (g *Grid) At(c Coord) *Gem {
	if !g.InBounds(c) {
		return nil
	}
	return g.at(c.Row, c.Col)
}

func (g *Grid) at(row, col int) *Gem {
	return g.cells[row*g.Cols+col]
}

func (g *Grid) set(row, col int, gem *Gem) {
	g.cells[row*g.Cols+col] = gem
	if gem != nil {
		gem.Row = row
		gem.Col = col
	}
}

// PlaceGem puts a new gem with the given color and power into an empty
// in-bounds cell. Returns false without mutating if the cell is occupied
// or out of bounds.
func (g *Grid) PlaceGem(c Coord, color GemColor, power PowerKind) bool {
	if !g.InBounds(c) || g.At(c) != nil {
		return false
	}
	g.set(c.Row, c.Col, &Gem{Color: color, Power: power})
	return true
}

// SwapPayloads exchanges the color and power of the gems in two cells.
// The gems stay in their slots, which keeps the row/col invariant intact
// for free. Returns false without mutating if either cell is empty or
// out of bounds.
func (g *Grid) SwapPayloads(a, b Coord) bool {
	ga, gb := g.At(a), g.At(b)
	if ga == nil || gb == nil {
		return false
	}
	ga.Color, gb.Color = gb.Color, ga.Color
	ga.Power, gb.Power = gb.Power, ga.Power
	return true
}

// GemCount returns the number of occupied cells.
func (g *Grid) GemCount() int {
	count := 0
	for _, gem := range g.cells {
		if gem != nil {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board sharing the same random source.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Colors: g.Colors,
		cells:  make([]*Gem, len(g.cells)),
		rng:    g.rng,
	}
	for i, gem := range g.cells {
		if gem != nil {
			copied := *gem
			clone.cells[i] = &copied
		}
	}
	return clone
}

// Equal returns true if two boards have identical dimensions and cell
// contents (color, power, and emptiness per cell).
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, gem := range g.cells {
		o := other.cells[i]
		if (gem == nil) != (o == nil) {
			return false
		}
		if gem != nil && (gem.Color != o.Color || gem.Power != o.Power) {
			return false
		}
	}
	return true
}
