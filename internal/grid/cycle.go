package grid

// MaxCascadeCycles bounds ProcessCascade. Natural gameplay settles within a
// handful of cycles; the cap only guards against a pathological random
// source feeding an endless refill-match loop. It is a safety bound, not a
// correctness requirement.
const MaxCascadeCycles = 32

// CycleResult describes one atomic match cycle.
type CycleResult struct {
	Processed bool    // false when the board had no matches
	Removed   int     // cells cleared
	Dropped   int     // gems that changed position under gravity
	Spawned   int     // gems created by refill
	Matched   []Coord // the deduplicated matched cell set
}

// CascadeResult accumulates repeated match cycles.
type CascadeResult struct {
	Cycles       int
	TotalCleared int
}

// RemoveCells empties each given cell and returns the number of gems
// actually removed. Out-of-bounds or already-empty cells are skipped.
func (g *Grid) RemoveCells(cells []Coord) int {
	removed := 0
	for _, c := range cells {
		if !g.InBounds(c) {
			continue
		}
		if g.at(c.Row, c.Col) != nil {
			g.set(c.Row, c.Col, nil)
			removed++
		}
	}
	return removed
}

// DropCells compacts every column independently toward the highest row
// index, preserving relative order and leaving vacated cells at the top.
// Moved gems have their stored row updated in place. Returns the number
// of gems that changed position.
func (g *Grid) DropCells() int {
	moved := 0
	for col := 0; col < g.Cols; col++ {
		write := g.Rows - 1
		for row := g.Rows - 1; row >= 0; row-- {
			gem := g.at(row, col)
			if gem == nil {
				continue
			}
			if row != write {
				g.set(write, col, gem)
				g.set(row, col, nil)
				moved++
			}
			write--
		}
	}
	return moved
}

// RefillEmpties fills every empty cell with a new gem of uniformly random
// color and returns the spawn count. Unlike initial construction, spawned
// gems may legally create new matches; that is the cascade mechanism.
func (g *Grid) RefillEmpties() int {
	spawned := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.at(row, col) != nil {
				continue
			}
			g.set(row, col, &Gem{Color: GemColor(g.rng.Intn(g.Colors))})
			spawned++
		}
	}
	return spawned
}

// ProcessMatchCycle runs one atomic round: find matches, and if any exist,
// remove the unique matched cells, drop, and refill. A board with no
// matches is left untouched and reports Processed=false.
func (g *Grid) ProcessMatchCycle() CycleResult {
	matches := g.FindMatches()
	if len(matches) == 0 {
		return CycleResult{}
	}

	cells := UniqueCells(matches)
	removed := g.RemoveCells(cells)
	dropped := g.DropCells()
	spawned := g.RefillEmpties()

	return CycleResult{
		Processed: true,
		Removed:   removed,
		Dropped:   dropped,
		Spawned:   spawned,
		Matched:   cells,
	}
}

// ProcessCascade repeats ProcessMatchCycle until a cycle reports nothing
// processed, accumulating cycle and cleared-cell counts. Bounded by
// MaxCascadeCycles.
func (g *Grid) ProcessCascade() CascadeResult {
	var result CascadeResult
	for result.Cycles < MaxCascadeCycles {
		cycle := g.ProcessMatchCycle()
		if !cycle.Processed {
			break
		}
		result.Cycles++
		result.TotalCleared += cycle.Removed
	}
	return result
}
