package grid

// maxShuffleAttempts bounds Reshuffle's permutation search before it falls
// back to regenerating colors from scratch.
const maxShuffleAttempts = 64

// HasAnyPossibleMove reports whether some adjacent swap anywhere on the
// board would produce a match. A gem carrying a power-up always counts as
// a legal move, since swapping it activates the power regardless of runs.
func (g *Grid) HasAnyPossibleMove() bool {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			gem := g.at(row, col)
			if gem != nil && gem.Power != PowerNone {
				return true
			}
			if col+1 < g.Cols && g.swapWouldMatch(C(row, col), C(row, col+1)) {
				return true
			}
			if row+1 < g.Rows && g.swapWouldMatch(C(row, col), C(row+1, col)) {
				return true
			}
		}
	}
	return false
}

// swapWouldMatch trial-swaps two cells, checks for matches, and restores
// the board before returning.
func (g *Grid) swapWouldMatch(a, b Coord) bool {
	if !g.SwapPayloads(a, b) {
		return false
	}
	matched := g.matchAround(a) || g.matchAround(b)
	g.SwapPayloads(a, b)
	return matched
}

// matchAround reports whether the cell participates in a run of 3+ along
// its row or column. Cheaper than a full board scan for trial swaps.
func (g *Grid) matchAround(c Coord) bool {
	gem := g.At(c)
	if gem == nil {
		return false
	}
	return g.runLengthThrough(c, 0, 1) >= 3 || g.runLengthThrough(c, 1, 0) >= 3
}

// runLengthThrough counts the contiguous same-color run passing through c
// along direction (dr, dc).
func (g *Grid) runLengthThrough(c Coord, dr, dc int) int {
	color := g.At(c).Color
	length := 1
	for r, cl := c.Row-dr, c.Col-dc; ; r, cl = r-dr, cl-dc {
		gem := g.At(C(r, cl))
		if gem == nil || gem.Color != color {
			break
		}
		length++
	}
	for r, cl := c.Row+dr, c.Col+dc; ; r, cl = r+dr, cl+dc {
		gem := g.At(C(r, cl))
		if gem == nil || gem.Color != color {
			break
		}
		length++
	}
	return length
}

// Reshuffle permutes the existing gem payloads across the board until the
// result has no immediate matches and at least one legal move. Gem counts
// per color are preserved when a permutation succeeds; if no acceptable
// permutation is found within the attempt budget, the board is regenerated
// with fresh match-free colors instead.
func (g *Grid) Reshuffle() {
	payloads := make([]Gem, 0, len(g.cells))
	for _, gem := range g.cells {
		if gem != nil {
			payloads = append(payloads, Gem{Color: gem.Color, Power: gem.Power})
		}
	}

	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		g.rng.Shuffle(len(payloads), func(i, j int) {
			payloads[i], payloads[j] = payloads[j], payloads[i]
		})
		g.applyPayloads(payloads)
		if !g.HasMatches() && g.HasAnyPossibleMove() {
			return
		}
	}

	// Permutations kept colliding; rebuild colors match-free and retry the
	// move check a few times with fresh rolls.
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		g.regenerateColors()
		if g.HasAnyPossibleMove() {
			return
		}
	}
}

// applyPayloads writes the payload slice back over occupied cells in scan
// order. Positions and emptiness are untouched.
func (g *Grid) applyPayloads(payloads []Gem) {
	i := 0
	for _, gem := range g.cells {
		if gem == nil {
			continue
		}
		gem.Color = payloads[i].Color
		gem.Power = payloads[i].Power
		i++
	}
}

// regenerateColors rerolls every occupied cell's color with the same
// rejection rule as initial construction. Powers are preserved.
func (g *Grid) regenerateColors() {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			gem := g.at(row, col)
			if gem == nil {
				continue
			}
			gem.Color = g.rollSafeColor(row, col)
		}
	}
}
