package game

import (
	"github.com/kseleznyov/gemcrush/internal/grid"
)

// CandidateMove is a legal swap and the number of cells it would clear
// immediately, before any cascade.
type CandidateMove struct {
	From, To grid.Coord
	Cleared  int
}

// FindCandidateMoves enumerates every adjacent swap that would commit,
// scored by the size of the immediate clear. Each unordered pair is tried
// once (right and down neighbors). The board is not mutated.
func FindCandidateMoves(b *grid.Grid) []CandidateMove {
	var moves []CandidateMove
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			from := grid.C(row, col)
			for _, to := range []grid.Coord{grid.C(row, col+1), grid.C(row+1, col)} {
				if !b.InBounds(to) {
					continue
				}
				if cleared := scoreSwap(b, from, to); cleared > 0 {
					moves = append(moves, CandidateMove{From: from, To: to, Cleared: cleared})
				}
			}
		}
	}
	return moves
}

// FindBestMove returns the candidate clearing the most cells, preferring
// the earliest in scan order on ties. ok is false when the board is stuck.
func FindBestMove(b *grid.Grid) (CandidateMove, bool) {
	moves := FindCandidateMoves(b)
	if len(moves) == 0 {
		return CandidateMove{}, false
	}
	best := moves[0]
	for _, m := range moves[1:] {
		if m.Cleared > best.Cleared {
			best = m
		}
	}
	return best, true
}

// scoreSwap simulates one swap on a clone and counts the cells the commit
// would clear: the matched union plus any power-up activation. Simulation
// stops before removal and refill so the shared random source is untouched.
func scoreSwap(b *grid.Grid, from, to grid.Coord) int {
	clone := b.Clone()
	if !clone.SwapPayloads(from, to) {
		return 0
	}

	cells := grid.UniqueCells(clone.FindMatches())
	for _, c := range []grid.Coord{from, to} {
		gem := clone.At(c)
		if gem == nil {
			continue
		}
		switch gem.Power {
		case grid.PowerArea:
			cells = unionCells(cells, areaCellsOn(clone, c, 1))
		case grid.PowerColor:
			cells = unionCells(cells, colorCellsOn(clone, gem.Color))
		}
	}
	return len(cells)
}

// areaCellsOn mirrors the area activation footprint on an arbitrary board.
func areaCellsOn(b *grid.Grid, c grid.Coord, radius int) []grid.Coord {
	var cells []grid.Coord
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			target := grid.C(c.Row+dr, c.Col+dc)
			if b.InBounds(target) && b.At(target) != nil {
				cells = append(cells, target)
			}
		}
	}
	return cells
}

// colorCellsOn mirrors the color activation footprint on an arbitrary board.
func colorCellsOn(b *grid.Grid, color grid.GemColor) []grid.Coord {
	var cells []grid.Coord
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			c := grid.C(row, col)
			if gem := b.At(c); gem != nil && gem.Color == color {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
