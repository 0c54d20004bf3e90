package game

import (
	"github.com/kseleznyov/gemcrush/internal/grid"
)

// activateSwapped fires the power-ups carried by the two just-swapped gems
// and returns the deduplicated cell set they clear. Gems only activate by
// being swapped; a power-up gem caught in an ordinary match is simply
// removed with it.
func (s *Session) activateSwapped() []grid.Coord {
	var cells []grid.Coord
	for _, c := range []grid.Coord{s.from, s.to} {
		gem := s.board.At(c)
		if gem == nil || gem.Power == grid.PowerNone {
			continue
		}
		cells = unionCells(cells, s.activationCells(c, gem))
	}
	return cells
}

// activationCells dispatches on the power-up tag and returns the cells the
// activation clears, including the power-up gem's own cell.
func (s *Session) activationCells(c grid.Coord, gem *grid.Gem) []grid.Coord {
	switch gem.Power {
	case grid.PowerArea:
		return s.areaCells(c)
	case grid.PowerColor:
		return s.colorCells(gem.Color)
	default:
		return nil
	}
}

// areaCells returns the block of cells around c within the configured
// radius, clipped to the board.
func (s *Session) areaCells(c grid.Coord) []grid.Coord {
	radius := s.cfg.PowerUps.AreaRadius
	if radius < 1 {
		radius = 1
	}
	var cells []grid.Coord
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			target := grid.C(c.Row+dr, c.Col+dc)
			if s.board.InBounds(target) && s.board.At(target) != nil {
				cells = append(cells, target)
			}
		}
	}
	return cells
}

// colorCells returns every occupied cell holding the given color.
func (s *Session) colorCells(color grid.GemColor) []grid.Coord {
	var cells []grid.Coord
	for row := 0; row < s.board.Rows; row++ {
		for col := 0; col < s.board.Cols; col++ {
			c := grid.C(row, col)
			if gem := s.board.At(c); gem != nil && gem.Color == color {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// earnedPowerUps decides which power-up gems this cycle's matches earn.
// A run at the color threshold or longer earns a color-clear gem, a run at
// the area threshold earns an area-clear gem, both at the run's center cell
// carrying the run's color. Placement happens after the drop and only into
// cells the drop left empty.
func (s *Session) earnedPowerUps(matches []grid.Match) []pendingSpawn {
	var spawns []pendingSpawn
	seen := make(map[grid.Coord]bool)
	for _, m := range matches {
		var kind grid.PowerKind
		switch {
		case s.cfg.PowerUps.ColorThreshold > 0 && m.Length >= s.cfg.PowerUps.ColorThreshold:
			kind = grid.PowerColor
		case s.cfg.PowerUps.AreaThreshold > 0 && m.Length >= s.cfg.PowerUps.AreaThreshold:
			kind = grid.PowerArea
		default:
			continue
		}
		center := m.Center()
		if seen[center] {
			continue
		}
		seen[center] = true
		spawns = append(spawns, pendingSpawn{cell: center, color: m.Color, kind: kind})
	}
	return spawns
}

// cycleScore computes the points one cascade cycle awards: cleared cells
// times the per-gem value, scaled by the combo multiplier for the current
// chain, plus a flat bonus per cell a power-up cleared.
func (s *Session) cycleScore(cleared, powerCleared int) int {
	base := float64(cleared * s.cfg.Scoring.GemPoints)
	score := int(base * s.comboMultiplier())
	score += powerCleared * s.cfg.Scoring.PowerUpBonus
	return score
}

// comboMultiplier returns 1 + step*(chain-1), capped at the configured
// maximum. Chain 0 and 1 both score at the base rate.
func (s *Session) comboMultiplier() float64 {
	chain := s.chain
	if chain < 1 {
		chain = 1
	}
	mult := 1.0 + s.cfg.Scoring.ComboStep*float64(chain-1)
	if s.cfg.Scoring.ComboCap > 0 && mult > s.cfg.Scoring.ComboCap {
		mult = s.cfg.Scoring.ComboCap
	}
	return mult
}

// unionCells merges two cell sets, preserving first-seen order.
func unionCells(a, b []grid.Coord) []grid.Coord {
	if len(b) == 0 {
		return a
	}
	seen := make(map[grid.Coord]bool, len(a)+len(b))
	out := make([]grid.Coord, 0, len(a)+len(b))
	for _, set := range [2][]grid.Coord{a, b} {
		for _, c := range set {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
