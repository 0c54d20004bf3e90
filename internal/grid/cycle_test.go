package grid

import (
	"math/rand"
	"testing"
)

func TestRemoveCells(t *testing.T) {
	g := NewEmpty(3, 3, 4, rand.New(rand.NewSource(1)))
	fillBoard(t, g, []string{
		"abc",
		"bca",
		"cab",
	})

	removed := g.RemoveCells([]Coord{C(0, 0), C(1, 1), C(9, 9), C(0, 0)})
	if removed != 2 {
		t.Errorf("removed %d cells, expected 2 (out-of-bounds and repeats skipped)", removed)
	}
	if g.At(C(0, 0)) != nil || g.At(C(1, 1)) != nil {
		t.Error("removed cells should be empty")
	}
	if g.GemCount() != 7 {
		t.Errorf("gem count = %d, expected 7", g.GemCount())
	}
}

func TestDropCellsGravity(t *testing.T) {
	// Column sketch top to bottom: [a, empty, b, empty, empty].
	g := NewEmpty(5, 1, 4, rand.New(rand.NewSource(1)))
	fillBoard(t, g, []string{"a", ".", "b", ".", "."})

	moved := g.DropCells()
	if moved != 2 {
		t.Errorf("moved %d gems, expected 2", moved)
	}

	want := []string{".", ".", ".", "a", "b"}
	for row, cell := range want {
		gem := g.At(C(row, 0))
		if cell == "." {
			if gem != nil {
				t.Errorf("row %d should be empty, holds color %d", row, gem.Color)
			}
			continue
		}
		wantColor := GemColor(cell[0] - 'a')
		if gem == nil {
			t.Errorf("row %d should hold color %d, is empty", row, wantColor)
			continue
		}
		if gem.Color != wantColor {
			t.Errorf("row %d holds color %d, expected %d (relative order must be preserved)", row, gem.Color, wantColor)
		}
	}
	checkPositionInvariant(t, g)
}

func TestDropCellsFullColumnUnmoved(t *testing.T) {
	g := NewEmpty(3, 2, 4, rand.New(rand.NewSource(1)))
	fillBoard(t, g, []string{
		"ab",
		"ba",
		"ab",
	})

	if moved := g.DropCells(); moved != 0 {
		t.Errorf("full columns should not move, got %d moves", moved)
	}
}

func TestRefillEmpties(t *testing.T) {
	g := NewEmpty(4, 4, 4, rand.New(rand.NewSource(3)))
	fillBoard(t, g, []string{
		"....",
		"..ab",
		".abc",
		"abcd",
	})

	before := g.GemCount()
	spawned := g.RefillEmpties()

	if spawned != 16-before {
		t.Errorf("spawned %d gems, expected %d", spawned, 16-before)
	}
	if g.GemCount() != 16 {
		t.Errorf("grid should be full after refill, has %d gems", g.GemCount())
	}
	checkPositionInvariant(t, g)

	for _, c := range []Coord{C(0, 0), C(0, 3), C(1, 1)} {
		gem := g.At(c)
		if gem == nil {
			t.Errorf("cell %v should be filled", c)
			continue
		}
		if gem.Color < 0 || int(gem.Color) >= g.Colors {
			t.Errorf("cell %v spawned out-of-range color %d", c, gem.Color)
		}
	}
}

func TestProcessMatchCycleNoMatchesIsNoOp(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := New(DefaultRows, DefaultCols, DefaultColors, rand.New(rand.NewSource(seed)))
		snapshot := g.Clone()

		result := g.ProcessMatchCycle()

		if result.Processed {
			t.Errorf("seed %d: cycle on a match-free grid reported processed", seed)
		}
		if result.Removed != 0 || result.Dropped != 0 || result.Spawned != 0 {
			t.Errorf("seed %d: no-op cycle reported counts %+v", seed, result)
		}
		if !g.Equal(snapshot) {
			t.Errorf("seed %d: no-op cycle mutated the grid", seed)
		}
	}
}

func TestProcessMatchCycleBasicMatch(t *testing.T) {
	// Row 0 holds an exact 3-run; the rest of the board is match-free.
	g := NewEmpty(4, 4, 4, rand.New(rand.NewSource(5)))
	fillBoard(t, g, []string{
		"aaab",
		"babd",
		"abab",
		"baba",
	})

	result := g.ProcessMatchCycle()

	if !result.Processed {
		t.Fatal("cycle should process the 3-run")
	}
	if result.Removed != 3 {
		t.Errorf("removed %d cells, expected exactly 3", result.Removed)
	}
	if len(result.Matched) != 3 {
		t.Errorf("matched set has %d cells, expected 3", len(result.Matched))
	}
	for _, c := range result.Matched {
		if c.Row != 0 || c.Col > 2 {
			t.Errorf("unexpected matched cell %v, run should cover row 0 cols 0..2", c)
		}
	}

	// Conservation: refill restores exactly what removal took out.
	if result.Spawned != result.Removed {
		t.Errorf("spawned %d != removed %d", result.Spawned, result.Removed)
	}
	if g.GemCount() != 16 {
		t.Errorf("grid should be full after the cycle, has %d gems", g.GemCount())
	}
	checkPositionInvariant(t, g)
}

func TestProcessCascadeTerminates(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g := New(DefaultRows, DefaultCols, DefaultColors, rand.New(rand.NewSource(seed)))

		// Force some matches by rolling a few cells to a single color.
		for col := 0; col < 5; col++ {
			g.At(C(4, col)).Color = 0
		}

		result := g.ProcessCascade()

		if result.Cycles > MaxCascadeCycles {
			t.Errorf("seed %d: cascade ran %d cycles, cap is %d", seed, result.Cycles, MaxCascadeCycles)
		}
		if result.TotalCleared < 0 {
			t.Errorf("seed %d: negative total cleared %d", seed, result.TotalCleared)
		}
		if result.Cycles < 1 {
			t.Errorf("seed %d: forced 5-run should yield at least one cycle", seed)
		}
		if g.GemCount() != DefaultRows*DefaultCols {
			t.Errorf("seed %d: cascade left %d gems, expected full grid", seed, g.GemCount())
		}
		if result.Cycles < MaxCascadeCycles && g.HasMatches() {
			t.Errorf("seed %d: cascade settled but matches remain", seed)
		}
		checkPositionInvariant(t, g)
	}
}
