package grid

import (
	"math/rand"
	"testing"
)

func TestFindMatchesRuns(t *testing.T) {
	tests := []struct {
		name        string
		board       []string
		wantMatches int
		wantCells   int
	}{
		{
			name: "no runs",
			board: []string{
				"abab",
				"baba",
				"abab",
				"baba",
			},
			wantMatches: 0,
			wantCells:   0,
		},
		{
			name: "horizontal 3-run",
			board: []string{
				"aaab",
				"baba",
				"abab",
				"baba",
			},
			wantMatches: 1,
			wantCells:   3,
		},
		{
			name: "horizontal 4-run at right edge",
			board: []string{
				"abab",
				"cccc",
				"abab",
				"baba",
			},
			wantMatches: 1,
			wantCells:   4,
		},
		{
			name: "vertical 3-run",
			board: []string{
				"cbab",
				"caba",
				"cbab",
				"abca",
			},
			wantMatches: 1,
			wantCells:   3,
		},
		{
			name: "two separate runs",
			board: []string{
				"aaab",
				"babc",
				"abac",
				"babc",
			},
			wantMatches: 2,
			wantCells:   6,
		},
		{
			name: "runs of two are not matches",
			board: []string{
				"aabb",
				"bbaa",
				"aabb",
				"bbaa",
			},
			wantMatches: 0,
			wantCells:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewEmpty(4, 4, 4, rand.New(rand.NewSource(1)))
			fillBoard(t, g, tc.board)

			matches := g.FindMatches()
			if len(matches) != tc.wantMatches {
				t.Errorf("FindMatches returned %d records, expected %d", len(matches), tc.wantMatches)
			}
			if cells := UniqueCells(matches); len(cells) != tc.wantCells {
				t.Errorf("UniqueCells has %d cells, expected %d", len(cells), tc.wantCells)
			}
		})
	}
}

func TestFindMatchesCrossDeduplicates(t *testing.T) {
	// Horizontal and vertical 3-runs of 'a' crossing at (1,1): one set of
	// five unique cells, never five plus one double-counted center.
	g := NewEmpty(4, 4, 4, rand.New(rand.NewSource(1)))
	fillBoard(t, g, []string{
		"bacb",
		"aaab",
		"bacd",
		"cbdc",
	})

	matches := g.FindMatches()
	if len(matches) != 2 {
		t.Fatalf("expected 2 match records (one per orientation), got %d", len(matches))
	}

	var horizontal, vertical bool
	for _, m := range matches {
		switch m.Orientation {
		case Horizontal:
			horizontal = true
		case Vertical:
			vertical = true
		}
		if m.Length != 3 || len(m.Cells) != 3 {
			t.Errorf("expected runs of 3, got length %d with %d cells", m.Length, len(m.Cells))
		}
	}
	if !horizontal || !vertical {
		t.Error("expected one horizontal and one vertical record")
	}

	cells := UniqueCells(matches)
	if len(cells) != 5 {
		t.Errorf("cross should dedup to 5 unique cells, got %d", len(cells))
	}

	seen := make(map[Coord]int)
	for _, c := range cells {
		seen[c]++
		if seen[c] > 1 {
			t.Errorf("cell %v appears more than once in the unique set", c)
		}
	}
}

func TestMatchIgnoresEmptyCells(t *testing.T) {
	// A gap breaks a run even when colors on both sides agree.
	g := NewEmpty(1, 5, 4, rand.New(rand.NewSource(1)))
	fillBoard(t, g, []string{"aa.aa"})

	if matches := g.FindMatches(); len(matches) != 0 {
		t.Errorf("run across an empty cell should not match, got %d records", len(matches))
	}
}

func TestMatchCenter(t *testing.T) {
	m := Match{Cells: []Coord{C(2, 1), C(2, 2), C(2, 3)}, Length: 3, Orientation: Horizontal}
	if got := m.Center(); got != C(2, 2) {
		t.Errorf("Center() = %v, expected (2,2)", got)
	}

	m4 := Match{Cells: []Coord{C(0, 1), C(0, 2), C(0, 3), C(0, 4)}, Length: 4, Orientation: Horizontal}
	if got := m4.Center(); got != C(0, 3) {
		t.Errorf("Center() of 4-run = %v, expected (0,3)", got)
	}
}
