package game

import (
	"math/rand"
	"testing"

	"github.com/kseleznyov/gemcrush/internal/config"
	"github.com/kseleznyov/gemcrush/internal/grid"
)

// buildBoard constructs a board from rows of letters: 'a'..'f' are colors
// 0..5, '.' is an empty cell.
func buildBoard(t *testing.T, rows []string, colors int, seed int64) *grid.Grid {
	t.Helper()
	g := grid.NewEmpty(len(rows), len(rows[0]), colors, rand.New(rand.NewSource(seed)))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			if !g.PlaceGem(grid.C(r, c), grid.GemColor(ch-'a'), grid.PowerNone) {
				t.Fatalf("failed to place gem at (%d,%d)", r, c)
			}
		}
	}
	return g
}

// newTestSession wires a hand-built board into a session so moves resolve
// against a known layout.
func newTestSession(t *testing.T, rows []string, colors int) *Session {
	t.Helper()
	cfg := config.DefaultGemsConfig()
	cfg.Board.Rows = len(rows)
	cfg.Board.Cols = len(rows[0])
	cfg.Board.Colors = colors
	s := NewSession(cfg, 7)
	s.board = buildBoard(t, rows, colors, 7)
	return s
}

func TestSwapReversibility(t *testing.T) {
	// Swapping (0,0) and (0,1) yields only 2-runs, so the move must revert.
	s := newTestSession(t, []string{
		"abab",
		"baba",
		"abab",
		"baba",
	}, 4)

	before := s.board.Clone()
	movesBefore := s.MovesLeft()

	result, err := s.AttemptSwap(grid.C(0, 0), grid.C(0, 1))
	if err != nil {
		t.Fatalf("AttemptSwap returned error: %v", err)
	}

	if result.Committed {
		t.Error("matchless swap should not commit")
	}
	if result.ScoreDelta != 0 {
		t.Errorf("matchless swap ScoreDelta = %d, want 0", result.ScoreDelta)
	}
	if !s.board.Equal(before) {
		t.Error("reverted swap should leave the board identical to its pre-swap state")
	}
	if s.MovesLeft() != movesBefore {
		t.Errorf("reverted swap consumed a move: %d -> %d", movesBefore, s.MovesLeft())
	}
	if s.Score() != 0 {
		t.Errorf("reverted swap changed score to %d", s.Score())
	}
}

func TestSwapValidation(t *testing.T) {
	tests := []struct {
		name string
		a, b grid.Coord
		want error
	}{
		{"out of bounds first", grid.C(-1, 0), grid.C(0, 0), ErrOutOfBounds},
		{"out of bounds second", grid.C(0, 0), grid.C(0, 4), ErrOutOfBounds},
		{"same cell", grid.C(1, 1), grid.C(1, 1), ErrNoOpSwap},
		{"diagonal", grid.C(0, 0), grid.C(1, 1), ErrNoOpSwap},
		{"distant", grid.C(0, 0), grid.C(0, 2), ErrNoOpSwap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, []string{
				"abab",
				"baba",
				"abab",
				"baba",
			}, 4)
			before := s.board.Clone()

			_, err := s.AttemptSwap(tt.a, tt.b)
			if err != tt.want {
				t.Errorf("AttemptSwap(%v, %v) error = %v, want %v", tt.a, tt.b, err, tt.want)
			}
			if !s.board.Equal(before) {
				t.Error("rejected swap must not mutate the board")
			}
			if s.Resolving() {
				t.Error("rejected swap must not arm the resolution machine")
			}
		})
	}
}

func TestBasicMatchCommits(t *testing.T) {
	// Swapping (0,1) with (1,1) turns row 0 into "aaac": a 3-run of a.
	s := newTestSession(t, []string{
		"abac",
		"badb",
		"cdcd",
		"dcdc",
	}, 4)

	if err := s.BeginSwap(grid.C(0, 1), grid.C(1, 1)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}

	ev := s.StepResolve()
	if ev.Phase != PhaseClear {
		t.Fatalf("first step phase = %v, want %v", ev.Phase, PhaseClear)
	}
	if len(ev.Matched) != 3 {
		t.Errorf("matched cells = %d, want 3", len(ev.Matched))
	}
	if ev.Chain != 1 {
		t.Errorf("first cycle chain = %d, want 1", ev.Chain)
	}
	wantDelta := 3 * s.cfg.Scoring.GemPoints
	if ev.ScoreDelta != wantDelta {
		t.Errorf("first cycle score = %d, want %d", ev.ScoreDelta, wantDelta)
	}

	for s.Resolving() {
		s.StepResolve()
	}

	result := s.LastResult()
	if !result.Committed {
		t.Error("matching swap should commit")
	}
	if result.CellsCleared < 3 {
		t.Errorf("CellsCleared = %d, want >= 3", result.CellsCleared)
	}
	if s.MovesLeft() != s.cfg.Gameplay.Moves-1 {
		t.Errorf("MovesLeft = %d, want %d", s.MovesLeft(), s.cfg.Gameplay.Moves-1)
	}
	if s.board.GemCount() != s.board.Rows*s.board.Cols {
		t.Errorf("settled board has %d gems, want full %d", s.board.GemCount(), s.board.Rows*s.board.Cols)
	}
}

func TestPowerUpCreationFromFourRun(t *testing.T) {
	// Swapping (0,2) with (1,2) turns row 0 into "bbbbc": a 4-run of b at
	// the top edge, so the run's cells stay empty after the drop and the
	// earned gem lands at the run's center.
	s := newTestSession(t, []string{
		"bbabc",
		"cdbda",
		"acdcb",
		"cabac",
		"acdca",
	}, 4)

	if err := s.BeginSwap(grid.C(0, 2), grid.C(1, 2)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}

	ev := s.StepResolve() // evaluate
	if len(ev.Matched) != 4 {
		t.Fatalf("matched cells = %d, want 4", len(ev.Matched))
	}
	s.StepResolve()      // clear
	ev = s.StepResolve() // drop + power-up placement

	center := grid.C(0, 2)
	if len(ev.PowerUps) != 1 || ev.PowerUps[0] != center {
		t.Fatalf("power-ups placed = %v, want [%v]", ev.PowerUps, center)
	}
	gem := s.board.At(center)
	if gem == nil {
		t.Fatal("no gem at the run's center after placement")
	}
	if gem.Power != grid.PowerArea {
		t.Errorf("placed gem power = %v, want %v", gem.Power, grid.PowerArea)
	}
	if gem.Color != grid.GemColor(1) {
		t.Errorf("placed gem color = %v, want matched run color b", gem.Color)
	}

	for s.Resolving() {
		s.StepResolve()
	}
	if s.LastResult().PowerUpsCreated != 1 {
		t.Errorf("PowerUpsCreated = %d, want 1", s.LastResult().PowerUpsCreated)
	}
}

func TestAreaPowerUpActivation(t *testing.T) {
	s := newTestSession(t, []string{
		"abab",
		"baba",
		"abab",
		"baba",
	}, 4)
	s.board.At(grid.C(0, 0)).Power = grid.PowerArea

	if err := s.BeginSwap(grid.C(0, 0), grid.C(0, 1)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}

	ev := s.StepResolve()
	// 3x3 around the power-up's landing cell (0,1), clipped to 2 rows.
	if len(ev.PowerFired) != 6 {
		t.Errorf("area activation cleared %d cells, want 6", len(ev.PowerFired))
	}

	for s.Resolving() {
		s.StepResolve()
	}
	result := s.LastResult()
	if !result.Committed {
		t.Error("power-up swap should commit even without a scan match")
	}
	if result.CellsCleared < 6 {
		t.Errorf("CellsCleared = %d, want >= 6", result.CellsCleared)
	}
}

func TestColorPowerUpActivation(t *testing.T) {
	s := newTestSession(t, []string{
		"abab",
		"baba",
		"abab",
		"baba",
	}, 4)
	s.board.At(grid.C(0, 0)).Power = grid.PowerColor

	if err := s.BeginSwap(grid.C(0, 0), grid.C(0, 1)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}

	// The power gem carries color a; all 8 a-cells go.
	ev := s.StepResolve()
	if len(ev.PowerFired) != 8 {
		t.Errorf("color activation cleared %d cells, want 8", len(ev.PowerFired))
	}
}

func TestComboScaling(t *testing.T) {
	s := newTestSession(t, []string{
		"abab",
		"baba",
		"abab",
		"baba",
	}, 4)

	s.chain = 1
	oneCycle := s.cycleScore(6, 0)

	s.chain = 1
	first := s.cycleScore(3, 0)
	s.chain = 2
	second := s.cycleScore(3, 0)

	if first+second <= oneCycle {
		t.Errorf("two cycles clearing 3+3 scored %d, want more than one cycle clearing 6 (%d)",
			first+second, oneCycle)
	}
}

func TestComboMultiplierCap(t *testing.T) {
	s := newTestSession(t, []string{
		"abab",
		"baba",
		"abab",
		"baba",
	}, 4)

	tests := []struct {
		chain int
		want  float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.5},
		{3, 2.0},
		{100, s.cfg.Scoring.ComboCap},
	}

	for _, tt := range tests {
		s.chain = tt.chain
		if got := s.comboMultiplier(); got != tt.want {
			t.Errorf("comboMultiplier at chain %d = %v, want %v", tt.chain, got, tt.want)
		}
	}
}

func TestBeginSwapWhileResolving(t *testing.T) {
	s := newTestSession(t, []string{
		"abac",
		"badb",
		"cdcd",
		"dcdc",
	}, 4)

	if err := s.BeginSwap(grid.C(0, 1), grid.C(1, 1)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}
	if err := s.BeginSwap(grid.C(2, 0), grid.C(2, 1)); err != ErrResolving {
		t.Errorf("BeginSwap while resolving = %v, want %v", err, ErrResolving)
	}
}

func TestExpireComboIgnoredWhileResolving(t *testing.T) {
	s := newTestSession(t, []string{
		"abac",
		"badb",
		"cdcd",
		"dcdc",
	}, 4)

	if err := s.BeginSwap(grid.C(0, 1), grid.C(1, 1)); err != nil {
		t.Fatalf("BeginSwap: %v", err)
	}
	s.StepResolve() // chain is now 1, still resolving

	s.ExpireCombo()
	if s.Chain() != 1 {
		t.Error("ExpireCombo must not reset the chain mid-resolution")
	}

	for s.Resolving() {
		s.StepResolve()
	}
	s.ExpireCombo()
	if s.Chain() != 0 {
		t.Error("ExpireCombo should reset the chain once idle")
	}
}

func TestStuckBoardReshufflesAfterMove(t *testing.T) {
	s := newTestSession(t, []string{
		"abab",
		"cdcd",
		"abab",
		"cdcd",
	}, 4)

	if s.board.HasAnyPossibleMove() {
		t.Fatal("precondition: tiling should be stuck")
	}

	ev := s.finishMove()
	if !ev.Reshuffled {
		t.Error("finishing a move on a stuck board should reshuffle")
	}
	if !s.board.HasAnyPossibleMove() {
		t.Error("reshuffled board should have a legal move")
	}
}

func TestMoveBudgetUnlimitedWhenZero(t *testing.T) {
	cfg := config.DefaultGemsConfig()
	cfg.Gameplay.Moves = 0
	s := NewSession(cfg, 42)

	if s.MovesLeft() != -1 {
		t.Errorf("MovesLeft with zero budget = %d, want -1 (unlimited)", s.MovesLeft())
	}
}

func TestAutoPlayerFindsEngineeredMove(t *testing.T) {
	board := buildBoard(t, []string{
		"aaba",
		"bcab",
		"abab",
		"baba",
	}, 4, 1)

	move, ok := FindBestMove(board)
	if !ok {
		t.Fatal("FindBestMove found nothing on a board one swap from a match")
	}
	if move.Cleared < 3 {
		t.Errorf("best move clears %d cells, want >= 3", move.Cleared)
	}

	// The reported move must actually commit.
	cfg := config.DefaultGemsConfig()
	cfg.Board.Rows, cfg.Board.Cols = 4, 4
	s := NewSession(cfg, 1)
	s.board = board

	result, err := s.AttemptSwap(move.From, move.To)
	if err != nil {
		t.Fatalf("AttemptSwap on best move: %v", err)
	}
	if !result.Committed {
		t.Error("best move did not commit")
	}
}

func TestAutoPlayerStuckBoard(t *testing.T) {
	board := buildBoard(t, []string{
		"abab",
		"cdcd",
		"abab",
		"cdcd",
	}, 4, 1)

	if _, ok := FindBestMove(board); ok {
		t.Error("FindBestMove on a stuck board should report no move")
	}
}
