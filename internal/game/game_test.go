package game

import (
	"testing"

	"github.com/kseleznyov/gemcrush/internal/core"
	"github.com/kseleznyov/gemcrush/internal/grid"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterministicRuns(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionRight),
		frame(core.ActionRight),
		frame(core.ActionDown),
		frame(core.ActionSelect),
		frame(core.ActionLeft),
		frame(core.ActionSelect),
	}
	// Pad with empty frames so any triggered resolution settles.
	for i := 0; i < 200; i++ {
		script = append(script, core.NewInputFrame())
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntimeConfig(12345))
		for _, in := range script {
			g.Step(in)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("same seed and input script diverged:\n%+v\nvs\n%+v", first, second)
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	if g.cursor != grid.C(0, 0) {
		t.Errorf("cursor moved off the board: %v", g.cursor)
	}

	board := g.session.Board()
	for i := 0; i < board.Cols+5; i++ {
		g.Step(frame(core.ActionRight))
	}
	for i := 0; i < board.Rows+5; i++ {
		g.Step(frame(core.ActionDown))
	}
	want := grid.C(board.Rows-1, board.Cols-1)
	if g.cursor != want {
		t.Errorf("cursor = %v, want clamped to %v", g.cursor, want)
	}
}

func TestSelectionStateMachine(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	// First select marks the cursor cell.
	res := g.Step(frame(core.ActionSelect))
	if g.selected == nil || *g.selected != grid.C(0, 0) {
		t.Fatalf("selected = %v, want (0,0)", g.selected)
	}
	if !hasCue(res.Cues, core.CueSelect) {
		t.Error("first select should emit the select cue")
	}

	// Selecting the same cell again deselects.
	g.Step(frame(core.ActionSelect))
	if g.selected != nil {
		t.Error("second select on the same cell should deselect")
	}

	// A non-adjacent second select re-selects instead of swapping.
	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionSelect))
	if g.selected == nil || *g.selected != grid.C(0, 2) {
		t.Errorf("non-adjacent select should re-select the cursor cell, got %v", g.selected)
	}
	if g.session.Resolving() {
		t.Error("non-adjacent select must not start a swap")
	}

	// Back clears the selection.
	g.Step(frame(core.ActionBack))
	if g.selected != nil {
		t.Error("back should clear the selection")
	}
}

func TestAdjacentSelectStartsSwap(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	res := g.Step(frame(core.ActionSelect))

	if !g.session.Resolving() {
		t.Fatal("adjacent second select should begin a swap")
	}
	if !hasCue(res.Cues, core.CueSwap) {
		t.Error("starting a swap should emit the swap cue")
	}
	if g.selected != nil {
		t.Error("selection should clear once the swap starts")
	}
}

func TestInputIgnoredWhileResolving(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionSelect))
	if !g.session.Resolving() {
		t.Fatal("precondition: swap should be resolving")
	}

	cursorBefore := g.cursor
	g.Step(frame(core.ActionDown, core.ActionSelect))
	if g.cursor != cursorBefore {
		t.Error("cursor moved while a move was resolving")
	}
	if g.selected != nil {
		t.Error("selection changed while a move was resolving")
	}
}

func TestResolutionSettlesAndEmitsCues(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	// Engineer a board where (0,1)<->(1,1) makes a 3-run.
	g.session.board = buildBoard(t, []string{
		"abacabacab",
		"badbbadbba",
		"cdcdcdcdcd",
		"dcdcdcdcdc",
		"cdcdcdcdcd",
		"dcdcdcdcdc",
		"cdcdcdcdcd",
		"dcdcdcdcdc",
		"cdcdcdcdcd",
		"dcdcdcdcdc",
	}, 4, 42)

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionDown))
	g.Step(frame(core.ActionSelect)) // swap (0,0)+... not adjacent, re-selects
	if g.session.Resolving() {
		t.Fatal("diagonal selection must not start a swap")
	}

	// (1,1) is now selected; move up to (0,1): adjacent, match on row 0.
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))
	if !g.session.Resolving() {
		t.Fatal("adjacent swap should be resolving")
	}

	sawMatch := false
	for i := 0; i < 2000 && g.session.Resolving(); i++ {
		res := g.Step(core.NewInputFrame())
		if hasCue(res.Cues, core.CueMatch) {
			sawMatch = true
		}
	}
	if g.session.Resolving() {
		t.Fatal("resolution did not settle within the tick budget")
	}
	if !sawMatch {
		t.Error("committed swap never emitted the match cue")
	}
	if !g.session.LastResult().Committed {
		t.Error("swap onto a 3-run should commit")
	}
}

func TestEndlessModeNoLevelTarget(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntimeConfig(42))

	if g.target != 0 {
		t.Errorf("endless target = %d, want 0", g.target)
	}
	if g.session.MovesLeft() < 0 {
		t.Error("endless mode should still carry the configured move budget")
	}
	if g.levelCleared || g.won {
		t.Error("endless mode should never start cleared or won")
	}
}

func TestCampaignLevelAdvance(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	// Force a cleared level and run out the overlay hold.
	g.session.score = g.target
	g.levelCleared = true
	g.levelClearTicks = levelClearHoldTicks

	g.Step(core.NewInputFrame())

	if g.levelIndex != 1 {
		t.Errorf("level index = %d, want 1 after advance", g.levelIndex)
	}
	if g.bankScore == 0 {
		t.Error("cleared level score should bank into the run total")
	}
	if g.session.Score() != 0 {
		t.Error("next level should start with a fresh session score")
	}
}

func TestTimeLimitLoses(t *testing.T) {
	SetStartLevel(6) // Against the Clock: timed, no move budget
	g := New()
	g.Reset(testRuntimeConfig(42))

	if g.timeLeft == 0 {
		t.Fatal("level 6 should be timed")
	}

	g.timeLeft = 1
	res := g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Error("expiring the timer should end the game")
	}
	if !hasCue(res.Cues, core.CueGameOver) {
		t.Error("timer expiry should emit the game over cue")
	}
}

func TestLevelTable(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount() = %d, want 10", LevelCount())
	}
	if GetLevel(-1) != nil || GetLevel(LevelCount()) != nil {
		t.Error("GetLevel out of range should return nil")
	}
	names := LevelNames()
	if names[0] != "First Sparkle" {
		t.Errorf("first level name = %s", names[0])
	}
	for i := 1; i < len(Levels); i++ {
		if Levels[i].Target < Levels[i-1].Target {
			t.Errorf("level %d target %d regresses below level %d target %d",
				Levels[i].ID, Levels[i].Target, Levels[i-1].ID, Levels[i-1].Target)
		}
	}
}

func TestAchievementTracker(t *testing.T) {
	tr := NewAchievementTracker()

	tr.Unlock(AchFirstClear)
	tr.Unlock(AchFirstClear)
	tr.Unlock(AchChainThree)

	got := tr.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain returned %d keys, want 2", len(got))
	}
	if got[0] != AchFirstClear || got[1] != AchChainThree {
		t.Errorf("Drain order = %v", got)
	}
	if len(tr.Drain()) != 0 {
		t.Error("second Drain should be empty")
	}
}

func TestSnapshotShape(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	snap := g.Snapshot()
	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if snap.BoardHash == 0 {
		t.Error("Snapshot BoardHash should be non-zero for a populated board")
	}
}

func hasCue(cues []core.Cue, want core.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}
