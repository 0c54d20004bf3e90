package game

// Level defines a campaign level with a score target, a move budget, and
// an optional time limit.
type Level struct {
	ID        int
	Name      string
	Target    int // Score required to clear the level
	Moves     int // Move budget for the level
	TimeTicks int // Time limit in ticks (0 = untimed)
	Colors    int // Palette size for the level
}

// Levels defines the 10 campaign levels with increasing difficulty.
// Targets grow faster than move budgets, so later levels require cascades
// and power-ups rather than single matches. Time limits appear from level 6.
var Levels = []Level{
	{ID: 1, Name: "First Sparkle", Target: 600, Moves: 30, TimeTicks: 0, Colors: 4},
	{ID: 2, Name: "Warming Up", Target: 1000, Moves: 30, TimeTicks: 0, Colors: 4},
	{ID: 3, Name: "Chain Reaction", Target: 1500, Moves: 28, TimeTicks: 0, Colors: 4},
	{ID: 4, Name: "Deep Mine", Target: 2000, Moves: 26, TimeTicks: 0, Colors: 4},
	{ID: 5, Name: "Pressure Cut", Target: 2600, Moves: 25, TimeTicks: 0, Colors: 5},
	{ID: 6, Name: "Against the Clock", Target: 2600, Moves: 0, TimeTicks: 7200, Colors: 5},
	{ID: 7, Name: "Crystal Cavern", Target: 3400, Moves: 24, TimeTicks: 0, Colors: 5},
	{ID: 8, Name: "Double Trouble", Target: 4200, Moves: 22, TimeTicks: 10800, Colors: 5},
	{ID: 9, Name: "Gem Storm", Target: 5000, Moves: 20, TimeTicks: 10800, Colors: 6},
	{ID: 10, Name: "Heart of the Mine", Target: 6000, Moves: 20, TimeTicks: 9000, Colors: 6},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}
