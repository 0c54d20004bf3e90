package game

import "fmt"

// Achievement keys stored in the achievements table.
const (
	AchFirstClear   = "first_clear"   // committed a first match
	AchChainThree   = "chain_three"   // a single move cascaded 3+ cycles
	AchPowerEarned  = "power_earned"  // created a power-up gem
	AchPowerFired   = "power_fired"   // activated a power-up by swapping it
	AchScoreFive    = "score_5000"    // reached 5000 points in one round
	AchCampaignDone = "campaign_done" // cleared the final campaign level
)

// LevelClearKey returns the achievement key for clearing the given level.
func LevelClearKey(id int) string {
	return fmt.Sprintf("level_%d_clear", id)
}

// AchievementTitle returns a display name for an achievement key.
func AchievementTitle(key string) string {
	switch key {
	case AchFirstClear:
		return "First Sparkle"
	case AchChainThree:
		return "Chain Reaction"
	case AchPowerEarned:
		return "Gem Smith"
	case AchPowerFired:
		return "Detonator"
	case AchScoreFive:
		return "High Roller"
	case AchCampaignDone:
		return "Heart of the Mine"
	default:
		return key
	}
}

// AchievementTracker collects achievement unlocks during a round. The
// platform drains it after each step and persists new keys; the tracker
// itself never touches storage.
type AchievementTracker struct {
	unlocked map[string]bool
	pending  []string
}

// NewAchievementTracker creates an empty tracker.
func NewAchievementTracker() *AchievementTracker {
	return &AchievementTracker{unlocked: make(map[string]bool)}
}

// Unlock records a key once; repeat unlocks are ignored.
func (t *AchievementTracker) Unlock(key string) {
	if t.unlocked[key] {
		return
	}
	t.unlocked[key] = true
	t.pending = append(t.pending, key)
}

// Drain returns keys unlocked since the last call.
func (t *AchievementTracker) Drain() []string {
	out := t.pending
	t.pending = nil
	return out
}
