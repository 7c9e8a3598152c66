package gamify

// Config holds the tunable progression constants. The defaults are the
// shipped product values; everything that reads them takes a Config so
// tests and future tuning never touch the formulas.
type Config struct {
	// BaseLevelCost is the XP required to advance from level 1 to 2.
	BaseLevelCost int
	// LevelCostStep is the extra XP each subsequent level costs.
	LevelCostStep int
	// StreakBonusPerDay is the bonus XP granted per day of streak on a
	// lesson completion.
	StreakBonusPerDay int
	// StreakBonusCap bounds the streak bonus.
	StreakBonusCap int
	// StreakMilestones are the streak lengths that emit a celebration
	// event, in ascending order.
	StreakMilestones []int
}

// DefaultConfig returns the shipped progression constants.
func DefaultConfig() Config {
	return Config{
		BaseLevelCost:     100,
		LevelCostStep:     50,
		StreakBonusPerDay: 10,
		StreakBonusCap:    100,
		StreakMilestones:  []int{7, 30, 100},
	}
}
