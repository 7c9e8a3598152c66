package gamify

import "errors"

// ErrNegativeXP is returned when an XP amount or total is negative.
var ErrNegativeXP = errors.New("xp must be non-negative")

// LevelInfo describes where a given XP total places the learner on the
// level curve.
type LevelInfo struct {
	Level int
	// XPIntoLevel is how much XP has been earned inside the current level.
	XPIntoLevel int
	// XPForNextLevel is the full cost of the current level.
	XPForNextLevel int
	// Progress is XPIntoLevel / XPForNextLevel, in [0, 1).
	Progress float64
}

// LevelCost returns the XP needed to advance from the given level to the
// next. The cost grows linearly with level.
func LevelCost(cfg Config, level int) int {
	if level < 1 {
		level = 1
	}
	return cfg.BaseLevelCost + (level-1)*cfg.LevelCostStep
}

// TotalXPForLevel returns the cumulative XP required to reach a level
// from zero. Level 1 costs nothing.
func TotalXPForLevel(cfg Config, level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += LevelCost(cfg, l)
	}
	return total
}

// LevelForXP maps a lifetime XP total onto the level curve.
func LevelForXP(cfg Config, totalXP int) (LevelInfo, error) {
	if totalXP < 0 {
		return LevelInfo{}, ErrNegativeXP
	}

	level := 1
	remaining := totalXP
	for remaining >= LevelCost(cfg, level) {
		remaining -= LevelCost(cfg, level)
		level++
	}

	cost := LevelCost(cfg, level)
	return LevelInfo{
		Level:          level,
		XPIntoLevel:    remaining,
		XPForNextLevel: cost,
		Progress:       float64(remaining) / float64(cost),
	}, nil
}
