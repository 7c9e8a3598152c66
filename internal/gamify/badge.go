package gamify

// RequirementKind identifies how a badge requirement is checked. The set
// is closed; the evaluator rejects catalogs with unknown kinds.
type RequirementKind string

const (
	// ReqCompleteLesson requires a specific lesson to be completed.
	ReqCompleteLesson RequirementKind = "complete_lesson"
	// ReqLessonCount requires a number of completed lessons.
	ReqLessonCount RequirementKind = "lesson_count"
	// ReqStreakDays requires a streak of the given length.
	ReqStreakDays RequirementKind = "streak_days"
	// ReqTotalXP requires a lifetime XP total.
	ReqTotalXP RequirementKind = "total_xp"
	// ReqSkillLevel requires a skill to reach a level.
	ReqSkillLevel RequirementKind = "skill_level"
)

// Requirement is a single badge condition. Only the fields relevant to
// its Kind are set.
type Requirement struct {
	Kind     RequirementKind
	LessonID string
	Count    int
	Days     int
	XP       int
	SkillID  string
	Level    int
}

// Badge is an achievement in the catalog. XPReward is granted on unlock
// and can in turn satisfy XP-based badges.
type Badge struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XPReward    int
	Requirement Requirement
}

// SeedBadges returns the built-in badge catalog, in award-priority order.
func SeedBadges() []Badge {
	return []Badge{
		{
			ID:          "first-marks",
			Title:       "First Marks",
			Description: "Complete your first lesson.",
			Icon:        "✏️",
			XPReward:    25,
			Requirement: Requirement{Kind: ReqCompleteLesson, LessonID: "warmup-strokes"},
		},
		{
			ID:          "shape-up",
			Title:       "Shape Up",
			Description: "Finish the shape construction lesson.",
			Icon:        "🔷",
			XPReward:    50,
			Requirement: Requirement{Kind: ReqCompleteLesson, LessonID: "shape-builds"},
		},
		{
			ID:          "five-lessons",
			Title:       "Warming Up",
			Description: "Complete 5 lessons.",
			Icon:        "🖐",
			XPReward:    50,
			Requirement: Requirement{Kind: ReqLessonCount, Count: 5},
		},
		{
			ID:          "ten-lessons",
			Title:       "Committed",
			Description: "Complete 10 lessons.",
			Icon:        "🔟",
			XPReward:    100,
			Requirement: Requirement{Kind: ReqLessonCount, Count: 10},
		},
		{
			ID:          "full-course",
			Title:       "Studio Graduate",
			Description: "Complete every lesson in the course.",
			Icon:        "🎓",
			XPReward:    500,
			Requirement: Requirement{Kind: ReqLessonCount, Count: 19},
		},
		{
			ID:          "week-streak",
			Title:       "Daily Habit",
			Description: "Practice 7 days in a row.",
			Icon:        "🔥",
			XPReward:    75,
			Requirement: Requirement{Kind: ReqStreakDays, Days: 7},
		},
		{
			ID:          "month-streak",
			Title:       "Dedicated",
			Description: "Practice 30 days in a row.",
			Icon:        "🗓",
			XPReward:    200,
			Requirement: Requirement{Kind: ReqStreakDays, Days: 30},
		},
		{
			ID:          "xp-1000",
			Title:       "Rising Artist",
			Description: "Earn 1,000 lifetime XP.",
			Icon:        "⭐",
			XPReward:    100,
			Requirement: Requirement{Kind: ReqTotalXP, XP: 1000},
		},
		{
			ID:          "line-work-adept",
			Title:       "Steady Hand",
			Description: "Reach level 3 in line work.",
			Icon:        "📏",
			XPReward:    75,
			Requirement: Requirement{Kind: ReqSkillLevel, SkillID: "line-work", Level: 3},
		},
		{
			ID:          "shading-adept",
			Title:       "Light Chaser",
			Description: "Reach level 3 in light and shading.",
			Icon:        "🌗",
			XPReward:    75,
			Requirement: Requirement{Kind: ReqSkillLevel, SkillID: "light-and-shading", Level: 3},
		},
	}
}
