package coach

import "github.com/alecrj/atelier/internal/curriculum"

// AttemptContext describes a scored step attempt for feedback generation.
type AttemptContext struct {
	LessonID     string
	LessonTitle  string
	StepID       string
	StepTitle    string
	Category     curriculum.Category
	Instructions string
	Score        float64
	BestScore    float64
	Attempts     int
	Passed       bool
	Threshold    float64
}

// LearnerContext summarizes recent activity for warmup suggestions.
type LearnerContext struct {
	Level         int
	StreakDays    int
	RecentLessons []string
	WeakestSkill  curriculum.Category
	SkillLevel    int
	Difficulty    string
}

// Feedback is structured coaching feedback on a single attempt.
type Feedback struct {
	Summary       string   `json:"summary"`
	Tips          []string `json:"tips"`
	Encouragement string   `json:"encouragement"`
}

// WarmupSuggestion is a short drill the learner can do before a session.
type WarmupSuggestion struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
}
