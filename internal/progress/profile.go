package progress

import (
	"time"

	"github.com/alecrj/atelier/internal/gamify"
)

// Settings are learner preferences carried on the profile.
type Settings struct {
	// DailyGoalMinutes is the practice time target per day.
	DailyGoalMinutes int
	// PreferredDifficulty biases warmup suggestions and lesson hints.
	PreferredDifficulty string
}

// DefaultSettings returns the settings a fresh profile starts with.
func DefaultSettings() Settings {
	return Settings{
		DailyGoalMinutes:    10,
		PreferredDifficulty: "beginner",
	}
}

// Profile is the full learner state. It is owned by the Tracker, which
// serializes all access; nothing outside this package mutates it.
type Profile struct {
	CreatedAt time.Time
	TotalXP   int
	Streak    gamify.Streak
	Settings  Settings
	Lessons   map[string]*LessonProgress
	Skills    map[string]*SkillProgress
	Badges    map[string]time.Time
	Days      map[string]*DayActivity
}

// NewProfile returns an empty profile created at the given time.
func NewProfile(now time.Time) *Profile {
	return &Profile{
		CreatedAt: now.UTC(),
		Settings:  DefaultSettings(),
		Lessons:   make(map[string]*LessonProgress),
		Skills:    make(map[string]*SkillProgress),
		Badges:    make(map[string]time.Time),
		Days:      make(map[string]*DayActivity),
	}
}

// CompletedSet returns the IDs of completed lessons.
func (p *Profile) CompletedSet() map[string]bool {
	completed := make(map[string]bool)
	for id, lp := range p.Lessons {
		if lp.Status == StatusCompleted {
			completed[id] = true
		}
	}
	return completed
}

// CompletedCount returns the number of completed lessons.
func (p *Profile) CompletedCount() int {
	n := 0
	for _, lp := range p.Lessons {
		if lp.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// SkillXP returns the accumulated XP for a skill, 0 if untouched.
func (p *Profile) SkillXP(skillID string) int {
	if sp, ok := p.Skills[skillID]; ok {
		return sp.XP
	}
	return 0
}

// Day returns the journal entry for a time's UTC day, creating it if
// needed.
func (p *Profile) day(t time.Time) *DayActivity {
	key := DayKey(t)
	d, ok := p.Days[key]
	if !ok {
		d = &DayActivity{}
		p.Days[key] = d
	}
	return d
}

// lesson returns the progress record for a lesson, creating an
// in-progress record on first touch.
func (p *Profile) lesson(id string, now time.Time) *LessonProgress {
	lp, ok := p.Lessons[id]
	if !ok {
		lp = &LessonProgress{
			Status:    StatusInProgress,
			Steps:     make(map[string]*StepProgress),
			StartedAt: now.UTC(),
		}
		p.Lessons[id] = lp
	}
	return lp
}
