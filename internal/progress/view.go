package progress

import (
	"time"

	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/gamify"
)

// Summary is the headline stats block shown on the home screen.
type Summary struct {
	TotalXP          int
	Level            gamify.LevelInfo
	Streak           gamify.Streak
	CompletedLessons int
	TotalLessons     int
	BadgeCount       int
	TotalBadges      int
}

// Summary returns the current headline stats.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	level, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)
	return Summary{
		TotalXP:          t.profile.TotalXP,
		Level:            level,
		Streak:           t.profile.Streak,
		CompletedLessons: t.profile.CompletedCount(),
		TotalLessons:     len(t.graph.Lessons()),
		BadgeCount:       len(t.profile.Badges),
		TotalBadges:      len(t.eval.Badges()),
	}
}

// Graph returns the curriculum the tracker runs over.
func (t *Tracker) Graph() *curriculum.Graph {
	return t.graph
}

// BadgeCatalog returns the full badge catalog in award order.
func (t *Tracker) BadgeCatalog() []gamify.Badge {
	return t.eval.Badges()
}

// LessonState derives a lesson's state from the profile and the unlock
// resolver. Unknown lessons report locked.
func (t *Tracker) LessonState(lessonID string) curriculum.LessonState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lessonStateLocked(lessonID)
}

func (t *Tracker) lessonStateLocked(lessonID string) curriculum.LessonState {
	if lp, ok := t.profile.Lessons[lessonID]; ok {
		switch lp.Status {
		case StatusCompleted:
			return curriculum.StateCompleted
		case StatusInProgress:
			return curriculum.StateInProgress
		}
	}
	if t.graph.IsUnlocked(lessonID, t.profile.CompletedSet(), t.cfg.Unlock) {
		return curriculum.StateAvailable
	}
	return curriculum.StateLocked
}

// LessonStates returns the state of every lesson, keyed by ID.
func (t *Tracker) LessonStates() map[string]curriculum.LessonState {
	t.mu.Lock()
	defer t.mu.Unlock()

	states := make(map[string]curriculum.LessonState, len(t.graph.Lessons()))
	for _, l := range t.graph.Lessons() {
		states[l.ID] = t.lessonStateLocked(l.ID)
	}
	return states
}

// AvailableLessons returns unlocked, uncompleted lessons in curriculum
// order.
func (t *Tracker) AvailableLessons() []curriculum.Lesson {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.graph.AvailableLessons(t.profile.CompletedSet(), t.cfg.Unlock)
}

// StepProgress returns the recorded progress for a step, if any.
func (t *Tracker) StepProgress(lessonID, stepID string) (StepProgress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lp, ok := t.profile.Lessons[lessonID]
	if !ok {
		return StepProgress{}, false
	}
	sp, ok := lp.Steps[stepID]
	if !ok {
		return StepProgress{}, false
	}
	return *sp, true
}

// SkillLevel returns the level info for a drawing skill.
func (t *Tracker) SkillLevel(skillID string) gamify.LevelInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	info, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.SkillXP(skillID))
	return info
}

// Settings returns the learner's current preferences.
func (t *Tracker) Settings() Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile.Settings
}

// BadgeUnlockedAt returns when a badge was unlocked.
func (t *Tracker) BadgeUnlockedAt(badgeID string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	at, ok := t.profile.Badges[badgeID]
	return at, ok
}

// SectionCompletion returns the completed fraction of a section.
func (t *Tracker) SectionCompletion(sectionIndex int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.graph.SectionCompletion(sectionIndex, t.profile.CompletedSet())
}

// DayActivity returns the journal entry for a day, zero if inactive.
func (t *Tracker) DayActivity(day time.Time) DayActivity {
	t.mu.Lock()
	defer t.mu.Unlock()

	if d, ok := t.profile.Days[DayKey(day)]; ok {
		return *d
	}
	return DayActivity{}
}
