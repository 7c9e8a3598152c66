package progress

import "time"

// Status is the stored state of a started lesson. Locked and available
// are never stored; they are derived from the unlock resolver.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// StepProgress accumulates attempts at one lesson step. Passed is
// sticky: once a score clears the threshold the step stays passed.
type StepProgress struct {
	Attempts  int
	BestScore float64
	Passed    bool
}

// LessonProgress is the per-lesson record. A lesson appears in the
// profile map only once it has been started.
type LessonProgress struct {
	Status        Status
	Steps         map[string]*StepProgress
	TimeSpentSecs int
	StartedAt     time.Time
	LastAttemptAt time.Time
	CompletedAt   time.Time
}

func (lp *LessonProgress) step(stepID string) *StepProgress {
	if lp.Steps == nil {
		lp.Steps = make(map[string]*StepProgress)
	}
	sp, ok := lp.Steps[stepID]
	if !ok {
		sp = &StepProgress{}
		lp.Steps[stepID] = sp
	}
	return sp
}

// SkillProgress accumulates XP per drawing skill. Skill level is
// derived from this XP on the same curve as the profile level.
type SkillProgress struct {
	XP int
}

// DayActivity is the practice journal entry for one UTC day. Practice
// time accumulates in seconds so short attempts are not lost to
// truncation; minutes are derived at read time.
type DayActivity struct {
	Attempts         int
	LessonsCompleted int
	XPEarned         int
	SecondsPracticed int
}

// Minutes returns the day's practice time in whole minutes.
func (d DayActivity) Minutes() int {
	return d.SecondsPracticed / 60
}

// dayKeyLayout formats UTC days as journal keys.
const dayKeyLayout = "2006-01-02"

// DayKey returns the journal key for a point in time.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}
