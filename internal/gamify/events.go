package gamify

// Event is a notification emitted after a progress mutation commits.
// Events fire only once state is persisted, so a sink never observes a
// change that later rolled back.
type Event interface {
	Kind() string
}

// Sink receives progress events. Implementations must not block; the
// tracker calls Notify synchronously after commit.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// XPAwarded fires for every XP grant, including streak and badge bonuses.
type XPAwarded struct {
	Amount int
	Total  int
	Source string
}

func (XPAwarded) Kind() string { return "xp_awarded" }

// LevelUp fires when an XP grant crosses one or more level boundaries.
type LevelUp struct {
	From int
	To   int
}

func (LevelUp) Kind() string { return "level_up" }

// LessonUnlocked fires when a completion opens a previously locked lesson.
type LessonUnlocked struct {
	LessonID string
}

func (LessonUnlocked) Kind() string { return "lesson_unlocked" }

// BadgeUnlocked fires when the evaluator awards a badge.
type BadgeUnlocked struct {
	BadgeID string
}

func (BadgeUnlocked) Kind() string { return "badge_unlocked" }

// StreakExtended fires when a check-in grows the streak.
type StreakExtended struct {
	Days int
}

func (StreakExtended) Kind() string { return "streak_extended" }

// StreakMilestone fires when the streak reaches a milestone length.
type StreakMilestone struct {
	Days int
}

func (StreakMilestone) Kind() string { return "streak_milestone" }
