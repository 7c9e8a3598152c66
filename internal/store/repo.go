package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Profile *ProfileSnapshotData `json:"profile,omitempty"`
}

// ProfileSnapshotData is the serialized learner profile. The progress
// package owns the live types; this is the storage shape.
type ProfileSnapshotData struct {
	CreatedAt        time.Time                     `json:"created_at"`
	TotalXP          int                           `json:"total_xp"`
	StreakCurrent    int                           `json:"streak_current"`
	StreakLongest    int                           `json:"streak_longest"`
	StreakLastActive time.Time                     `json:"streak_last_active"`
	DailyGoalMinutes int                           `json:"daily_goal_minutes,omitempty"`
	Difficulty       string                        `json:"difficulty,omitempty"`
	Lessons          map[string]LessonProgressData `json:"lessons"`
	Skills           map[string]SkillProgressData  `json:"skills"`
	Badges           map[string]time.Time          `json:"badges"`
	Days             map[string]DayActivityData    `json:"days"`
}

// LessonProgressData is the stored per-lesson progress.
type LessonProgressData struct {
	Status        string                      `json:"status"`
	Steps         map[string]StepProgressData `json:"steps,omitempty"`
	TimeSpentSecs int                         `json:"time_spent_secs,omitempty"`
	StartedAt     *time.Time                  `json:"started_at,omitempty"`
	LastAttemptAt *time.Time                  `json:"last_attempt_at,omitempty"`
	CompletedAt   *time.Time                  `json:"completed_at,omitempty"`
}

// StepProgressData is the stored per-step progress.
type StepProgressData struct {
	Attempts  int     `json:"attempts"`
	BestScore float64 `json:"best_score"`
	Passed    bool    `json:"passed"`
}

// SkillProgressData is the stored per-skill XP.
type SkillProgressData struct {
	XP int `json:"xp"`
}

// DayActivityData is the stored practice journal entry for one UTC day.
type DayActivityData struct {
	Attempts         int `json:"attempts"`
	LessonsCompleted int `json:"lessons_completed"`
	XPEarned         int `json:"xp_earned"`
	SecondsPracticed int `json:"seconds_practiced"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// XPEventData captures a single XP grant.
type XPEventData struct {
	Amount   int
	Total    int
	Source   string
	LessonID *string
}

// AttemptEventData captures a scored attempt at a lesson step.
type AttemptEventData struct {
	LessonID     string
	StepID       string
	Score        float64
	Passed       bool
	DurationSecs int
}

// LessonEventData captures a lesson completion.
type LessonEventData struct {
	LessonID    string
	LessonTitle string
	Category    string
	XPAwarded   int
}

// BadgeEventData captures a badge unlock.
type BadgeEventData struct {
	BadgeID  string
	Title    string
	XPReward int
}

// StreakEventData captures a streak change.
type StreakEventData struct {
	Action string // extend, reset or milestone
	Days   int
}

// CoachRequestEventData captures a single AI coach API call.
type CoachRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CoachRequestEventRecord is a stored coach API call.
type CoachRequestEventRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	Sequence     int64
	Timestamp    time.Time
}

// AttemptEventRecord is a stored attempt with its ordering metadata.
type AttemptEventRecord struct {
	LessonID     string
	StepID       string
	Score        float64
	Passed       bool
	DurationSecs int
	Sequence     int64
	Timestamp    time.Time
}

// LessonEventRecord is a stored lesson completion.
type LessonEventRecord struct {
	LessonID    string
	LessonTitle string
	Category    string
	XPAwarded   int
	Sequence    int64
	Timestamp   time.Time
}

// BadgeEventRecord is a stored badge unlock.
type BadgeEventRecord struct {
	BadgeID   string
	Title     string
	XPReward  int
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events. All
// appends draw from the shared global sequence.
type EventRepo interface {
	// AppendXPEvent records an XP grant.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// AppendAttemptEvent records a scored step attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendLessonEvent records a lesson completion.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendBadgeEvent records a badge unlock.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// AppendStreakEvent records a streak change.
	AppendStreakEvent(ctx context.Context, data StreakEventData) error

	// AppendCoachRequest records an AI coach API call.
	AppendCoachRequest(ctx context.Context, data CoachRequestEventData) error

	// QueryAttemptEvents returns attempts, newest first.
	QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error)

	// QueryLessonEvents returns lesson completions, newest first.
	QueryLessonEvents(ctx context.Context, opts QueryOpts) ([]LessonEventRecord, error)

	// QueryBadgeEvents returns badge unlocks, newest first.
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// QueryCoachRequests returns coach API calls, newest first.
	QueryCoachRequests(ctx context.Context, opts QueryOpts) ([]CoachRequestEventRecord, error)
}

// ArtworkRecord is a gallery entry.
type ArtworkRecord struct {
	ID         uuid.UUID
	Title      string
	LessonID   string
	Path       string
	ImportedAt time.Time
}

// ArtworkRepo manages the gallery index.
type ArtworkRepo interface {
	// Save inserts a gallery entry and returns it with its generated ID.
	Save(ctx context.Context, title, lessonID, path string) (*ArtworkRecord, error)

	// List returns all entries, newest first.
	List(ctx context.Context) ([]ArtworkRecord, error)

	// Get returns an entry by ID.
	Get(ctx context.Context, id uuid.UUID) (*ArtworkRecord, error)

	// Delete removes an entry by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
