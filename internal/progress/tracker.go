package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/gamify"
	"github.com/alecrj/atelier/internal/store"
)

// snapshotKeep is how many state snapshots survive pruning.
const snapshotKeep = 20

// Config bundles the gamification and unlock tuning for a tracker.
type Config struct {
	Gamify gamify.Config
	Unlock curriculum.UnlockConfig
}

// DefaultConfig returns the shipped tracker configuration.
func DefaultConfig() Config {
	return Config{
		Gamify: gamify.DefaultConfig(),
		Unlock: curriculum.DefaultUnlockConfig(),
	}
}

// Options configures a Tracker. Zero values get sensible defaults; the
// repos and sink may be nil, which disables persistence and
// notifications respectively.
type Options struct {
	// Profile is the restored learner state, nil for a fresh profile.
	Profile *Profile
	// Sequence is the snapshot sequence the profile was restored from.
	Sequence int64
	// Badges overrides the built-in badge catalog.
	Badges []gamify.Badge
	// Events receives the append-only event log.
	Events store.EventRepo
	// Snapshots receives state snapshots after each mutation.
	Snapshots store.SnapshotRepo
	// Sink receives progress events after each mutation commits.
	Sink gamify.Sink
	// Config overrides the default tuning.
	Config *Config
	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// Tracker owns the learner profile and applies every progress mutation
// in a fixed order: validate, mutate, award XP, recompute unlocks,
// evaluate badges, persist, notify. A single mutex serializes all
// operations, so observers never see partial state.
type Tracker struct {
	mu sync.Mutex

	graph   *curriculum.Graph
	cfg     Config
	eval    *gamify.Evaluator
	profile *Profile

	events    store.EventRepo
	snapshots store.SnapshotRepo
	sink      gamify.Sink
	clock     func() time.Time

	seq int64
}

// Result reports everything a mutation changed, for the UI to render.
type Result struct {
	StepPassed      bool
	LessonCompleted bool
	XPAwarded       int
	StreakBonus     int
	Level           gamify.LevelInfo
	LeveledUp       bool
	Streak          gamify.CheckInResult
	UnlockedLessons []string
	Badges          []gamify.Badge
}

// New builds a Tracker over the given curriculum.
func New(graph *curriculum.Graph, opts Options) (*Tracker, error) {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	badges := opts.Badges
	if badges == nil {
		badges = gamify.SeedBadges()
	}
	eval, err := gamify.NewEvaluator(graph, badges, cfg.Gamify)
	if err != nil {
		return nil, fmt.Errorf("build badge evaluator: %w", err)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	profile := opts.Profile
	if profile == nil {
		profile = NewProfile(clock())
	}

	return &Tracker{
		graph:     graph,
		cfg:       cfg,
		eval:      eval,
		profile:   profile,
		events:    opts.Events,
		snapshots: opts.Snapshots,
		sink:      opts.Sink,
		clock:     clock,
		seq:       opts.Sequence,
	}, nil
}

// pending buffers persistence and notifications until the in-memory
// mutation is complete.
type pending struct {
	appends []func(context.Context, store.EventRepo) error
	notes   []gamify.Event
}

// RecordStepAttempt scores an attempt at a lesson step. A passing score
// on the last outstanding required step completes the lesson, which
// awards XP, opens downstream lessons and may unlock badges.
func (t *Tracker) RecordStepAttempt(ctx context.Context, lessonID, stepID string, score float64, durationSecs int) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Validate everything before touching state.
	lesson, err := t.graph.Lesson(lessonID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownLesson, lessonID)
	}
	step, ok := lesson.Step(stepID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s/%s", ErrUnknownStep, lessonID, stepID)
	}
	if score < 0 || score > 1 {
		return Result{}, fmt.Errorf("%w: score %.2f out of range", ErrInvalidArgument, score)
	}
	if durationSecs < 0 {
		return Result{}, fmt.Errorf("%w: negative duration", ErrInvalidArgument)
	}
	completed := t.profile.CompletedSet()
	if !completed[lessonID] && !t.graph.IsUnlocked(lessonID, completed, t.cfg.Unlock) {
		return Result{}, fmt.Errorf("%w: %s", ErrLessonLocked, lessonID)
	}

	now := t.clock()
	var res Result
	var pend pending

	levelBefore, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)

	t.checkInLocked(now, &res, &pend)

	lp := t.profile.lesson(lessonID, now)
	lp.TimeSpentSecs += durationSecs
	lp.LastAttemptAt = now.UTC()
	sp := lp.step(stepID)
	sp.Attempts++
	if score > sp.BestScore {
		sp.BestScore = score
	}
	passed := score >= step.CompletionThreshold()
	if passed {
		sp.Passed = true
	}
	res.StepPassed = sp.Passed

	day := t.profile.day(now)
	day.Attempts++
	day.SecondsPracticed += durationSecs

	pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendAttemptEvent(ctx, store.AttemptEventData{
			LessonID:     lessonID,
			StepID:       stepID,
			Score:        score,
			Passed:       passed,
			DurationSecs: durationSecs,
		})
	})

	if lp.Status != StatusCompleted && t.allRequiredPassed(lesson, lp) {
		t.completeLocked(lesson, lp, now, &res, &pend)
	}

	t.finishLocked(levelBefore, &res, &pend)
	return res, t.persistLocked(ctx, &pend)
}

// CompleteLesson marks a lesson complete directly, passing all of its
// required steps. Completing an already-completed lesson is a no-op.
func (t *Tracker) CompleteLesson(ctx context.Context, lessonID string) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lesson, err := t.graph.Lesson(lessonID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownLesson, lessonID)
	}
	completed := t.profile.CompletedSet()
	if completed[lessonID] {
		return Result{}, nil
	}
	if !t.graph.IsUnlocked(lessonID, completed, t.cfg.Unlock) {
		return Result{}, fmt.Errorf("%w: %s", ErrLessonLocked, lessonID)
	}

	now := t.clock()
	var res Result
	var pend pending

	levelBefore, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)

	t.checkInLocked(now, &res, &pend)

	lp := t.profile.lesson(lessonID, now)
	for _, s := range lesson.RequiredSteps() {
		sp := lp.step(s.ID)
		if !sp.Passed {
			sp.Attempts++
			sp.Passed = true
			if th := s.CompletionThreshold(); th > sp.BestScore {
				sp.BestScore = th
			}
		}
	}
	t.completeLocked(lesson, lp, now, &res, &pend)

	t.finishLocked(levelBefore, &res, &pend)
	return res, t.persistLocked(ctx, &pend)
}

// AwardXP grants XP outside the lesson flow, e.g. for a coach exercise.
func (t *Tracker) AwardXP(ctx context.Context, amount int, source string) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if amount <= 0 {
		return Result{}, fmt.Errorf("%w: xp amount must be positive", ErrInvalidArgument)
	}
	if source == "" {
		return Result{}, fmt.Errorf("%w: empty xp source", ErrInvalidArgument)
	}

	var res Result
	var pend pending
	levelBefore, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)

	t.grantLocked(amount, source, nil, &res, &pend)

	t.finishLocked(levelBefore, &res, &pend)
	return res, t.persistLocked(ctx, &pend)
}

// CheckIn records practice activity for today without an attempt, so
// opening the app keeps the streak alive.
func (t *Tracker) CheckIn(ctx context.Context) (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var res Result
	var pend pending
	levelBefore, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)

	t.checkInLocked(t.clock(), &res, &pend)

	t.finishLocked(levelBefore, &res, &pend)
	return res, t.persistLocked(ctx, &pend)
}

// UpdateSettings stores learner preferences and snapshots the profile.
// Zero-valued fields keep their current value.
func (t *Tracker) UpdateSettings(ctx context.Context, s Settings) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s.DailyGoalMinutes < 0 {
		return fmt.Errorf("%w: negative daily goal", ErrInvalidArgument)
	}
	if s.DailyGoalMinutes > 0 {
		t.profile.Settings.DailyGoalMinutes = s.DailyGoalMinutes
	}
	if s.PreferredDifficulty != "" {
		t.profile.Settings.PreferredDifficulty = s.PreferredDifficulty
	}

	if t.snapshots == nil {
		return nil
	}
	t.seq++
	snap := &store.Snapshot{
		Sequence:  t.seq,
		Timestamp: t.clock().UTC(),
		Data: store.SnapshotData{
			Version: snapshotVersion,
			Profile: t.profile.toSnapshotData(),
		},
	}
	if err := t.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return t.snapshots.Prune(ctx, snapshotKeep)
}

// checkInLocked advances the streak, grants the daily streak bonus and
// queues the streak events. The bonus lands here, not on lesson
// completion, so it is paid exactly once per calendar day.
func (t *Tracker) checkInLocked(now time.Time, res *Result, pend *pending) {
	s, chk := gamify.CheckIn(t.cfg.Gamify, t.profile.Streak, now)
	t.profile.Streak = s
	res.Streak = chk

	if chk.Extended || chk.Reset {
		action := "extend"
		if chk.Reset {
			action = "reset"
		}
		days := s.Current
		pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
			return repo.AppendStreakEvent(ctx, store.StreakEventData{Action: action, Days: days})
		})
	}
	if chk.Extended {
		pend.notes = append(pend.notes, gamify.StreakExtended{Days: s.Current})
		if s.Current > 1 {
			if bonus := gamify.StreakBonusXP(t.cfg.Gamify, s.Current); bonus > 0 {
				res.StreakBonus = bonus
				t.grantLocked(bonus, "streak_bonus", nil, res, pend)
			}
		}
	}
	if chk.Milestone > 0 {
		m := chk.Milestone
		pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
			return repo.AppendStreakEvent(ctx, store.StreakEventData{Action: "milestone", Days: m})
		})
		pend.notes = append(pend.notes, gamify.StreakMilestone{Days: m})
	}
}

// allRequiredPassed reports whether every required step of the lesson
// has a passing attempt.
func (t *Tracker) allRequiredPassed(lesson curriculum.Lesson, lp *LessonProgress) bool {
	for _, s := range lesson.RequiredSteps() {
		sp, ok := lp.Steps[s.ID]
		if !ok || !sp.Passed {
			return false
		}
	}
	return true
}

// completeLocked runs the completion flow for a lesson whose required
// steps have all passed: mark complete, award the lesson XP, credit the
// skill, and diff the unlock set.
func (t *Tracker) completeLocked(lesson curriculum.Lesson, lp *LessonProgress, now time.Time, res *Result, pend *pending) {
	before := t.graph.UnlockedSet(t.profile.CompletedSet(), t.cfg.Unlock)

	lp.Status = StatusCompleted
	lp.CompletedAt = now.UTC()
	res.LessonCompleted = true

	lessonID := lesson.ID
	t.grantLocked(lesson.XPReward, "lesson", &lessonID, res, pend)

	skill := t.profile.Skills[string(lesson.Category)]
	if skill == nil {
		skill = &SkillProgress{}
		t.profile.Skills[string(lesson.Category)] = skill
	}
	skill.XP += lesson.XPReward

	day := t.profile.day(now)
	day.LessonsCompleted++

	xpAwarded := lesson.XPReward
	pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendLessonEvent(ctx, store.LessonEventData{
			LessonID:    lesson.ID,
			LessonTitle: lesson.Title,
			Category:    string(lesson.Category),
			XPAwarded:   xpAwarded,
		})
	})

	after := t.graph.UnlockedSet(t.profile.CompletedSet(), t.cfg.Unlock)
	for _, l := range t.graph.TopologicalOrder() {
		if after[l.ID] && !before[l.ID] && l.ID != lesson.ID {
			res.UnlockedLessons = append(res.UnlockedLessons, l.ID)
			pend.notes = append(pend.notes, gamify.LessonUnlocked{LessonID: l.ID})
		}
	}
}

// grantLocked adds XP to the profile total and the day journal, and
// queues its event.
func (t *Tracker) grantLocked(amount int, source string, lessonID *string, res *Result, pend *pending) {
	t.profile.TotalXP += amount
	t.profile.day(t.clock()).XPEarned += amount
	res.XPAwarded += amount
	total := t.profile.TotalXP

	pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
		return repo.AppendXPEvent(ctx, store.XPEventData{
			Amount:   amount,
			Total:    total,
			Source:   source,
			LessonID: lessonID,
		})
	})
	pend.notes = append(pend.notes, gamify.XPAwarded{Amount: amount, Total: total, Source: source})
}

// finishLocked evaluates badges against the mutated state and resolves
// the level change.
func (t *Tracker) finishLocked(levelBefore gamify.LevelInfo, res *Result, pend *pending) {
	st := t.evaluationStateLocked()
	earned, _ := t.eval.Evaluate(st)
	now := t.clock().UTC()
	for _, b := range earned {
		t.profile.Badges[b.ID] = now
		res.Badges = append(res.Badges, b)
		badge := b
		pend.appends = append(pend.appends, func(ctx context.Context, repo store.EventRepo) error {
			return repo.AppendBadgeEvent(ctx, store.BadgeEventData{
				BadgeID:  badge.ID,
				Title:    badge.Title,
				XPReward: badge.XPReward,
			})
		})
		pend.notes = append(pend.notes, gamify.BadgeUnlocked{BadgeID: b.ID})
		if b.XPReward > 0 {
			t.grantLocked(b.XPReward, "badge", nil, res, pend)
		}
	}

	levelAfter, _ := gamify.LevelForXP(t.cfg.Gamify, t.profile.TotalXP)
	res.Level = levelAfter
	if levelAfter.Level > levelBefore.Level {
		res.LeveledUp = true
		pend.notes = append(pend.notes, gamify.LevelUp{From: levelBefore.Level, To: levelAfter.Level})
	}
}

// evaluationStateLocked snapshots the profile for badge evaluation.
func (t *Tracker) evaluationStateLocked() gamify.State {
	skillLevels := make(map[string]int, len(t.profile.Skills))
	for id, sp := range t.profile.Skills {
		info, err := gamify.LevelForXP(t.cfg.Gamify, sp.XP)
		if err == nil {
			skillLevels[id] = info.Level
		}
	}
	held := make(map[string]bool, len(t.profile.Badges))
	for id := range t.profile.Badges {
		held[id] = true
	}
	return gamify.State{
		Completed:      t.profile.CompletedSet(),
		CompletedCount: t.profile.CompletedCount(),
		StreakDays:     t.profile.Streak.Current,
		TotalXP:        t.profile.TotalXP,
		SkillLevels:    skillLevels,
		Held:           held,
	}
}

// persistLocked flushes queued events, saves a snapshot and notifies
// the sink. Notifications fire only after persistence succeeds.
func (t *Tracker) persistLocked(ctx context.Context, pend *pending) error {
	if t.events != nil {
		for _, fn := range pend.appends {
			if err := fn(ctx, t.events); err != nil {
				return fmt.Errorf("persist events: %w", err)
			}
		}
	}

	if t.snapshots != nil && len(pend.appends) > 0 {
		t.seq++
		snap := &store.Snapshot{
			Sequence:  t.seq,
			Timestamp: t.clock().UTC(),
			Data: store.SnapshotData{
				Version: snapshotVersion,
				Profile: t.profile.toSnapshotData(),
			},
		}
		if err := t.snapshots.Save(ctx, snap); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := t.snapshots.Prune(ctx, snapshotKeep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}

	if t.sink != nil {
		for _, e := range pend.notes {
			t.sink.Notify(e)
		}
	}
	return nil
}
