package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/gamify"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestTracker(t *testing.T) (*Tracker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	tr, err := New(curriculum.MustSeedGraph(), Options{Clock: clock.Now})
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr, clock
}

func TestFreshProfile(t *testing.T) {
	tr, _ := newTestTracker(t)

	sum := tr.Summary()
	if sum.TotalXP != 0 || sum.Level.Level != 1 || sum.CompletedLessons != 0 {
		t.Errorf("fresh summary = %+v", sum)
	}
	if sum.TotalLessons != 19 {
		t.Errorf("total lessons = %d, want 19", sum.TotalLessons)
	}

	if got := tr.LessonState("warmup-strokes"); got != curriculum.StateAvailable {
		t.Errorf("warmup-strokes state = %v, want available", got)
	}
	if got := tr.LessonState("straight-lines"); got != curriculum.StateLocked {
		t.Errorf("straight-lines state = %v, want locked", got)
	}
}

func TestRecordStepAttempt_Validation(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		lesson  string
		step    string
		score   float64
		wantErr error
	}{
		{"unknown lesson", "nope", "ghosting", 0.8, ErrUnknownLesson},
		{"unknown step", "warmup-strokes", "nope", 0.8, ErrUnknownStep},
		{"score above range", "warmup-strokes", "ghosting", 1.5, ErrInvalidArgument},
		{"score below range", "warmup-strokes", "ghosting", -0.1, ErrInvalidArgument},
		{"locked lesson", "straight-lines", "point-to-point", 0.8, ErrLessonLocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.RecordStepAttempt(ctx, tt.lesson, tt.step, tt.score, 60)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Failed validation must leave state untouched.
	sum := tr.Summary()
	if sum.TotalXP != 0 || sum.CompletedLessons != 0 || sum.Streak.Current != 0 {
		t.Errorf("state mutated by rejected attempts: %+v", sum)
	}
}

func TestRecordStepAttempt_BelowThreshold(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	res, err := tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.5, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StepPassed {
		t.Error("0.5 should not pass the 0.7 default threshold")
	}
	if res.LessonCompleted {
		t.Error("lesson should not complete on a failed step")
	}
	if !res.Streak.Extended {
		t.Error("first attempt of the day should extend the streak")
	}

	sp, ok := tr.StepProgress("warmup-strokes", "ghosting")
	if !ok {
		t.Fatal("expected step progress to be recorded")
	}
	if sp.Attempts != 1 || sp.BestScore != 0.5 || sp.Passed {
		t.Errorf("step progress = %+v", sp)
	}
	if got := tr.LessonState("warmup-strokes"); got != curriculum.StateInProgress {
		t.Errorf("lesson state = %v, want in progress", got)
	}
}

func TestRecordStepAttempt_BestScoreSticky(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.9, 60)
	tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.3, 60)

	sp, _ := tr.StepProgress("warmup-strokes", "ghosting")
	if sp.BestScore != 0.9 {
		t.Errorf("best score = %f, want 0.9", sp.BestScore)
	}
	if !sp.Passed {
		t.Error("passed should be sticky after a passing score")
	}
	if sp.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", sp.Attempts)
	}
}

func TestLessonCompletion(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.8, 300); err != nil {
		t.Fatal(err)
	}
	res, err := tr.RecordStepAttempt(ctx, "warmup-strokes", "scribble-control", 0.9, 300)
	if err != nil {
		t.Fatal(err)
	}

	if !res.LessonCompleted {
		t.Fatal("passing the last required step should complete the lesson")
	}
	// 50 lesson XP + 25 first-marks badge. A day-one streak of 1 earns
	// no bonus yet.
	if res.XPAwarded != 75 {
		t.Errorf("xp awarded = %d, want 75", res.XPAwarded)
	}
	if res.StreakBonus != 0 {
		t.Errorf("streak bonus = %d, want 0 on day one", res.StreakBonus)
	}
	if len(res.Badges) != 1 || res.Badges[0].ID != "first-marks" {
		t.Errorf("badges = %v", res.Badges)
	}
	if len(res.UnlockedLessons) != 1 || res.UnlockedLessons[0] != "straight-lines" {
		t.Errorf("unlocked = %v, want [straight-lines]", res.UnlockedLessons)
	}

	if got := tr.LessonState("warmup-strokes"); got != curriculum.StateCompleted {
		t.Errorf("warmup state = %v, want completed", got)
	}
	if got := tr.LessonState("straight-lines"); got != curriculum.StateAvailable {
		t.Errorf("straight-lines state = %v, want available", got)
	}

	sum := tr.Summary()
	if sum.TotalXP != 75 || sum.CompletedLessons != 1 || sum.BadgeCount != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestLessonCompletion_CreditsSkill(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.CompleteLesson(ctx, "warmup-strokes"); err != nil {
		t.Fatal(err)
	}

	info := tr.SkillLevel("line-work")
	if info.Level != 1 || info.XPIntoLevel != 50 {
		t.Errorf("line-work level = %+v, want level 1 with 50 xp", info)
	}
	if tr.SkillLevel("perspective").XPIntoLevel != 0 {
		t.Error("unrelated skill should have no xp")
	}
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.CompleteLesson(ctx, "warmup-strokes"); err != nil {
		t.Fatal(err)
	}
	xp := tr.Summary().TotalXP

	res, err := tr.CompleteLesson(ctx, "warmup-strokes")
	if err != nil {
		t.Fatalf("repeat completion should not error: %v", err)
	}
	if res.LessonCompleted || res.XPAwarded != 0 {
		t.Errorf("repeat completion awarded again: %+v", res)
	}
	if tr.Summary().TotalXP != xp {
		t.Errorf("xp changed on repeat completion: %d -> %d", xp, tr.Summary().TotalXP)
	}
}

func TestCompleteLesson_LockedRejected(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, err := tr.CompleteLesson(context.Background(), "form-cubes")
	if !errors.Is(err, ErrLessonLocked) {
		t.Errorf("got %v, want ErrLessonLocked", err)
	}
}

func TestAwardXP(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	res, err := tr.AwardXP(ctx, 150, "coach_exercise")
	if err != nil {
		t.Fatal(err)
	}
	if !res.LeveledUp || res.Level.Level != 2 {
		t.Errorf("150 xp should reach level 2, got %+v", res.Level)
	}

	if _, err := tr.AwardXP(ctx, 0, "coach_exercise"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero amount: got %v, want ErrInvalidArgument", err)
	}
	if _, err := tr.AwardXP(ctx, -5, "coach_exercise"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative amount: got %v, want ErrInvalidArgument", err)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.CompleteLesson(ctx, "warmup-strokes"); err != nil {
		t.Fatal(err)
	}
	clock.now = clock.now.AddDate(0, 0, 1)
	res, err := tr.CompleteLesson(ctx, "straight-lines")
	if err != nil {
		t.Fatal(err)
	}

	if tr.Summary().Streak.Current != 2 {
		t.Errorf("streak = %d, want 2", tr.Summary().Streak.Current)
	}
	if res.StreakBonus != 20 {
		t.Errorf("day-2 streak bonus = %d, want 20", res.StreakBonus)
	}
	if res.XPAwarded != 70 {
		t.Errorf("day-2 xp = %d, want 50 lesson + 20 bonus", res.XPAwarded)
	}

	// Skip two days: streak resets.
	clock.now = clock.now.AddDate(0, 0, 3)
	if _, err := tr.CheckIn(ctx); err != nil {
		t.Fatal(err)
	}
	if tr.Summary().Streak.Current != 1 {
		t.Errorf("streak after gap = %d, want 1", tr.Summary().Streak.Current)
	}
	if tr.Summary().Streak.Longest != 2 {
		t.Errorf("longest = %d, want 2", tr.Summary().Streak.Longest)
	}
}

func TestStreakBonus_OncePerDay(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.CompleteLesson(ctx, "warmup-strokes"); err != nil {
		t.Fatal(err)
	}
	clock.now = clock.now.AddDate(0, 0, 1)

	first, err := tr.CompleteLesson(ctx, "straight-lines")
	if err != nil {
		t.Fatal(err)
	}
	if first.StreakBonus != 20 {
		t.Errorf("first completion of the day: bonus = %d, want 20", first.StreakBonus)
	}

	second, err := tr.CompleteLesson(ctx, "curved-lines")
	if err != nil {
		t.Fatal(err)
	}
	if second.StreakBonus != 0 {
		t.Errorf("second completion same day: bonus = %d, want 0", second.StreakBonus)
	}
	if second.XPAwarded != 50 {
		t.Errorf("second completion xp = %d, want lesson reward only", second.XPAwarded)
	}
}

func TestCheckIn_AwardsStreakBonus(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	res, err := tr.CheckIn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.XPAwarded != 0 || res.StreakBonus != 0 {
		t.Errorf("day-one check-in awarded %+v, want nothing", res)
	}

	// A plain check-in, no attempts at all, still pays the streak bonus.
	clock.now = clock.now.AddDate(0, 0, 1)
	res, err = tr.CheckIn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.StreakBonus != 20 || res.XPAwarded != 20 {
		t.Errorf("day-two check-in = %+v, want 20 bonus xp", res)
	}
	if tr.Summary().TotalXP != 20 {
		t.Errorf("total xp = %d, want 20", tr.Summary().TotalXP)
	}
}

func TestSinkReceivesEventsInOrder(t *testing.T) {
	var kinds []string
	sink := gamify.SinkFunc(func(e gamify.Event) {
		kinds = append(kinds, e.Kind())
	})

	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	tr, err := New(curriculum.MustSeedGraph(), Options{Clock: clock.Now, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tr.CompleteLesson(context.Background(), "warmup-strokes"); err != nil {
		t.Fatal(err)
	}

	want := []string{"streak_extended", "xp_awarded", "lesson_unlocked", "badge_unlocked", "xp_awarded"}
	if len(kinds) != len(want) {
		t.Fatalf("event kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event kinds = %v, want %v", kinds, want)
		}
	}
}

func TestWeekStats(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	tr.CompleteLesson(ctx, "warmup-strokes")
	clock.now = clock.now.AddDate(0, 0, 1)
	tr.RecordStepAttempt(ctx, "straight-lines", "point-to-point", 0.6, 300)

	week := tr.Week(clock.now)
	if len(week.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Days))
	}
	if week.ActiveDays != 2 {
		t.Errorf("active days = %d, want 2", week.ActiveDays)
	}
	if week.Lessons != 1 {
		t.Errorf("lessons = %d, want 1", week.Lessons)
	}
	if week.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", week.Attempts)
	}
	today := week.Days[6]
	if !today.Active || today.Attempts != 1 {
		t.Errorf("today = %+v", today)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	tr.CompleteLesson(ctx, "warmup-strokes")
	tr.RecordStepAttempt(ctx, "straight-lines", "point-to-point", 0.6, 120)

	data := tr.profile.toSnapshotData()
	restored := profileFromSnapshot(data)

	if restored.TotalXP != tr.profile.TotalXP {
		t.Errorf("total xp = %d, want %d", restored.TotalXP, tr.profile.TotalXP)
	}
	if restored.Streak != tr.profile.Streak {
		t.Errorf("streak = %+v, want %+v", restored.Streak, tr.profile.Streak)
	}
	if restored.Lessons["warmup-strokes"].Status != StatusCompleted {
		t.Error("completed lesson lost in round trip")
	}
	sp := restored.Lessons["straight-lines"].Steps["point-to-point"]
	if sp == nil || sp.BestScore != 0.6 || sp.Attempts != 1 {
		t.Errorf("step progress lost in round trip: %+v", sp)
	}
	if restored.Skills["line-work"].XP != 50 {
		t.Errorf("skill xp = %d, want 50", restored.Skills["line-work"].XP)
	}
	if _, ok := restored.Badges["first-marks"]; !ok {
		t.Error("badge lost in round trip")
	}
	if restored.Days[DayKey(clock.now)] == nil {
		t.Error("day journal lost in round trip")
	}
	if lp := restored.Lessons["straight-lines"]; lp.TimeSpentSecs != 120 || lp.LastAttemptAt.IsZero() {
		t.Errorf("attempt time lost in round trip: %+v", lp)
	}
	if got := restored.Days[DayKey(clock.now)].SecondsPracticed; got != 120 {
		t.Errorf("practice seconds = %d, want 120", got)
	}

	// A tracker built on the restored profile behaves identically.
	tr2, err := New(curriculum.MustSeedGraph(), Options{Profile: restored, Clock: clock.Now})
	if err != nil {
		t.Fatal(err)
	}
	if tr2.Summary().CompletedLessons != 1 {
		t.Errorf("restored tracker completed = %d, want 1", tr2.Summary().CompletedLessons)
	}
	if tr2.LessonState("straight-lines") != curriculum.StateInProgress {
		t.Error("restored tracker should keep straight-lines in progress")
	}
}

func TestSettings(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	got := tr.Settings()
	if got != DefaultSettings() {
		t.Errorf("fresh settings = %+v, want defaults", got)
	}

	if err := tr.UpdateSettings(ctx, Settings{DailyGoalMinutes: -5}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative goal err = %v, want ErrInvalidArgument", err)
	}

	if err := tr.UpdateSettings(ctx, Settings{DailyGoalMinutes: 20}); err != nil {
		t.Fatal(err)
	}
	got = tr.Settings()
	if got.DailyGoalMinutes != 20 {
		t.Errorf("goal = %d, want 20", got.DailyGoalMinutes)
	}
	if got.PreferredDifficulty != DefaultSettings().PreferredDifficulty {
		t.Errorf("zero-value update changed difficulty to %q", got.PreferredDifficulty)
	}

	if err := tr.UpdateSettings(ctx, Settings{PreferredDifficulty: "advanced"}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Settings(); got.DailyGoalMinutes != 20 || got.PreferredDifficulty != "advanced" {
		t.Errorf("settings = %+v", got)
	}

	data := tr.profile.toSnapshotData()
	restored := profileFromSnapshot(data)
	if restored.Settings != tr.profile.Settings {
		t.Errorf("settings lost in round trip: %+v", restored.Settings)
	}
}

func TestWeekStats_GoalDays(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	if err := tr.UpdateSettings(ctx, Settings{DailyGoalMinutes: 5}); err != nil {
		t.Fatal(err)
	}

	tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.5, 600)
	clock.now = clock.now.AddDate(0, 0, 1)
	tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.5, 60)

	week := tr.Week(clock.now)
	if week.GoalDays != 1 {
		t.Errorf("goal days = %d, want 1", week.GoalDays)
	}
	if !week.Days[5].GoalMet {
		t.Error("ten-minute day should meet a five-minute goal")
	}
	if week.Days[6].GoalMet {
		t.Error("one-minute day should not meet the goal")
	}
}

func TestPracticeTime_SubMinuteAttemptsAccrue(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()

	if err := tr.UpdateSettings(ctx, Settings{DailyGoalMinutes: 1}); err != nil {
		t.Fatal(err)
	}

	tr.RecordStepAttempt(ctx, "warmup-strokes", "ghosting", 0.5, 40)
	tr.RecordStepAttempt(ctx, "warmup-strokes", "scribble-control", 0.5, 40)

	day := tr.profile.Days[DayKey(clock.now)]
	if day.SecondsPracticed != 80 {
		t.Fatalf("seconds practiced = %d, want 80", day.SecondsPracticed)
	}
	if day.Minutes() != 1 {
		t.Errorf("minutes = %d, want 1", day.Minutes())
	}

	week := tr.Week(clock.now)
	if !week.Days[6].GoalMet {
		t.Error("two 40-second drills should meet a one-minute goal")
	}

	lp := tr.profile.Lessons["warmup-strokes"]
	if lp.TimeSpentSecs != 80 {
		t.Errorf("lesson time = %d, want 80", lp.TimeSpentSecs)
	}
	if !lp.LastAttemptAt.Equal(clock.now) {
		t.Errorf("last attempt at = %v, want %v", lp.LastAttemptAt, clock.now)
	}
}
