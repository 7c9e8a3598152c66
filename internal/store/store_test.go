package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profile: &ProfileSnapshotData{
				TotalXP:       350,
				StreakCurrent: 3,
				Lessons: map[string]LessonProgressData{
					"warmup-strokes": {Status: "completed"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Profile == nil {
		t.Fatal("expected profile data in snapshot")
	}
	if snap.Data.Profile.TotalXP != 350 {
		t.Errorf("total xp = %d, want 350", snap.Data.Profile.TotalXP)
	}
	if snap.Data.Profile.Lessons["warmup-strokes"].Status != "completed" {
		t.Errorf("lesson status = %q, want completed", snap.Data.Profile.Lessons["warmup-strokes"].Status)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventSequenceSharedAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	lessonID := "warmup-strokes"
	if err := repo.AppendXPEvent(ctx, XPEventData{Amount: 50, Total: 50, Source: "lesson", LessonID: &lessonID}); err != nil {
		t.Fatalf("append xp: %v", err)
	}
	if err := repo.AppendAttemptEvent(ctx, AttemptEventData{LessonID: lessonID, StepID: "ghosting", Score: 0.9, Passed: true}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendLessonEvent(ctx, LessonEventData{LessonID: lessonID, LessonTitle: "Warmup Strokes", Category: "line-work", XPAwarded: 50}); err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	attempts, err := repo.QueryAttemptEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	lessons, err := repo.QueryLessonEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(attempts) != 1 || len(lessons) != 1 {
		t.Fatalf("got %d attempts, %d lessons, want 1 each", len(attempts), len(lessons))
	}
	if attempts[0].Sequence >= lessons[0].Sequence {
		t.Errorf("attempt seq %d should precede lesson seq %d", attempts[0].Sequence, lessons[0].Sequence)
	}
}

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		LessonID:     "circles-ovals",
		StepID:       "freehand-circles",
		Score:        0.75,
		Passed:       true,
		DurationSecs: 300,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryAttemptEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.LessonID != "circles-ovals" || r.StepID != "freehand-circles" {
		t.Errorf("record = %+v", r)
	}
	if r.Score != 0.75 || !r.Passed || r.DurationSecs != 300 {
		t.Errorf("record = %+v", r)
	}
}

func TestBadgeEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBadgeEvent(ctx, BadgeEventData{BadgeID: "first-marks", Title: "First Marks", XPReward: 25})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryBadgeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 || records[0].BadgeID != "first-marks" {
		t.Fatalf("records = %+v", records)
	}
}

func TestArtworkRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtworkRepo()
	ctx := context.Background()

	a, err := repo.Save(ctx, "Cube study", "form-cubes", "/tmp/gallery/cube.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a.ID.String() == "" {
		t.Fatal("expected generated uuid")
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Cube study" || got.LessonID != "form-cubes" {
		t.Errorf("got %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d entries, want 1", len(list))
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, a.ID); err == nil {
		t.Error("expected error getting deleted artwork")
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
