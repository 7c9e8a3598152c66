package gamify

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCheckIn_FirstEver(t *testing.T) {
	s, res := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 1))
	if s.Current != 1 || s.Longest != 1 {
		t.Errorf("got current=%d longest=%d, want 1/1", s.Current, s.Longest)
	}
	if !res.Extended || res.Reset {
		t.Errorf("first check-in should extend, got %+v", res)
	}
}

func TestCheckIn_SameDayNoOp(t *testing.T) {
	s, _ := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 1))
	s2, res := CheckIn(DefaultConfig(), s, day(2026, 3, 1).Add(6*time.Hour))
	if s2 != s {
		t.Errorf("same-day check-in changed streak: %+v -> %+v", s, s2)
	}
	if res.Extended || res.Reset {
		t.Errorf("same-day check-in should be a no-op, got %+v", res)
	}
}

func TestCheckIn_NextDayExtends(t *testing.T) {
	s, _ := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 1))
	s, res := CheckIn(DefaultConfig(), s, day(2026, 3, 2))
	if s.Current != 2 {
		t.Errorf("current = %d, want 2", s.Current)
	}
	if !res.Extended {
		t.Error("next-day check-in should extend")
	}
}

func TestCheckIn_GapResets(t *testing.T) {
	s, _ := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 1))
	s, _ = CheckIn(DefaultConfig(), s, day(2026, 3, 2))
	s, res := CheckIn(DefaultConfig(), s, day(2026, 3, 5))
	if s.Current != 1 {
		t.Errorf("current = %d, want 1 after gap", s.Current)
	}
	if !res.Reset {
		t.Error("gap should report a reset")
	}
	if s.Longest != 2 {
		t.Errorf("longest = %d, want 2 preserved across reset", s.Longest)
	}
}

func TestCheckIn_UTCBoundary(t *testing.T) {
	// 23:30 in UTC-5 is 04:30 the next day in UTC. Streak days follow
	// UTC, so these two check-ins land on consecutive UTC days.
	est := time.FixedZone("EST", -5*3600)
	s, _ := CheckIn(DefaultConfig(), Streak{}, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s, res := CheckIn(DefaultConfig(), s, time.Date(2026, 3, 1, 23, 30, 0, 0, est))
	if s.Current != 2 || !res.Extended {
		t.Errorf("cross-midnight UTC check-in should extend, got current=%d %+v", s.Current, res)
	}
}

func TestCheckIn_ClockWentBackwards(t *testing.T) {
	s, _ := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 8))
	s, _ = CheckIn(DefaultConfig(), s, day(2026, 3, 9))
	s, _ = CheckIn(DefaultConfig(), s, day(2026, 3, 10))

	// A clock that jumped backwards past the last active day breaks the
	// chain the same way a missed day does.
	s, res := CheckIn(DefaultConfig(), s, day(2026, 3, 7))
	if s.Current != 1 {
		t.Errorf("current = %d, want 1 after backwards clock", s.Current)
	}
	if !res.Reset || res.Extended {
		t.Errorf("backwards clock should reset, got %+v", res)
	}
	if s.Longest != 3 {
		t.Errorf("longest = %d, want 3 preserved", s.Longest)
	}
	if !s.LastActive.Equal(DayOf(day(2026, 3, 7))) {
		t.Errorf("last active = %v, want the check-in day", s.LastActive)
	}
}

func TestCheckIn_Milestones(t *testing.T) {
	s := Streak{}
	start := day(2026, 1, 1)
	var hits []int
	for i := 0; i < 30; i++ {
		var res CheckInResult
		s, res = CheckIn(DefaultConfig(), s, start.AddDate(0, 0, i))
		if res.Milestone != 0 {
			hits = append(hits, res.Milestone)
		}
	}
	if len(hits) != 2 || hits[0] != 7 || hits[1] != 30 {
		t.Errorf("milestones = %v, want [7 30]", hits)
	}
}

func TestIsBroken(t *testing.T) {
	s, _ := CheckIn(DefaultConfig(), Streak{}, day(2026, 3, 1))
	if s.IsBroken(day(2026, 3, 1)) {
		t.Error("streak should not be broken same day")
	}
	if s.IsBroken(day(2026, 3, 2)) {
		t.Error("streak should not be broken the next day")
	}
	if !s.IsBroken(day(2026, 3, 3)) {
		t.Error("streak should be broken after a missed day")
	}
	if (Streak{}).IsBroken(day(2026, 3, 3)) {
		t.Error("empty streak is never broken")
	}
}

func TestStreakBonusXP(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		days int
		want int
	}{
		{0, 0},
		{1, 10},
		{5, 50},
		{10, 100},
		{15, 100},
	}
	for _, tt := range tests {
		if got := StreakBonusXP(cfg, tt.days); got != tt.want {
			t.Errorf("StreakBonusXP(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 7},
		{6, 7},
		{7, 30},
		{30, 100},
		{100, 0},
	}
	for _, tt := range tests {
		if got := NextMilestone(DefaultConfig(), tt.current); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
