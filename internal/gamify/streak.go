package gamify

import "time"

// Streak tracks consecutive days of practice. Days are calendar days in
// UTC so the streak does not depend on the machine's local timezone.
type Streak struct {
	Current int
	Longest int
	// LastActive is the UTC day of the most recent check-in, zero for a
	// profile that has never practiced.
	LastActive time.Time
}

// CheckInResult describes what a check-in did to the streak.
type CheckInResult struct {
	// Extended is true when the streak grew by a day.
	Extended bool
	// Reset is true when a gap broke the streak and it restarted at 1.
	Reset bool
	// Milestone is the milestone reached by this check-in, 0 otherwise.
	Milestone int
}

// DayOf truncates a time to its calendar day in UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn records practice activity at the given time and returns the
// updated streak. A second check-in on the same day is a no-op; the next
// day extends the streak; any longer gap, or a clock that moved
// backwards past the last active day, resets it to 1.
func CheckIn(cfg Config, s Streak, now time.Time) (Streak, CheckInResult) {
	day := DayOf(now)
	var res CheckInResult

	switch {
	case s.LastActive.IsZero():
		s.Current = 1
		res.Extended = true
	case day.Equal(s.LastActive):
		return s, res
	case day.Equal(s.LastActive.AddDate(0, 0, 1)):
		s.Current++
		res.Extended = true
	default:
		s.Current = 1
		res.Reset = true
	}

	s.LastActive = day
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	for _, m := range cfg.StreakMilestones {
		if s.Current == m {
			res.Milestone = m
		}
	}
	return s, res
}

// IsBroken reports whether the streak has lapsed as of now without a
// check-in, meaning the last active day is neither today nor yesterday.
func (s Streak) IsBroken(now time.Time) bool {
	if s.LastActive.IsZero() || s.Current == 0 {
		return false
	}
	day := DayOf(now)
	return day.After(s.LastActive.AddDate(0, 0, 1))
}

// StreakBonusXP returns the daily bonus XP earned at check-in for the
// current streak length.
func StreakBonusXP(cfg Config, streakDays int) int {
	if streakDays <= 0 {
		return 0
	}
	bonus := streakDays * cfg.StreakBonusPerDay
	if bonus > cfg.StreakBonusCap {
		bonus = cfg.StreakBonusCap
	}
	return bonus
}

// NextMilestone returns the next streak milestone above the current
// length, or 0 when past all of them.
func NextMilestone(cfg Config, current int) int {
	for _, m := range cfg.StreakMilestones {
		if m > current {
			return m
		}
	}
	return 0
}
