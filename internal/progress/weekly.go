package progress

import "time"

// DayStat is one day of the weekly practice summary.
type DayStat struct {
	Date             time.Time
	Attempts         int
	LessonsCompleted int
	XPEarned         int
	MinutesPracticed int
	Active           bool
	GoalMet          bool
}

// WeekStats summarizes the trailing seven days of practice, oldest
// day first.
type WeekStats struct {
	Days       []DayStat
	TotalXP    int
	Lessons    int
	Attempts   int
	ActiveDays int
	GoalDays   int
}

// Week builds the weekly summary ending on the day of now.
func (t *Tracker) Week(now time.Time) WeekStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	var stats WeekStats
	end := now.UTC()
	for i := 6; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		stat := DayStat{Date: day}
		if d, ok := t.profile.Days[DayKey(day)]; ok {
			stat.Attempts = d.Attempts
			stat.LessonsCompleted = d.LessonsCompleted
			stat.XPEarned = d.XPEarned
			stat.MinutesPracticed = d.Minutes()
			stat.Active = d.Attempts > 0 || d.LessonsCompleted > 0
			stat.GoalMet = d.SecondsPracticed >= t.profile.Settings.DailyGoalMinutes*60
		}
		if stat.Active {
			stats.ActiveDays++
		}
		if stat.GoalMet {
			stats.GoalDays++
		}
		stats.TotalXP += stat.XPEarned
		stats.Lessons += stat.LessonsCompleted
		stats.Attempts += stat.Attempts
		stats.Days = append(stats.Days, stat)
	}
	return stats
}
