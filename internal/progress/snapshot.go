package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/alecrj/atelier/internal/gamify"
	"github.com/alecrj/atelier/internal/store"
)

// snapshotVersion is the profile snapshot schema version.
const snapshotVersion = 1

// Restore loads the latest profile snapshot. It returns a nil profile
// when no snapshot exists yet.
func Restore(ctx context.Context, repo store.SnapshotRepo) (*Profile, int64, error) {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil || snap.Data.Profile == nil {
		return nil, 0, nil
	}
	if snap.Data.Version > snapshotVersion {
		return nil, 0, fmt.Errorf("snapshot version %d is newer than supported %d", snap.Data.Version, snapshotVersion)
	}
	return profileFromSnapshot(snap.Data.Profile), snap.Sequence, nil
}

// toSnapshotData converts the live profile to its storage shape.
func (p *Profile) toSnapshotData() *store.ProfileSnapshotData {
	data := &store.ProfileSnapshotData{
		CreatedAt:        p.CreatedAt,
		TotalXP:          p.TotalXP,
		StreakCurrent:    p.Streak.Current,
		StreakLongest:    p.Streak.Longest,
		StreakLastActive: p.Streak.LastActive,
		DailyGoalMinutes: p.Settings.DailyGoalMinutes,
		Difficulty:       p.Settings.PreferredDifficulty,
		Lessons:          make(map[string]store.LessonProgressData, len(p.Lessons)),
		Skills:           make(map[string]store.SkillProgressData, len(p.Skills)),
		Badges:           make(map[string]time.Time, len(p.Badges)),
		Days:             make(map[string]store.DayActivityData, len(p.Days)),
	}

	for id, lp := range p.Lessons {
		ld := store.LessonProgressData{
			Status:        string(lp.Status),
			Steps:         make(map[string]store.StepProgressData, len(lp.Steps)),
			TimeSpentSecs: lp.TimeSpentSecs,
		}
		if !lp.StartedAt.IsZero() {
			started := lp.StartedAt
			ld.StartedAt = &started
		}
		if !lp.LastAttemptAt.IsZero() {
			last := lp.LastAttemptAt
			ld.LastAttemptAt = &last
		}
		if !lp.CompletedAt.IsZero() {
			completed := lp.CompletedAt
			ld.CompletedAt = &completed
		}
		for stepID, sp := range lp.Steps {
			ld.Steps[stepID] = store.StepProgressData{
				Attempts:  sp.Attempts,
				BestScore: sp.BestScore,
				Passed:    sp.Passed,
			}
		}
		data.Lessons[id] = ld
	}
	for id, sp := range p.Skills {
		data.Skills[id] = store.SkillProgressData{XP: sp.XP}
	}
	for id, at := range p.Badges {
		data.Badges[id] = at
	}
	for key, d := range p.Days {
		data.Days[key] = store.DayActivityData{
			Attempts:         d.Attempts,
			LessonsCompleted: d.LessonsCompleted,
			XPEarned:         d.XPEarned,
			SecondsPracticed: d.SecondsPracticed,
		}
	}
	return data
}

// profileFromSnapshot rebuilds the live profile from its storage shape.
func profileFromSnapshot(data *store.ProfileSnapshotData) *Profile {
	p := &Profile{
		CreatedAt: data.CreatedAt,
		TotalXP:   data.TotalXP,
		Streak: gamify.Streak{
			Current:    data.StreakCurrent,
			Longest:    data.StreakLongest,
			LastActive: data.StreakLastActive,
		},
		Settings: Settings{
			DailyGoalMinutes:    data.DailyGoalMinutes,
			PreferredDifficulty: data.Difficulty,
		},
		Lessons: make(map[string]*LessonProgress, len(data.Lessons)),
		Skills:  make(map[string]*SkillProgress, len(data.Skills)),
		Badges:  make(map[string]time.Time, len(data.Badges)),
		Days:    make(map[string]*DayActivity, len(data.Days)),
	}
	// Snapshots written before settings existed have zero values.
	if p.Settings.DailyGoalMinutes == 0 {
		p.Settings.DailyGoalMinutes = DefaultSettings().DailyGoalMinutes
	}
	if p.Settings.PreferredDifficulty == "" {
		p.Settings.PreferredDifficulty = DefaultSettings().PreferredDifficulty
	}

	for id, ld := range data.Lessons {
		lp := &LessonProgress{
			Status:        Status(ld.Status),
			Steps:         make(map[string]*StepProgress, len(ld.Steps)),
			TimeSpentSecs: ld.TimeSpentSecs,
		}
		if ld.StartedAt != nil {
			lp.StartedAt = *ld.StartedAt
		}
		if ld.LastAttemptAt != nil {
			lp.LastAttemptAt = *ld.LastAttemptAt
		}
		if ld.CompletedAt != nil {
			lp.CompletedAt = *ld.CompletedAt
		}
		for stepID, sd := range ld.Steps {
			lp.Steps[stepID] = &StepProgress{
				Attempts:  sd.Attempts,
				BestScore: sd.BestScore,
				Passed:    sd.Passed,
			}
		}
		p.Lessons[id] = lp
	}
	for id, sd := range data.Skills {
		p.Skills[id] = &SkillProgress{XP: sd.XP}
	}
	for id, at := range data.Badges {
		p.Badges[id] = at
	}
	for key, dd := range data.Days {
		p.Days[key] = &DayActivity{
			Attempts:         dd.Attempts,
			LessonsCompleted: dd.LessonsCompleted,
			XPEarned:         dd.XPEarned,
			SecondsPracticed: dd.SecondsPracticed,
		}
	}
	return p
}
