package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/llm"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/store"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Talk to the AI drawing coach",
}

var coachWarmupCmd = &cobra.Command{
	Use:   "warmup",
	Short: "Get a warmup drill suited to your weakest skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, _, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("no LLM provider configured (set ATELIER_LLM_PROVIDER or an API key): %w", err)
		}
		svc := coach.NewService(provider, coach.DefaultConfig())

		sum := tracker.Summary()
		weakest, weakestLevel := weakestSkill(tracker)

		recents, err := st.EventRepo().QueryLessonEvents(cmd.Context(), store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		titles := make([]string, 0, len(recents))
		for _, r := range recents {
			titles = append(titles, r.LessonTitle)
		}

		suggestion, err := svc.SuggestWarmup(cmd.Context(), coach.LearnerContext{
			Level:         sum.Level.Level,
			StreakDays:    sum.Streak.Current,
			RecentLessons: titles,
			WeakestSkill:  weakest,
			SkillLevel:    weakestLevel,
			Difficulty:    tracker.Settings().PreferredDifficulty,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d min, %s)\n\n", suggestion.Title, suggestion.DurationMinutes,
			curriculum.CategoryDisplayName(curriculum.Category(suggestion.Category)))
		fmt.Println(suggestion.Description)
		return nil
	},
}

// weakestSkill picks the category with the lowest skill level, breaking
// ties by progress inside the level.
func weakestSkill(tracker *progress.Tracker) (curriculum.Category, int) {
	cats := curriculum.AllCategories()
	weakest := cats[0]
	low := tracker.SkillLevel(string(weakest))
	for _, cat := range cats[1:] {
		info := tracker.SkillLevel(string(cat))
		if info.Level < low.Level || (info.Level == low.Level && info.XPIntoLevel < low.XPIntoLevel) {
			weakest, low = cat, info
		}
	}
	return weakest, low.Level
}

func init() {
	coachCmd.AddCommand(coachWarmupCmd)
}
