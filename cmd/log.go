package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var logMinutes int

var logCmd = &cobra.Command{
	Use:   "log <lesson-id> <step-id> <score>",
	Short: "Record a practice attempt from the command line",
	Long: `Record a self-scored attempt at a lesson exercise without opening
the TUI. Score is an integer percentage from 0 to 100.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID, stepID := args[0], args[1]
		pct, err := strconv.Atoi(args[2])
		if err != nil || pct < 0 || pct > 100 {
			return fmt.Errorf("score must be an integer from 0 to 100, got %q", args[2])
		}

		st, tracker, _, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := tracker.RecordStepAttempt(cmd.Context(), lessonID, stepID, float64(pct)/100, logMinutes*60)
		if err != nil {
			return err
		}

		if res.StepPassed {
			fmt.Printf("Passed %s/%s at %d%%\n", lessonID, stepID, pct)
		} else {
			fmt.Printf("Logged %s/%s at %d%% (not passed yet)\n", lessonID, stepID, pct)
		}
		if res.XPAwarded > 0 {
			fmt.Printf("  +%d XP", res.XPAwarded)
			if res.StreakBonus > 0 {
				fmt.Printf(" (includes %d streak bonus)", res.StreakBonus)
			}
			fmt.Println()
		}
		if res.LessonCompleted {
			fmt.Printf("  Lesson %s complete!\n", lessonID)
		}
		if res.LeveledUp {
			fmt.Printf("  Level up! Now level %d\n", res.Level.Level)
		}
		if len(res.UnlockedLessons) > 0 {
			fmt.Printf("  Unlocked: %s\n", strings.Join(res.UnlockedLessons, ", "))
		}
		for _, b := range res.Badges {
			fmt.Printf("  Badge earned: %s %s\n", b.Icon, b.Title)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVar(&logMinutes, "minutes", 0, "Minutes spent on the attempt")
}
