package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/progress"
)

var goalDifficulty string

var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or set your daily practice goal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, _, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 0 && goalDifficulty == "" {
			s := tracker.Settings()
			week := tracker.Week(time.Now())
			fmt.Printf("Daily goal: %d minutes (met %d of the last 7 days)\n", s.DailyGoalMinutes, week.GoalDays)
			fmt.Printf("Preferred difficulty: %s\n", s.PreferredDifficulty)
			return nil
		}

		var update progress.Settings
		if len(args) == 1 {
			minutes, err := strconv.Atoi(args[0])
			if err != nil || minutes <= 0 {
				return fmt.Errorf("minutes must be a positive integer, got %q", args[0])
			}
			update.DailyGoalMinutes = minutes
		}
		update.PreferredDifficulty = goalDifficulty

		if err := tracker.UpdateSettings(cmd.Context(), update); err != nil {
			return err
		}
		s := tracker.Settings()
		fmt.Printf("Daily goal: %d minutes, difficulty %s\n", s.DailyGoalMinutes, s.PreferredDifficulty)
		return nil
	},
}

func init() {
	goalCmd.Flags().StringVar(&goalDifficulty, "difficulty", "", "Preferred difficulty (beginner, intermediate, advanced)")
}
