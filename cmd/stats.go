package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/llm"
	"github.com/alecrj/atelier/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress stats and coach spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, tracker, _, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sum := tracker.Summary()
		fmt.Printf("Level %d  (%d/%d XP to next)\n", sum.Level.Level, sum.Level.XPIntoLevel, sum.Level.XPForNextLevel)
		fmt.Printf("Total XP:  %d\n", sum.TotalXP)
		fmt.Printf("Streak:    %d days (longest %d)\n", sum.Streak.Current, sum.Streak.Longest)
		fmt.Printf("Lessons:   %d of %d complete\n", sum.CompletedLessons, sum.TotalLessons)
		fmt.Printf("Badges:    %d of %d earned\n", sum.BadgeCount, sum.TotalBadges)

		week := tracker.Week(time.Now())
		goal := tracker.Settings().DailyGoalMinutes
		fmt.Printf("\nLast 7 days: %d XP, %d lessons, %d attempts, %d active days\n",
			week.TotalXP, week.Lessons, week.Attempts, week.ActiveDays)
		fmt.Printf("Daily goal (%d min) met %d of 7 days\n", goal, week.GoalDays)
		for _, d := range week.Days {
			marker := "  "
			if d.Active {
				marker = "✎ "
			}
			goalMark := ""
			if d.GoalMet {
				goalMark = "  ✓ goal"
			}
			fmt.Printf("  %s%s  %3d XP  %d attempts%s\n", marker, d.Date.Format("Mon Jan 02"), d.XPEarned, d.Attempts, goalMark)
		}

		return printCoachSpend(cmd, st)
	},
}

// printCoachSpend sums recorded coach API usage against the embedded
// pricing table. Models without pricing are listed with a dash.
func printCoachSpend(cmd *cobra.Command, st *store.Store) error {
	reqs, err := st.EventRepo().QueryCoachRequests(cmd.Context(), store.QueryOpts{})
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return nil
	}

	type usage struct {
		requests  int
		inTokens  int
		outTokens int
	}
	byModel := make(map[string]*usage)
	var order []string
	for _, r := range reqs {
		u, ok := byModel[r.Model]
		if !ok {
			u = &usage{}
			byModel[r.Model] = u
			order = append(order, r.Model)
		}
		u.requests++
		u.inTokens += r.InputTokens
		u.outTokens += r.OutputTokens
	}

	fmt.Printf("\nCoach usage (%d requests):\n", len(reqs))
	fmt.Printf("  %-40s %8s %10s %10s %10s\n", "MODEL", "REQS", "INPUT", "OUTPUT", "COST")
	var total float64
	for _, model := range order {
		u := byModel[model]
		costStr := "-"
		if c := llm.LookupCost(model); c != nil {
			cost := c.Cost(u.inTokens, u.outTokens)
			total += cost
			costStr = fmt.Sprintf("$%.4f", cost)
		}
		fmt.Printf("  %-40s %8d %10d %10d %10s\n", model, u.requests, u.inTokens, u.outTokens, costStr)
	}
	fmt.Printf("  %-40s %8s %10s %10s %10s\n", "", "", "", "total", fmt.Sprintf("$%.4f", total))
	return nil
}
