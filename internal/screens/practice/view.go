package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/alecrj/atelier/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phaseFeedback:
		return s.renderFeedback(width, height)
	case phaseCompleted:
		return s.renderCompleted(width, height)
	default:
		return s.renderEntering(width, height)
	}
}

// renderEntering renders the active exercise with the score input.
func (s *PracticeScreen) renderEntering(width, height int) string {
	step := s.lesson.Steps[s.stepIdx]

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Exercise %d/%d: %s", s.stepIdx+1, len(s.lesson.Steps), step.Title))

	status := "new"
	if sp, ok := s.tracker.StepProgress(s.lesson.ID, step.ID); ok {
		status = fmt.Sprintf("best %.0f%% in %d tries", sp.BestScore*100, sp.Attempts)
		if sp.Passed {
			status += " ✓"
		}
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(status)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(4).
		Render(step.Instructions))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("~%d min · pass at %.0f%%", step.DurationMins, step.CompletionThreshold()*100)
	if !step.Required {
		meta += " · optional"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(4).
		Render(meta))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.
		PaddingLeft(4).
		Render("Draw it on paper, then rate how close you got."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		PaddingLeft(4).
		Render("Score: " + s.input.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(4).
			Render(s.errMsg))
	}

	return b.String()
}

// renderFeedback renders the attempt outcome plus coach notes.
func (s *PracticeScreen) renderFeedback(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	res := s.lastResult
	if res.StepPassed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Passed at %.0f%%!", s.lastScore*100)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("%.0f%% — not there yet", s.lastScore*100)))
	}
	b.WriteString("\n\n")

	b.WriteString(s.renderRewards(width))
	b.WriteString(s.renderCoach(width))

	return b.String()
}

// renderCompleted renders the lesson completion celebration.
func (s *PracticeScreen) renderCompleted(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("✦ Lesson complete: %s ✦", s.lesson.Title)))
	b.WriteString("\n\n")

	b.WriteString(s.renderRewards(width))
	b.WriteString(s.renderCoach(width))

	return b.String()
}

// renderRewards lists XP, streak, unlocks, badges and level-ups.
func (s *PracticeScreen) renderRewards(width int) string {
	res := s.lastResult
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	if res.XPAwarded > 0 {
		line := fmt.Sprintf("+%d XP", res.XPAwarded)
		if res.StreakBonus > 0 {
			line += fmt.Sprintf(" (includes %d streak bonus)", res.StreakBonus)
		}
		b.WriteString(center.Foreground(theme.Secondary).Render(line))
		b.WriteString("\n")
	}

	if res.Streak.Extended {
		b.WriteString(center.Foreground(theme.Accent).
			Render(fmt.Sprintf("✎ Streak: %d days", s.tracker.Summary().Streak.Current)))
		b.WriteString("\n")
	}

	if res.LeveledUp {
		b.WriteString(center.Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Level up! Now level %d", res.Level.Level)))
		b.WriteString("\n")
	}

	for _, id := range res.UnlockedLessons {
		if lesson, err := s.tracker.Graph().Lesson(id); err == nil {
			b.WriteString(center.Foreground(theme.Text).
				Render(fmt.Sprintf("🔓 Unlocked: %s", lesson.Title)))
			b.WriteString("\n")
		}
	}

	for _, badge := range res.Badges {
		b.WriteString(center.Foreground(theme.Primary).
			Render(fmt.Sprintf("%s  %s earned!", badge.Icon, badge.Title)))
		b.WriteString("\n")
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// renderCoach shows the async coach feedback when it lands.
func (s *PracticeScreen) renderCoach(width int) string {
	if s.coachPending {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Coach is looking at your attempt...")
	}
	if s.feedback == nil {
		return ""
	}

	contentWidth := width - 16
	if contentWidth > 60 {
		contentWidth = 60
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		PaddingLeft(8).
		Render("Coach"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(8).
		Render(s.feedback.Summary))
	b.WriteString("\n")
	for _, tip := range s.feedback.Tips {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.TextDim).
			PaddingLeft(8).
			Render("• " + tip))
		b.WriteString("\n")
	}
	if s.feedback.Encouragement != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Accent).
			Italic(true).
			PaddingLeft(8).
			Render(s.feedback.Encouragement))
		b.WriteString("\n")
	}
	return b.String()
}
