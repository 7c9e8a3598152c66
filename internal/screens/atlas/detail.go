package atlas

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/router"
	"github.com/alecrj/atelier/internal/screen"
	"github.com/alecrj/atelier/internal/screens/practice"
	"github.com/alecrj/atelier/internal/ui/layout"
	"github.com/alecrj/atelier/internal/ui/theme"
)

// LessonDetailScreen shows details for a single lesson.
type LessonDetailScreen struct {
	tracker  *progress.Tracker
	coachSvc *coach.Service
	lesson   curriculum.Lesson
}

var _ screen.Screen = (*LessonDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LessonDetailScreen)(nil)

func newLessonDetail(tracker *progress.Tracker, coachSvc *coach.Service, lesson curriculum.Lesson) *LessonDetailScreen {
	return &LessonDetailScreen{tracker: tracker, coachSvc: coachSvc, lesson: lesson}
}

func (d *LessonDetailScreen) Init() tea.Cmd { return nil }
func (d *LessonDetailScreen) Title() string { return d.lesson.Title }

func (d *LessonDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		state := d.tracker.LessonState(d.lesson.ID)
		if state == curriculum.StateAvailable || state == curriculum.StateInProgress {
			practiceScreen := practice.New(d.tracker, d.coachSvc, d.lesson)
			return d, func() tea.Msg {
				return router.PushScreenMsg{Screen: practiceScreen}
			}
		}
	}
	return d, nil
}

func (d *LessonDetailScreen) KeyHints() []layout.KeyHint {
	state := d.tracker.LessonState(d.lesson.ID)
	if state == curriculum.StateAvailable || state == curriculum.StateInProgress {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Practice"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LessonDetailScreen) View(width, height int) string {
	l := d.lesson
	state := d.tracker.LessonState(l.ID)
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	// Lesson name + state.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", state.Icon(), l.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", state.Label())))
	b.WriteString("\n\n")

	if l.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(l.Description))
		b.WriteString("\n\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Track:      ") + valStyle.Render(curriculum.CategoryDisplayName(l.Category)) + "\n")
	b.WriteString(dimStyle.Render("  Type:       ") + valStyle.Render(string(l.Type)) + "\n")
	b.WriteString(dimStyle.Render("  Difficulty: ") + valStyle.Render(string(l.Difficulty)) + "\n")
	b.WriteString(dimStyle.Render("  Reward:     ") + valStyle.Render(fmt.Sprintf("%d XP", l.XPReward)) + "\n")
	if l.EstimatedMins > 0 {
		b.WriteString(dimStyle.Render("  Time:       ") + valStyle.Render(fmt.Sprintf("~%d min", l.EstimatedMins)) + "\n")
	}
	b.WriteString("\n")

	// Exercises with per-step progress.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Exercises"))
	b.WriteString("\n")

	for _, step := range l.Steps {
		icon := "○"
		style := dimStyle
		detail := fmt.Sprintf("pass at %.0f%%", step.CompletionThreshold()*100)

		if sp, ok := d.tracker.StepProgress(l.ID, step.ID); ok {
			detail = fmt.Sprintf("best %.0f%% in %d tries", sp.BestScore*100, sp.Attempts)
			if sp.Passed {
				icon = "●"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
		}

		optional := ""
		if !step.Required {
			optional = " (optional)"
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %s%s", icon, step.Title, optional)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  — %s", detail)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Prerequisites.
	prereqs := d.tracker.Graph().Prerequisites(l.ID)
	if len(prereqs) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Prerequisites"))
		b.WriteString("\n")
		for _, p := range prereqs {
			icon := "○"
			style := dimStyle
			if d.tracker.LessonState(p.ID) == curriculum.StateCompleted {
				icon = "●"
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			b.WriteString(style.Render(fmt.Sprintf("  %s %s", icon, p.Title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Dependents (what this lesson unlocks).
	deps := d.tracker.Graph().Dependents(l.ID)
	if len(deps) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  Unlocks"))
		b.WriteString("\n")
		for _, dep := range deps {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  → %s", dep.Title)))
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
