package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/router"
	"github.com/alecrj/atelier/internal/screen"
	"github.com/alecrj/atelier/internal/store"
	"github.com/alecrj/atelier/internal/ui/layout"
	"github.com/alecrj/atelier/internal/ui/theme"
)

type journalLoadedMsg struct {
	Lessons []store.LessonEventRecord
	Err     error
}

// JournalScreen displays the weekly practice summary and recent
// lesson completions.
type JournalScreen struct {
	tracker      *progress.Tracker
	eventRepo    store.EventRepo
	lessons      []store.LessonEventRecord
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

// New creates a new JournalScreen.
func New(tracker *progress.Tracker, eventRepo store.EventRepo) *JournalScreen {
	return &JournalScreen{
		tracker:   tracker,
		eventRepo: eventRepo,
	}
}

func (s *JournalScreen) Init() tea.Cmd {
	return func() tea.Msg {
		lessons, err := s.eventRepo.QueryLessonEvents(context.Background(), store.QueryOpts{Limit: 30})
		return journalLoadedMsg{Lessons: lessons, Err: err}
	}
}

func (s *JournalScreen) Title() string {
	return "Journal"
}

func (s *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journalLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.lessons = msg.Lessons
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.lessons)-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *JournalScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading journal...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderWeek(width))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(s.renderLessonLog(width, height))
	return b.String()
}

// renderWeek draws the trailing seven days with a bar per day.
func (s *JournalScreen) renderWeek(width int) string {
	week := s.tracker.Week(time.Now())

	maxXP := 1
	for _, day := range week.Days {
		if day.XPEarned > maxXP {
			maxXP = day.XPEarned
		}
	}

	const barHeight = 5
	var rows [barHeight]string
	for level := barHeight; level >= 1; level-- {
		var cells []string
		for _, day := range week.Days {
			filled := day.XPEarned*barHeight >= level*maxXP && day.XPEarned > 0
			if filled {
				cells = append(cells, lipgloss.NewStyle().Foreground(theme.Secondary).Render(" ██ "))
			} else {
				cells = append(cells, lipgloss.NewStyle().Foreground(theme.Border).Render(" ·· "))
			}
		}
		rows[barHeight-level] = strings.Join(cells, "")
	}

	var labels []string
	for _, day := range week.Days {
		name := day.Date.Format("Mon")[:2]
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if day.Active {
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		labels = append(labels, style.Render(fmt.Sprintf(" %-3s", name)))
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(labels, "")))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("This week: %d XP · %d lessons · %d attempts · %d active days · goal met %d/7",
		week.TotalXP, week.Lessons, week.Attempts, week.ActiveDays, week.GoalDays)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(totals))
	b.WriteString("\n")

	return b.String()
}

// renderLessonLog lists recent lesson completions, newest first.
func (s *JournalScreen) renderLessonLog(width, height int) string {
	if len(s.lessons) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No lessons completed yet")
	}

	maxVisible := height - 14
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(s.lessons)-1 {
		start = len(s.lessons) - 1
	}
	end := start + maxVisible
	if end > len(s.lessons) {
		end = len(s.lessons)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		rec := s.lessons[i]
		dateStr := rec.Timestamp.Format("Jan 02")
		xp := rec.XPAwarded
		line := fmt.Sprintf("  %s  %-30s %+5d XP", dateStr, rec.LessonTitle, xp)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.lessons) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(s.lessons)-end)))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
