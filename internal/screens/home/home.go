package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/router"
	"github.com/alecrj/atelier/internal/screen"
	"github.com/alecrj/atelier/internal/screens/atlas"
	"github.com/alecrj/atelier/internal/screens/badges"
	"github.com/alecrj/atelier/internal/screens/journal"
	"github.com/alecrj/atelier/internal/store"
	"github.com/alecrj/atelier/internal/ui/components"
	"github.com/alecrj/atelier/internal/ui/theme"
)

const easelArt = `   ┌───────┐
   │ ~ ~ ~ │
   │ ~ ◠ ~ │
   │ ~ ~ ~ │
   └───────┘
    ╱     ╲
   ╱       ╲`

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	tracker *progress.Tracker
	menu    components.Menu
	summary progress.Summary
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. coachSvc may be nil when no provider
// is configured.
func New(tracker *progress.Tracker, eventRepo store.EventRepo, coachSvc *coach.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "LESSON ATLAS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: atlas.New(tracker, coachSvc)}
			}
		}},
		{Label: "BADGES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badges.New(tracker)}
			}
		}},
		{Label: "JOURNAL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: journal.New(tracker, eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		tracker: tracker,
		menu:    components.NewMenu(items),
		summary: tracker.Summary(),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	// Refresh stats when returning from a practice run.
	h.summary = h.tracker.Summary()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 100

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render("A T E L I E R"))
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render("learn to draw, one page at a time"))

	if !compact {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(easelArt)))
	}

	sections = append(sections, h.renderStats(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStats draws the level bar and headline numbers.
func (h *HomeScreen) renderStats(width int) string {
	sum := h.summary

	barWidth := min(width-20, 44)
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d", sum.Level.Level),
		sum.Level.Progress,
		true,
		barWidth,
	)

	stats := fmt.Sprintf("✎ %d day streak   %d/%d lessons   %d/%d badges",
		sum.Streak.Current,
		sum.CompletedLessons, sum.TotalLessons,
		sum.BadgeCount, sum.TotalBadges,
	)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
