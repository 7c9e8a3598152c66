package badges

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alecrj/atelier/internal/gamify"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/router"
	"github.com/alecrj/atelier/internal/screen"
	"github.com/alecrj/atelier/internal/ui/layout"
	"github.com/alecrj/atelier/internal/ui/theme"
)

type filter int

const (
	filterAll filter = iota
	filterEarned
	filterLocked
)

var filterLabels = []string{"All", "Earned", "Locked"}

// BadgesScreen displays the badge collection.
type BadgesScreen struct {
	tracker      *progress.Tracker
	filter       filter
	scrollOffset int
}

var _ screen.Screen = (*BadgesScreen)(nil)
var _ screen.KeyHintProvider = (*BadgesScreen)(nil)

// New creates a new BadgesScreen.
func New(tracker *progress.Tracker) *BadgesScreen {
	return &BadgesScreen{tracker: tracker}
}

func (s *BadgesScreen) Init() tea.Cmd {
	return nil
}

func (s *BadgesScreen) Title() string {
	return "Badges"
}

func (s *BadgesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.filter = (s.filter + 1) % 3
			s.scrollOffset = 0
		case "shift+tab":
			s.filter = (s.filter + 2) % 3
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *BadgesScreen) View(width, height int) string {
	catalog := s.tracker.BadgeCatalog()
	earned := s.earnedCount(catalog)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned %d of %d badges\n", earned, len(catalog))))
	b.WriteString("\n")

	// Filter tabs.
	var tabs []string
	for i, label := range filterLabels {
		if filter(i) == s.filter {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing here yet — keep drawing"))
		return b.String()
	}

	maxVisible := (height - 10) / 2
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	if start > len(filtered)-1 {
		start = len(filtered) - 1
	}
	end := start + maxVisible
	if end > len(filtered) {
		end = len(filtered)
	}

	for i := start; i < end; i++ {
		badge := filtered[i]
		b.WriteString(s.renderBadge(badge, width))
	}

	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}

	return b.String()
}

func (s *BadgesScreen) renderBadge(badge gamify.Badge, width int) string {
	unlockedAt, held := s.tracker.BadgeUnlockedAt(badge.ID)

	var title, sub string
	if held {
		title = fmt.Sprintf("  %s %-28s %s", badge.Icon, badge.Title, unlockedAt.Format("Jan 02, 2006"))
		sub = fmt.Sprintf("      %s · +%d XP", badge.Description, badge.XPReward)
	} else {
		title = fmt.Sprintf("  🔒 %-28s", badge.Title)
		sub = fmt.Sprintf("      %s", badge.Description)
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	subStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !held {
		titleStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render(title)) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, subStyle.Render(sub)) + "\n"
}

func (s *BadgesScreen) filtered() []gamify.Badge {
	catalog := s.tracker.BadgeCatalog()
	if s.filter == filterAll {
		return catalog
	}
	var out []gamify.Badge
	for _, badge := range catalog {
		_, held := s.tracker.BadgeUnlockedAt(badge.ID)
		if (s.filter == filterEarned) == held {
			out = append(out, badge)
		}
	}
	return out
}

func (s *BadgesScreen) earnedCount(catalog []gamify.Badge) int {
	count := 0
	for _, badge := range catalog {
		if _, held := s.tracker.BadgeUnlockedAt(badge.ID); held {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
