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
	"github.com/alecrj/atelier/internal/ui/layout"
	"github.com/alecrj/atelier/internal/ui/theme"
)

type rowKind int

const (
	rowSectionHeader rowKind = iota
	rowUnitHeader
	rowLesson
)

type row struct {
	kind    rowKind
	section int
	title   string
	lesson  *curriculum.Lesson
}

// AtlasScreen displays the lesson atlas organized by section and unit.
type AtlasScreen struct {
	tracker      *progress.Tracker
	coachSvc     *coach.Service
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*AtlasScreen)(nil)
var _ screen.KeyHintProvider = (*AtlasScreen)(nil)

// New creates a new AtlasScreen. coachSvc may be nil.
func New(tracker *progress.Tracker, coachSvc *coach.Service) *AtlasScreen {
	graph := tracker.Graph()

	var rows []row
	for si, section := range graph.Sections() {
		rows = append(rows, row{kind: rowSectionHeader, section: si, title: section.Title})
		for _, unit := range section.Units {
			rows = append(rows, row{kind: rowUnitHeader, section: si, title: unit.Title})
			for _, id := range unit.LessonIDs {
				lesson, err := graph.Lesson(id)
				if err != nil {
					continue
				}
				l := lesson
				rows = append(rows, row{kind: rowLesson, section: si, lesson: &l})
			}
		}
	}

	s := &AtlasScreen{
		tracker:  tracker,
		coachSvc: coachSvc,
		rows:     rows,
	}

	// Start on the first lesson that still needs work.
	s.cursor = s.firstActionableRow()

	return s
}

func (s *AtlasScreen) Init() tea.Cmd {
	return nil
}

func (s *AtlasScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSection()
		case "shift+tab":
			s.prevSection()
		case "enter":
			return s, s.selectLesson()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AtlasScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	states := s.tracker.LessonStates()

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowSectionHeader:
			lines = append(lines, s.renderSectionHeader(r, width))
		case rowUnitHeader:
			lines = append(lines, s.renderUnitHeader(r))
		case rowLesson:
			lines = append(lines, s.renderLessonRow(r, states[r.lesson.ID], i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *AtlasScreen) Title() string {
	return "Lesson Atlas"
}

// KeyHints returns the key binding hints for the footer.
func (s *AtlasScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Section"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// firstActionableRow finds the first available or in-progress lesson.
func (s *AtlasScreen) firstActionableRow() int {
	states := s.tracker.LessonStates()
	first := -1
	for i, r := range s.rows {
		if r.kind != rowLesson {
			continue
		}
		if first < 0 {
			first = i
		}
		st := states[r.lesson.ID]
		if st == curriculum.StateAvailable || st == curriculum.StateInProgress {
			return i
		}
	}
	if first < 0 {
		return 0
	}
	return first
}

// moveCursor moves the cursor by delta, skipping headers.
func (s *AtlasScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSection jumps the cursor to the first lesson in the next section.
func (s *AtlasScreen) nextSection() {
	current := s.rows[s.cursor].section
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].section != current {
			s.cursor = i
			return
		}
	}
}

// prevSection jumps the cursor to the first lesson in the previous section.
func (s *AtlasScreen) prevSection() {
	current := s.rows[s.cursor].section
	target := -1
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowLesson && s.rows[i].section != current {
			target = s.rows[i].section
			break
		}
	}
	if target < 0 {
		return
	}
	for i := 0; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].section == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *AtlasScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the headers above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind != rowLesson {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectLesson handles enter on the current lesson.
func (s *AtlasScreen) selectLesson() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLesson || r.lesson == nil {
		return nil
	}

	detail := newLessonDetail(s.tracker, s.coachSvc, *r.lesson)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// renderSectionHeader renders a section header with its completion bar.
func (s *AtlasScreen) renderSectionHeader(r row, width int) string {
	completion := s.tracker.SectionCompletion(r.section)
	name := fmt.Sprintf("%s  %d%%", strings.ToUpper(r.title), int(completion*100))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

// renderUnitHeader renders a unit sub-header.
func (s *AtlasScreen) renderUnitHeader(r row) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 0, 0, 4).
		Render(r.title)
}

// renderLessonRow renders a single lesson row.
func (s *AtlasScreen) renderLessonRow(r row, state curriculum.LessonState, selected bool, width int) string {
	if r.lesson == nil {
		return ""
	}

	icon := state.Icon()
	label := state.Label()
	xp := fmt.Sprintf("%d XP", r.lesson.XPReward)

	padding := 6 // left indent
	iconWidth := 3
	xpWidth := 7
	labelWidth := 11
	spacing := 4
	nameWidth := width - padding - iconWidth - xpWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := r.lesson.Title
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	var nameStyle, xpStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		xpStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch state {
		case curriculum.StateCompleted:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case curriculum.StateInProgress:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		case curriculum.StateAvailable:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		case curriculum.StateLocked:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		default:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			xpStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Text)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("    %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		xpStyle.Render(fmt.Sprintf("%6s", xp)),
		labelStyle.Render(fmt.Sprintf("%11s", label)),
	)
}
