package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/router"
	"github.com/alecrj/atelier/internal/screen"
	"github.com/alecrj/atelier/internal/ui/components"
	"github.com/alecrj/atelier/internal/ui/layout"
)

type phase int

const (
	phaseEntering phase = iota
	phaseFeedback
	phaseCompleted
)

// PracticeScreen runs the attempt loop for a single lesson: the learner
// does an exercise on paper, self-scores it, and logs the score.
type PracticeScreen struct {
	tracker  *progress.Tracker
	coachSvc *coach.Service
	lesson   curriculum.Lesson

	stepIdx   int
	input     components.TextInput
	phase     phase
	startTime time.Time

	lastScore    float64
	lastResult   progress.Result
	feedback     *coach.Feedback
	coachPending bool
	errMsg       string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen for the given lesson. coachSvc may be nil.
func New(tracker *progress.Tracker, coachSvc *coach.Service, lesson curriculum.Lesson) *PracticeScreen {
	s := &PracticeScreen{
		tracker:  tracker,
		coachSvc: coachSvc,
		lesson:   lesson,
		input:    newScoreInput(),
	}
	s.stepIdx = s.firstOpenStep()
	return s
}

func newScoreInput() components.TextInput {
	return components.NewTextInput("Score 0-100...", true, 3)
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.startTime = time.Now()
	return s.input.Init()
}

func (s *PracticeScreen) Title() string {
	return s.lesson.Title
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseCompleted:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to atlas"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next exercise"},
			{Key: "Enter", Description: "Log score"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptResultMsg:
		return s.handleAttemptResult(msg)

	case coachFeedbackMsg:
		s.coachPending = false
		if msg.Err == nil {
			s.feedback = msg.Feedback
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseEntering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseFeedback:
		s.phase = phaseEntering
		s.feedback = nil
		s.input = newScoreInput()
		s.stepIdx = s.firstOpenStep()
		s.startTime = time.Now()
		return s, s.input.Init()

	case phaseCompleted:
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg.String() {
	case "tab":
		s.stepIdx = (s.stepIdx + 1) % len(s.lesson.Steps)
		return s, nil
	case "shift+tab":
		s.stepIdx = (s.stepIdx - 1 + len(s.lesson.Steps)) % len(s.lesson.Steps)
		return s, nil
	case "enter":
		return s.submitScore()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) submitScore() (screen.Screen, tea.Cmd) {
	pct, err := s.input.NumericValue()
	if err != nil || pct < 0 || pct > 100 {
		s.input.Submit(false)
		return s, nil
	}
	s.input.Submit(true)

	score := float64(pct) / 100
	step := s.lesson.Steps[s.stepIdx]
	durationSecs := int(time.Since(s.startTime).Seconds())

	return s, func() tea.Msg {
		result, err := s.tracker.RecordStepAttempt(context.Background(), s.lesson.ID, step.ID, score, durationSecs)
		return attemptResultMsg{Result: result, Err: err}
	}
}

func (s *PracticeScreen) handleAttemptResult(msg attemptResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	pct, _ := s.input.NumericValue()
	s.lastScore = float64(pct) / 100
	s.lastResult = msg.Result
	s.errMsg = ""

	if msg.Result.LessonCompleted {
		s.phase = phaseCompleted
	} else {
		s.phase = phaseFeedback
	}

	if s.coachSvc == nil {
		return s, nil
	}
	s.coachPending = true
	return s, s.requestCoachFeedback(s.lesson.Steps[s.stepIdx], s.lastScore, msg.Result)
}

func (s *PracticeScreen) requestCoachFeedback(step curriculum.Step, score float64, result progress.Result) tea.Cmd {
	best := score
	if sp, ok := s.tracker.StepProgress(s.lesson.ID, step.ID); ok {
		best = sp.BestScore
	}
	attempts := 1
	if sp, ok := s.tracker.StepProgress(s.lesson.ID, step.ID); ok {
		attempts = sp.Attempts
	}

	ac := coach.AttemptContext{
		LessonID:     s.lesson.ID,
		LessonTitle:  s.lesson.Title,
		StepID:       step.ID,
		StepTitle:    step.Title,
		Category:     s.lesson.Category,
		Instructions: step.Instructions,
		Score:        score,
		BestScore:    best,
		Attempts:     attempts,
		Passed:       result.StepPassed,
		Threshold:    step.CompletionThreshold(),
	}

	return func() tea.Msg {
		fb, err := s.coachSvc.FeedbackOnAttempt(context.Background(), ac)
		return coachFeedbackMsg{Feedback: fb, Err: err}
	}
}

// firstOpenStep picks the first required step not yet passed, falling
// back to the first step.
func (s *PracticeScreen) firstOpenStep() int {
	for i, step := range s.lesson.Steps {
		if !step.Required {
			continue
		}
		sp, ok := s.tracker.StepProgress(s.lesson.ID, step.ID)
		if !ok || !sp.Passed {
			return i
		}
	}
	return 0
}
