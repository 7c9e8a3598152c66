package practice

import (
	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/progress"
)

// attemptResultMsg carries the outcome of a recorded attempt.
type attemptResultMsg struct {
	Result progress.Result
	Err    error
}

// coachFeedbackMsg carries async coach feedback for the last attempt.
type coachFeedbackMsg struct {
	Feedback *coach.Feedback
	Err      error
}
