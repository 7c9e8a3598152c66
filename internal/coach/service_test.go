package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/llm"
)

func testAttempt() AttemptContext {
	return AttemptContext{
		LessonID:     "straight-lines",
		LessonTitle:  "Straight Lines",
		StepID:       "point-to-point",
		StepTitle:    "Point to Point",
		Category:     curriculum.CategoryLineWork,
		Instructions: "Place two dots and connect them with a single confident stroke.",
		Score:        0.65,
		BestScore:    0.72,
		Attempts:     4,
		Passed:       false,
		Threshold:    0.70,
	}
}

func TestFeedbackOnAttempt(t *testing.T) {
	resp := json.RawMessage(`{"summary":"Close to the threshold, strokes are wobbling near the end point.","tips":["Ghost the stroke twice before committing","Draw from the shoulder, not the wrist"],"encouragement":"Your first half of each line is already clean."}`)
	mock := llm.NewMockProvider(llm.MockReply{Content: resp})
	s := NewService(mock, DefaultConfig())

	fb, err := s.FeedbackOnAttempt(context.Background(), testAttempt())
	if err != nil {
		t.Fatalf("FeedbackOnAttempt failed: %v", err)
	}
	if fb.Summary == "" {
		t.Error("summary is empty")
	}
	if len(fb.Tips) != 2 {
		t.Errorf("tips = %d, want 2", len(fb.Tips))
	}

	if len(mock.Requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(mock.Requests))
	}
	req := mock.Requests[0]
	if req.Schema != FeedbackSchema {
		t.Error("request did not carry the feedback schema")
	}
	userMsg := req.Prompt
	for _, want := range []string{"Straight Lines", "Point to Point", "0.65", "0.70"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestFeedbackOnAttempt_TipsClamped(t *testing.T) {
	resp := json.RawMessage(`{"summary":"ok","tips":["a","b","c","d","e"],"encouragement":"ok"}`)
	mock := llm.NewMockProvider(llm.MockReply{Content: resp})
	s := NewService(mock, DefaultConfig())

	fb, err := s.FeedbackOnAttempt(context.Background(), testAttempt())
	if err != nil {
		t.Fatalf("FeedbackOnAttempt failed: %v", err)
	}
	if len(fb.Tips) != maxTips {
		t.Errorf("tips = %d, want %d", len(fb.Tips), maxTips)
	}
}

func TestFeedbackOnAttempt_MissingSummary(t *testing.T) {
	resp := json.RawMessage(`{"summary":"","tips":["a"],"encouragement":"ok"}`)
	mock := llm.NewMockProvider(llm.MockReply{Content: resp})
	s := NewService(mock, DefaultConfig())

	if _, err := s.FeedbackOnAttempt(context.Background(), testAttempt()); err == nil {
		t.Error("expected error for empty summary")
	}
}

func TestSuggestWarmup(t *testing.T) {
	resp := json.RawMessage(`{"title":"Ghosted ellipse ladder","description":"Draw a column of 10 ellipses, ghosting each twice before committing.","duration_minutes":5,"category":"shapes-and-form"}`)
	mock := llm.NewMockProvider(llm.MockReply{Content: resp})
	s := NewService(mock, DefaultConfig())

	lc := LearnerContext{
		Level:         3,
		StreakDays:    6,
		RecentLessons: []string{"Circles & Ovals"},
		WeakestSkill:  curriculum.CategoryShapesForm,
		SkillLevel:    2,
	}

	ws, err := s.SuggestWarmup(context.Background(), lc)
	if err != nil {
		t.Fatalf("SuggestWarmup failed: %v", err)
	}
	if ws.Category != string(curriculum.CategoryShapesForm) {
		t.Errorf("category = %q, want %q", ws.Category, curriculum.CategoryShapesForm)
	}
	if ws.DurationMinutes != 5 {
		t.Errorf("duration = %d, want 5", ws.DurationMinutes)
	}

	userMsg := mock.Requests[0].Prompt
	if !strings.Contains(userMsg, "shapes-and-form") {
		t.Errorf("user message missing category list:\n%s", userMsg)
	}
}

func TestSuggestWarmup_BadCategoryFallsBack(t *testing.T) {
	resp := json.RawMessage(`{"title":"Line sprints","description":"Fill a page with parallel lines at steady speed.","duration_minutes":3,"category":"Line Work"}`)
	mock := llm.NewMockProvider(llm.MockReply{Content: resp})
	s := NewService(mock, DefaultConfig())

	lc := LearnerContext{WeakestSkill: curriculum.CategoryLineWork}
	ws, err := s.SuggestWarmup(context.Background(), lc)
	if err != nil {
		t.Fatalf("SuggestWarmup failed: %v", err)
	}
	if ws.Category != string(curriculum.CategoryLineWork) {
		t.Errorf("category = %q, want %q", ws.Category, curriculum.CategoryLineWork)
	}
}

func TestSuggestWarmup_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	if _, err := s.SuggestWarmup(context.Background(), LearnerContext{}); err == nil {
		t.Error("expected error when provider is unavailable")
	}
}
