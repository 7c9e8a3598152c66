package curriculum

import (
	"testing"
)

func seedGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(Seed())
	if err != nil {
		t.Fatalf("build seed graph: %v", err)
	}
	return g
}

func TestLesson_Exists(t *testing.T) {
	g := seedGraph(t)
	l, err := g.Lesson("warmup-strokes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Title != "Warmup Strokes" {
		t.Errorf("got title %q, want %q", l.Title, "Warmup Strokes")
	}
	if l.Category != CategoryLineWork {
		t.Errorf("got category %q, want %q", l.Category, CategoryLineWork)
	}
}

func TestLesson_NotFound(t *testing.T) {
	g := seedGraph(t)
	if _, err := g.Lesson("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent lesson, got nil")
	}
}

func TestLessons_Count(t *testing.T) {
	g := seedGraph(t)
	if got := len(g.Lessons()); got != 19 {
		t.Errorf("got %d lessons, want 19", got)
	}
}

func TestFirstLesson(t *testing.T) {
	g := seedGraph(t)
	if got := g.FirstLesson().ID; got != "warmup-strokes" {
		t.Errorf("first lesson = %q, want %q", got, "warmup-strokes")
	}
}

func TestRoots(t *testing.T) {
	g := seedGraph(t)
	roots := g.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "warmup-strokes" {
		t.Errorf("root = %q, want warmup-strokes", roots[0].ID)
	}
}

func TestByCategory(t *testing.T) {
	g := seedGraph(t)
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryLineWork, 4},
		{CategoryShapesForm, 6},
		{CategoryLightShade, 4},
		{CategoryPerspective, 5},
	}
	for _, tt := range tests {
		lessons := g.ByCategory(tt.cat)
		if len(lessons) != tt.want {
			t.Errorf("ByCategory(%q): got %d lessons, want %d", tt.cat, len(lessons), tt.want)
		}
	}
}

func TestTopologicalOrder_PrereqsComeFirst(t *testing.T) {
	g := seedGraph(t)
	order := g.TopologicalOrder()
	if len(order) != 19 {
		t.Fatalf("topo order has %d lessons, want 19", len(order))
	}
	index := make(map[string]int, len(order))
	for i, l := range order {
		index[l.ID] = i
	}
	for _, l := range order {
		for _, prereq := range l.Prerequisites {
			if index[prereq] >= index[l.ID] {
				t.Errorf("prerequisite %q ordered after %q", prereq, l.ID)
			}
		}
	}
}

func TestDependents_MirrorsPrerequisites(t *testing.T) {
	g := seedGraph(t)
	deps := g.Dependents("curved-lines")
	ids := make(map[string]bool)
	for _, d := range deps {
		ids[d.ID] = true
	}
	if !ids["line-confidence"] || !ids["circles-ovals"] {
		t.Errorf("dependents of curved-lines = %v, want line-confidence and circles-ovals", ids)
	}
}

func TestPrerequisites(t *testing.T) {
	g := seedGraph(t)
	prereqs := g.Prerequisites("ellipses-depth")
	if len(prereqs) != 2 {
		t.Fatalf("got %d prerequisites, want 2", len(prereqs))
	}
}

func TestSectionLessonCount(t *testing.T) {
	g := seedGraph(t)
	tests := []struct {
		section int
		want    int
	}{
		{0, 7},
		{1, 7},
		{2, 5},
	}
	for _, tt := range tests {
		if got := g.SectionLessonCount(tt.section); got != tt.want {
			t.Errorf("SectionLessonCount(%d) = %d, want %d", tt.section, got, tt.want)
		}
	}
}

func TestStep_Lookup(t *testing.T) {
	g := seedGraph(t)
	l, _ := g.Lesson("warmup-strokes")

	if _, ok := l.Step("ghosting"); !ok {
		t.Error("expected step ghosting to exist")
	}
	if _, ok := l.Step("missing"); ok {
		t.Error("expected step missing to be absent")
	}
}

func TestStep_CompletionThresholdDefault(t *testing.T) {
	s := Step{ID: "x"}
	if got := s.CompletionThreshold(); got != DefaultStepThreshold {
		t.Errorf("default threshold = %f, want %f", got, DefaultStepThreshold)
	}
	s.Threshold = 0.85
	if got := s.CompletionThreshold(); got != 0.85 {
		t.Errorf("threshold = %f, want 0.85", got)
	}
}
