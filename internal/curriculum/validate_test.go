package curriculum

import (
	"strings"
	"testing"
)

func TestValidate_SeedContentPasses(t *testing.T) {
	if _, err := New(Seed()); err != nil {
		t.Fatalf("seed content validation failed: %v", err)
	}
}

// minimalContent builds a valid single-section content covering all
// categories, which individual tests then break in targeted ways.
func minimalContent() Content {
	step := func(id string) []Step {
		return []Step{{ID: id, Title: id, Instructions: "do it", DurationMins: 5, Required: true}}
	}
	return Content{
		Sections: []Section{
			{ID: "s1", Title: "Section 1", Units: []Unit{
				{ID: "u1", Title: "Unit 1", LessonIDs: []string{"a", "b", "c", "d"}},
			}},
		},
		Lessons: []Lesson{
			{ID: "a", Title: "A", Type: TypePractice, Category: CategoryLineWork, Difficulty: DifficultyBeginner, EstimatedMins: 5, XPReward: 50, Steps: step("a1")},
			{ID: "b", Title: "B", Type: TypePractice, Category: CategoryShapesForm, Difficulty: DifficultyBeginner, EstimatedMins: 5, XPReward: 50, Steps: step("b1"), Prerequisites: []string{"a"}},
			{ID: "c", Title: "C", Type: TypePractice, Category: CategoryLightShade, Difficulty: DifficultyBeginner, EstimatedMins: 5, XPReward: 50, Steps: step("c1"), Prerequisites: []string{"b"}},
			{ID: "d", Title: "D", Type: TypePractice, Category: CategoryPerspective, Difficulty: DifficultyBeginner, EstimatedMins: 5, XPReward: 50, Steps: step("d1"), Prerequisites: []string{"c"}},
		},
	}
}

func TestValidate_MinimalContentPasses(t *testing.T) {
	if _, err := New(minimalContent()); err != nil {
		t.Fatalf("minimal content should validate, got: %v", err)
	}
}

func TestValidate_DetectsCycle(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].Prerequisites = []string{"d"}
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidate_DetectsDanglingPrereq(t *testing.T) {
	c := minimalContent()
	c.Lessons[1].Prerequisites = []string{"nonexistent"}
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_DetectsDanglingUnlock(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].Unlocks = []string{"ghost"}
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for dangling unlock, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_UnlockMustMirrorPrerequisite(t *testing.T) {
	c := minimalContent()
	// "a" claims to unlock "d", but "d" only lists "c" as prerequisite.
	c.Lessons[0].Unlocks = []string{"d"}
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for inconsistent unlock edge, got nil")
	}
	if !strings.Contains(err.Error(), "prerequisite") {
		t.Errorf("error should mention prerequisite mismatch, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateLessonID(t *testing.T) {
	c := minimalContent()
	dup := c.Lessons[0]
	c.Lessons = append(c.Lessons, dup)
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidate_RequiresAtLeastOneRoot(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].Prerequisites = []string{"d"} // closes the chain into a cycle
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for no roots, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestValidate_AllCategoriesPopulated(t *testing.T) {
	c := minimalContent()
	c.Lessons[3].Category = CategoryLineWork // perspective now empty
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for empty category, got nil")
	}
	if !strings.Contains(err.Error(), "has no lessons") {
		t.Errorf("error should mention the empty category, got: %v", err)
	}
}

func TestValidate_LessonMustBePlacedInUnit(t *testing.T) {
	c := minimalContent()
	c.Lessons = append(c.Lessons, Lesson{
		ID: "orphan", Title: "Orphan", Type: TypePractice, Category: CategoryLineWork,
		Difficulty: DifficultyBeginner, EstimatedMins: 5, XPReward: 50,
		Steps: []Step{{ID: "o1", Title: "o1", Instructions: "x", DurationMins: 5, Required: true}},
	})
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for unplaced lesson, got nil")
	}
	if !strings.Contains(err.Error(), "orphan") {
		t.Errorf("error should mention the orphan lesson, got: %v", err)
	}
}

func TestValidate_RejectsZeroXPReward(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].XPReward = 0
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for zero XPReward, got nil")
	}
	if !strings.Contains(err.Error(), "XPReward") {
		t.Errorf("error should mention XPReward, got: %v", err)
	}
}

func TestValidate_RejectsStepThresholdOutOfRange(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].Steps[0].Threshold = 1.5
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for threshold > 1.0, got nil")
	}
}

func TestValidate_RequiresOneRequiredStep(t *testing.T) {
	c := minimalContent()
	c.Lessons[0].Steps[0].Required = false
	_, err := New(c)
	if err == nil {
		t.Fatal("expected error for lesson with no required steps, got nil")
	}
	if !strings.Contains(err.Error(), "required step") {
		t.Errorf("error should mention required step, got: %v", err)
	}
}
