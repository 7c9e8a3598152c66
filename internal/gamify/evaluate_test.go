package gamify

import (
	"strings"
	"testing"

	"github.com/alecrj/atelier/internal/curriculum"
)

func seedEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	g, err := curriculum.New(curriculum.Seed())
	if err != nil {
		t.Fatalf("build seed graph: %v", err)
	}
	e, err := NewEvaluator(g, SeedBadges(), DefaultConfig())
	if err != nil {
		t.Fatalf("build evaluator: %v", err)
	}
	return e
}

func TestNewEvaluator_SeedCatalogValid(t *testing.T) {
	seedEvaluator(t)
}

func TestNewEvaluator_RejectsUnknownLesson(t *testing.T) {
	g, _ := curriculum.New(curriculum.Seed())
	badges := []Badge{{
		ID:          "bogus",
		Title:       "Bogus",
		Requirement: Requirement{Kind: ReqCompleteLesson, LessonID: "no-such-lesson"},
	}}
	_, err := NewEvaluator(g, badges, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for unknown lesson reference, got nil")
	}
	if !strings.Contains(err.Error(), "no-such-lesson") {
		t.Errorf("error should name the missing lesson, got: %v", err)
	}
}

func TestNewEvaluator_RejectsUnknownSkill(t *testing.T) {
	g, _ := curriculum.New(curriculum.Seed())
	badges := []Badge{{
		ID:          "bogus",
		Title:       "Bogus",
		Requirement: Requirement{Kind: ReqSkillLevel, SkillID: "origami", Level: 2},
	}}
	if _, err := NewEvaluator(g, badges, DefaultConfig()); err == nil {
		t.Fatal("expected error for unknown skill, got nil")
	}
}

func TestNewEvaluator_CollectsAllProblems(t *testing.T) {
	g, _ := curriculum.New(curriculum.Seed())
	badges := []Badge{
		{ID: "a", Requirement: Requirement{Kind: ReqLessonCount, Count: 0}},
		{ID: "a", Requirement: Requirement{Kind: ReqStreakDays, Days: -1}},
		{ID: "b", Requirement: Requirement{Kind: "mystery"}},
	}
	_, err := NewEvaluator(g, badges, DefaultConfig())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"non-positive lesson count", "duplicate badge ID", "unknown requirement kind"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
}

func TestEvaluate_FirstLessonBadge(t *testing.T) {
	e := seedEvaluator(t)
	st := State{
		Completed:      map[string]bool{"warmup-strokes": true},
		CompletedCount: 1,
		TotalXP:        50,
		Held:           map[string]bool{},
	}
	earned, bonus := e.Evaluate(st)
	if len(earned) != 1 || earned[0].ID != "first-marks" {
		t.Fatalf("earned = %v, want [first-marks]", badgeIDs(earned))
	}
	if bonus != 25 {
		t.Errorf("bonus = %d, want 25", bonus)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	e := seedEvaluator(t)
	st := State{
		Completed:      map[string]bool{"warmup-strokes": true},
		CompletedCount: 1,
		Held:           map[string]bool{"first-marks": true},
	}
	earned, bonus := e.Evaluate(st)
	if len(earned) != 0 || bonus != 0 {
		t.Errorf("held badge re-awarded: %v bonus=%d", badgeIDs(earned), bonus)
	}
}

func TestEvaluate_RewardXPChainsIntoXPBadge(t *testing.T) {
	e := seedEvaluator(t)
	// 990 XP is below the 1000 threshold, but the streak badge's 75 XP
	// reward pushes past it in the same evaluation.
	st := State{
		Completed:  map[string]bool{},
		StreakDays: 7,
		TotalXP:    990,
		Held:       map[string]bool{},
	}
	earned, bonus := e.Evaluate(st)
	ids := badgeIDs(earned)
	if len(ids) != 2 || ids[0] != "week-streak" || ids[1] != "xp-1000" {
		t.Fatalf("earned = %v, want [week-streak xp-1000]", ids)
	}
	if bonus != 75+100 {
		t.Errorf("bonus = %d, want 175", bonus)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	e := seedEvaluator(t)
	st := State{
		Completed:      map[string]bool{"warmup-strokes": true, "shape-builds": true},
		CompletedCount: 6,
		StreakDays:     7,
		TotalXP:        500,
		SkillLevels:    map[string]int{"line-work": 3},
		Held:           map[string]bool{},
	}
	first, firstBonus := e.Evaluate(st)
	for i := 0; i < 5; i++ {
		again, againBonus := e.Evaluate(st)
		if len(again) != len(first) || againBonus != firstBonus {
			t.Fatalf("evaluation not deterministic: %v vs %v", badgeIDs(first), badgeIDs(again))
		}
		for j := range again {
			if again[j].ID != first[j].ID {
				t.Fatalf("award order changed: %v vs %v", badgeIDs(first), badgeIDs(again))
			}
		}
	}
}

func TestEvaluate_SkillLevelBadge(t *testing.T) {
	e := seedEvaluator(t)
	st := State{
		Completed:   map[string]bool{},
		SkillLevels: map[string]int{"light-and-shading": 3},
		Held:        map[string]bool{},
	}
	earned, _ := e.Evaluate(st)
	ids := badgeIDs(earned)
	if len(ids) != 1 || ids[0] != "shading-adept" {
		t.Errorf("earned = %v, want [shading-adept]", ids)
	}
}

func badgeIDs(badges []Badge) []string {
	ids := make([]string, len(badges))
	for i, b := range badges {
		ids[i] = b.ID
	}
	return ids
}
