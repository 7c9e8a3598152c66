package gamify

import (
	"fmt"
	"strings"

	"github.com/alecrj/atelier/internal/curriculum"
)

// maxEvaluationRounds caps the award feedback loop. Badge XP rewards can
// satisfy XP-based badges, so evaluation repeats until a round awards
// nothing; the cap guards against a miswritten catalog.
const maxEvaluationRounds = 8

// State is the snapshot of progress the evaluator reads. The tracker
// builds it after every mutation; the evaluator never mutates anything
// but its own copy of the XP total.
type State struct {
	Completed      map[string]bool
	CompletedCount int
	StreakDays     int
	TotalXP        int
	SkillLevels    map[string]int
	Held           map[string]bool
}

// Evaluator checks a badge catalog against progress state. Evaluation is
// deterministic and idempotent: the same state always yields the same
// awards, and already-held badges are never re-awarded.
type Evaluator struct {
	badges []Badge
	cfg    Config
}

// NewEvaluator validates the catalog against the curriculum and returns
// an evaluator. All catalog problems are reported together.
func NewEvaluator(g *curriculum.Graph, badges []Badge, cfg Config) (*Evaluator, error) {
	var problems []string
	seen := make(map[string]bool)
	for _, b := range badges {
		if b.ID == "" {
			problems = append(problems, "badge with empty ID")
			continue
		}
		if seen[b.ID] {
			problems = append(problems, fmt.Sprintf("duplicate badge ID %q", b.ID))
		}
		seen[b.ID] = true

		switch b.Requirement.Kind {
		case ReqCompleteLesson:
			if _, err := g.Lesson(b.Requirement.LessonID); err != nil {
				problems = append(problems, fmt.Sprintf("badge %q references unknown lesson %q", b.ID, b.Requirement.LessonID))
			}
		case ReqLessonCount:
			if b.Requirement.Count < 1 {
				problems = append(problems, fmt.Sprintf("badge %q has non-positive lesson count", b.ID))
			}
			if b.Requirement.Count > len(g.Lessons()) {
				problems = append(problems, fmt.Sprintf("badge %q requires %d lessons but only %d exist", b.ID, b.Requirement.Count, len(g.Lessons())))
			}
		case ReqStreakDays:
			if b.Requirement.Days < 1 {
				problems = append(problems, fmt.Sprintf("badge %q has non-positive streak days", b.ID))
			}
		case ReqTotalXP:
			if b.Requirement.XP < 1 {
				problems = append(problems, fmt.Sprintf("badge %q has non-positive XP requirement", b.ID))
			}
		case ReqSkillLevel:
			if !validCategory(b.Requirement.SkillID) {
				problems = append(problems, fmt.Sprintf("badge %q references unknown skill %q", b.ID, b.Requirement.SkillID))
			}
			if b.Requirement.Level < 1 {
				problems = append(problems, fmt.Sprintf("badge %q has non-positive skill level", b.ID))
			}
		default:
			problems = append(problems, fmt.Sprintf("badge %q has unknown requirement kind %q", b.ID, b.Requirement.Kind))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("badge catalog invalid:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return &Evaluator{badges: badges, cfg: cfg}, nil
}

func validCategory(id string) bool {
	for _, c := range curriculum.AllCategories() {
		if string(c) == id {
			return true
		}
	}
	return false
}

// Badges returns the catalog in award-priority order.
func (e *Evaluator) Badges() []Badge {
	return e.badges
}

// Badge returns a catalog entry by ID.
func (e *Evaluator) Badge(id string) (Badge, bool) {
	for _, b := range e.badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Evaluate returns the badges newly earned by the given state, in catalog
// order, along with the total bonus XP their rewards add. Reward XP feeds
// back into the XP total between rounds so chained XP badges resolve in a
// single call.
func (e *Evaluator) Evaluate(st State) (earned []Badge, bonusXP int) {
	held := make(map[string]bool, len(st.Held))
	for id := range st.Held {
		held[id] = true
	}
	totalXP := st.TotalXP

	for round := 0; round < maxEvaluationRounds; round++ {
		awardedThisRound := false
		for _, b := range e.badges {
			if held[b.ID] {
				continue
			}
			if !e.satisfied(b.Requirement, st, totalXP) {
				continue
			}
			held[b.ID] = true
			earned = append(earned, b)
			bonusXP += b.XPReward
			totalXP += b.XPReward
			awardedThisRound = true
		}
		if !awardedThisRound {
			break
		}
	}
	return earned, bonusXP
}

func (e *Evaluator) satisfied(r Requirement, st State, totalXP int) bool {
	switch r.Kind {
	case ReqCompleteLesson:
		return st.Completed[r.LessonID]
	case ReqLessonCount:
		return st.CompletedCount >= r.Count
	case ReqStreakDays:
		return st.StreakDays >= r.Days
	case ReqTotalXP:
		return totalXP >= r.XP
	case ReqSkillLevel:
		return st.SkillLevels[r.SkillID] >= r.Level
	default:
		return false
	}
}
