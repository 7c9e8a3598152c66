package curriculum

import (
	"fmt"
	"slices"
	"strings"
)

// IntegrityError reports structural problems in a curriculum pack.
// It is fatal: the application refuses to start on broken content
// rather than failing per-user at runtime.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("curriculum validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateContent performs all structural checks on the content.
// Returns an *IntegrityError describing every problem found, or nil.
func validateContent(c Content) error {
	var errs []string

	idSet := make(map[string]bool, len(c.Lessons))
	categorySet := make(map[Category]bool)

	// Duplicate lesson IDs.
	for _, l := range c.Lessons {
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
		categorySet[l.Category] = true
	}

	// Dangling prerequisite and unlock references.
	for _, l := range c.Lessons {
		for _, prereqID := range l.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent prerequisite %q", l.ID, prereqID))
			}
		}
		for _, unlockID := range l.Unlocks {
			if !idSet[unlockID] {
				errs = append(errs, fmt.Sprintf("lesson %q unlocks nonexistent lesson %q", l.ID, unlockID))
			}
		}
	}

	// Unlock edges must mirror prerequisites: if A unlocks B, then B must
	// list A as a prerequisite. Keeping the two representations consistent
	// at load time means the resolver never has to reconcile them.
	byID := make(map[string]Lesson, len(c.Lessons))
	for _, l := range c.Lessons {
		byID[l.ID] = l
	}
	for _, l := range c.Lessons {
		for _, unlockID := range l.Unlocks {
			target, ok := byID[unlockID]
			if !ok {
				continue // already reported as dangling
			}
			if !slices.Contains(target.Prerequisites, l.ID) {
				errs = append(errs, fmt.Sprintf("lesson %q unlocks %q but %q does not list it as a prerequisite", l.ID, unlockID, unlockID))
			}
		}
	}

	// Cycle detection using Kahn's algorithm.
	inDegree := make(map[string]int, len(c.Lessons))
	adjList := make(map[string][]string)
	for _, l := range c.Lessons {
		inDegree[l.ID] = len(l.Prerequisites)
		for _, prereqID := range l.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], l.ID)
		}
	}

	var queue []string
	for _, l := range c.Lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(c.Lessons) {
		var cycleNodes []string
		for _, l := range c.Lessons {
			if inDegree[l.ID] > 0 {
				cycleNodes = append(cycleNodes, l.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving lessons: %s", strings.Join(cycleNodes, ", ")))
	}

	// At least one root.
	hasRoot := false
	for _, l := range c.Lessons {
		if len(l.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root lessons found (at least one lesson must have no prerequisites)")
	}

	// All declared categories are populated.
	for _, cat := range AllCategories() {
		if !categorySet[cat] {
			errs = append(errs, fmt.Sprintf("category %q has no lessons", cat))
		}
	}

	// Hierarchy checks: every lesson belongs to exactly one unit, every
	// unit reference resolves, no empty sections or units.
	errs = append(errs, validateHierarchy(c, idSet)...)

	// Per-lesson field checks.
	for _, l := range c.Lessons {
		prefix := fmt.Sprintf("lesson %q", l.ID)
		if l.XPReward <= 0 {
			errs = append(errs, fmt.Sprintf("%s: XPReward must be > 0, got %d", prefix, l.XPReward))
		}
		if len(l.Steps) == 0 {
			errs = append(errs, fmt.Sprintf("%s: must have at least one step", prefix))
		}
		stepIDs := make(map[string]bool, len(l.Steps))
		hasRequired := false
		for _, s := range l.Steps {
			if stepIDs[s.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate step ID %q", prefix, s.ID))
			}
			stepIDs[s.ID] = true
			if s.Required {
				hasRequired = true
			}
			if s.Threshold < 0 || s.Threshold > 1.0 {
				errs = append(errs, fmt.Sprintf("%s step %q: threshold must be in [0, 1.0], got %f", prefix, s.ID, s.Threshold))
			}
		}
		if len(l.Steps) > 0 && !hasRequired {
			errs = append(errs, fmt.Sprintf("%s: must have at least one required step", prefix))
		}
	}

	if len(errs) > 0 {
		return &IntegrityError{Problems: errs}
	}
	return nil
}

func validateHierarchy(c Content, idSet map[string]bool) []string {
	var errs []string

	if len(c.Sections) == 0 {
		errs = append(errs, "content must have at least one section")
		return errs
	}

	placed := make(map[string]string) // lesson ID → unit ID
	sectionIDs := make(map[string]bool)
	unitIDs := make(map[string]bool)

	for _, sec := range c.Sections {
		if sectionIDs[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
		}
		sectionIDs[sec.ID] = true
		if len(sec.Units) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no units", sec.ID))
		}
		for _, unit := range sec.Units {
			if unitIDs[unit.ID] {
				errs = append(errs, fmt.Sprintf("duplicate unit ID: %q", unit.ID))
			}
			unitIDs[unit.ID] = true
			if len(unit.LessonIDs) == 0 {
				errs = append(errs, fmt.Sprintf("unit %q has no lessons", unit.ID))
			}
			for _, id := range unit.LessonIDs {
				if !idSet[id] {
					errs = append(errs, fmt.Sprintf("unit %q references nonexistent lesson %q", unit.ID, id))
					continue
				}
				if prev, ok := placed[id]; ok {
					errs = append(errs, fmt.Sprintf("lesson %q appears in both unit %q and unit %q", id, prev, unit.ID))
				}
				placed[id] = unit.ID
			}
		}
	}

	for id := range idSet {
		if _, ok := placed[id]; !ok {
			errs = append(errs, fmt.Sprintf("lesson %q is not placed in any unit", id))
		}
	}

	return errs
}
