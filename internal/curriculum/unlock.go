package curriculum

// UnlockConfig holds the tunable gating rules. The defaults mirror the
// shipped product values; they are product decisions, not invariants.
type UnlockConfig struct {
	// SectionUnlockThreshold is the fraction of a section's lessons that
	// must be completed before the next section opens.
	SectionUnlockThreshold float64
}

// DefaultUnlockConfig returns the shipped gating configuration.
func DefaultUnlockConfig() UnlockConfig {
	return UnlockConfig{
		SectionUnlockThreshold: 0.80,
	}
}

// IsUnlocked reports whether a lesson is open to the learner given the
// set of completed lesson IDs. A lesson is unlocked when:
//
//   - every prerequisite is completed, and
//   - its position is reachable: lesson n>1 in a unit needs lesson n-1
//     of that unit completed; a unit after the first needs the previous
//     unit fully completed; a section after the first needs the previous
//     section at or above the completion threshold.
//
// Unknown lesson IDs are locked.
func (g *Graph) IsUnlocked(id string, completed map[string]bool, cfg UnlockConfig) bool {
	l, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range l.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return g.positionReachable(g.pos[id], completed, cfg)
}

func (g *Graph) positionReachable(p lessonPos, completed map[string]bool, cfg UnlockConfig) bool {
	if !g.sectionReachable(p.section, completed, cfg) {
		return false
	}

	unit := g.sections[p.section].Units[p.unit]

	// Lessons within a unit unlock strictly in order.
	if p.index > 0 {
		return completed[unit.LessonIDs[p.index-1]]
	}

	// First lesson of the first unit: gated by the section alone.
	if p.unit == 0 {
		return true
	}

	// First lesson of a later unit: previous unit must be fully complete.
	prev := g.sections[p.section].Units[p.unit-1]
	for _, id := range prev.LessonIDs {
		if !completed[id] {
			return false
		}
	}
	return true
}

func (g *Graph) sectionReachable(sectionIndex int, completed map[string]bool, cfg UnlockConfig) bool {
	if sectionIndex == 0 {
		return true
	}
	return g.SectionCompletion(sectionIndex-1, completed) >= cfg.SectionUnlockThreshold
}

// SectionCompletion returns the completed fraction of a section's lessons.
func (g *Graph) SectionCompletion(sectionIndex int, completed map[string]bool) float64 {
	total := g.SectionLessonCount(sectionIndex)
	if total == 0 {
		return 0
	}
	done := 0
	for _, unit := range g.sections[sectionIndex].Units {
		for _, id := range unit.LessonIDs {
			if completed[id] {
				done++
			}
		}
	}
	return float64(done) / float64(total)
}

// UnlockedSet computes the full set of unlocked lesson IDs for the given
// completed set. Completed lessons are always members: completion implies
// the lesson was reachable when it was done, and unlocks never revert.
func (g *Graph) UnlockedSet(completed map[string]bool, cfg UnlockConfig) map[string]bool {
	unlocked := make(map[string]bool)
	for _, l := range g.topoOrder {
		if completed[l.ID] || g.IsUnlocked(l.ID, completed, cfg) {
			unlocked[l.ID] = true
		}
	}
	return unlocked
}

// AvailableLessons returns lessons that are unlocked but not yet
// completed, in topological order.
func (g *Graph) AvailableLessons(completed map[string]bool, cfg UnlockConfig) []Lesson {
	var result []Lesson
	for _, l := range g.topoOrder {
		if !completed[l.ID] && g.IsUnlocked(l.ID, completed, cfg) {
			result = append(result, l)
		}
	}
	return result
}
