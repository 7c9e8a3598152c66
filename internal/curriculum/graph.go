package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// lessonPos locates a lesson inside the section/unit hierarchy.
type lessonPos struct {
	section int // index into Graph.sections
	unit    int // index into Section.Units
	index   int // index into Unit.LessonIDs
}

// Graph holds the validated curriculum with precomputed indices.
// It is immutable after construction; callers inject it where needed
// instead of going through a package singleton.
type Graph struct {
	sections   []Section
	lessons    []Lesson
	byID       map[string]*Lesson
	byCategory map[Category][]Lesson
	pos        map[string]lessonPos
	roots      []Lesson
	dependents map[string][]string
	topoOrder  []Lesson
	topoIndex  map[string]int
}

// New validates the content and builds the graph, including the
// topological order (Kahn's algorithm). Structural problems are fatal:
// callers should treat a returned *IntegrityError as a startup failure.
func New(c Content) (*Graph, error) {
	if err := validateContent(c); err != nil {
		return nil, err
	}
	return build(c), nil
}

func build(c Content) *Graph {
	g := &Graph{
		sections:   c.Sections,
		lessons:    c.Lessons,
		byID:       make(map[string]*Lesson, len(c.Lessons)),
		byCategory: make(map[Category][]Lesson),
		pos:        make(map[string]lessonPos),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(c.Lessons)),
	}

	for i := range g.lessons {
		g.byID[g.lessons[i].ID] = &g.lessons[i]
	}

	for si, sec := range g.sections {
		for ui, unit := range sec.Units {
			for li, id := range unit.LessonIDs {
				g.pos[id] = lessonPos{section: si, unit: ui, index: li}
			}
		}
	}

	// Reverse edges.
	for i := range g.lessons {
		for _, prereqID := range g.lessons[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.lessons[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm) over the prerequisite DAG.
	inDegree := make(map[string]int, len(g.lessons))
	for i := range g.lessons {
		inDegree[g.lessons[i].ID] = len(g.lessons[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Lesson
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *g.byID[id])

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, l := range g.topoOrder {
		g.topoIndex[l.ID] = i
	}

	for i := range g.lessons {
		if len(g.lessons[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.lessons[i])
		}
	}

	// Group by category, sorted by topological position.
	for i := range g.lessons {
		l := g.lessons[i]
		g.byCategory[l.Category] = append(g.byCategory[l.Category], l)
	}
	for cat, ls := range g.byCategory {
		sorted := slices.Clone(ls)
		sort.Slice(sorted, func(i, j int) bool {
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byCategory[cat] = sorted
	}

	return g
}

// Lesson returns a lesson by ID, or an error if not found.
func (g *Graph) Lesson(id string) (Lesson, error) {
	l, ok := g.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// Lessons returns all lessons.
func (g *Graph) Lessons() []Lesson {
	return slices.Clone(g.lessons)
}

// Sections returns the section hierarchy in order.
func (g *Graph) Sections() []Section {
	return slices.Clone(g.sections)
}

// ByCategory returns all lessons in a category, in topological order.
func (g *Graph) ByCategory(cat Category) []Lesson {
	return slices.Clone(g.byCategory[cat])
}

// Roots returns all lessons with no prerequisites.
func (g *Graph) Roots() []Lesson {
	return slices.Clone(g.roots)
}

// FirstLesson returns the seeded entry point: the first lesson of the
// first unit of the first section. It is always unlocked.
func (g *Graph) FirstLesson() Lesson {
	id := g.sections[0].Units[0].LessonIDs[0]
	return *g.byID[id]
}

// Prerequisites returns the direct prerequisite lessons for a lesson ID.
func (g *Graph) Prerequisites(id string) []Lesson {
	l, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Lesson, 0, len(l.Prerequisites))
	for _, prereqID := range l.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns lessons that directly depend on the given lesson ID.
func (g *Graph) Dependents(id string) []Lesson {
	depIDs := g.dependents[id]
	result := make([]Lesson, 0, len(depIDs))
	for _, depID := range depIDs {
		if l, ok := g.byID[depID]; ok {
			result = append(result, *l)
		}
	}
	return result
}

// TopologicalOrder returns all lessons in a valid topological order.
func (g *Graph) TopologicalOrder() []Lesson {
	return slices.Clone(g.topoOrder)
}

// SectionLessonCount returns the total number of lessons in a section.
func (g *Graph) SectionLessonCount(sectionIndex int) int {
	count := 0
	for _, unit := range g.sections[sectionIndex].Units {
		count += len(unit.LessonIDs)
	}
	return count
}
