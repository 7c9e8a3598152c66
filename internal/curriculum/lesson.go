package curriculum

// Category represents a drawing skill track.
type Category string

const (
	CategoryLineWork    Category = "line-work"
	CategoryShapesForm  Category = "shapes-and-form"
	CategoryLightShade  Category = "light-and-shading"
	CategoryPerspective Category = "perspective"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryLineWork,
		CategoryShapesForm,
		CategoryLightShade,
		CategoryPerspective,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryLineWork:
		return "Line Work"
	case CategoryShapesForm:
		return "Shapes & Form"
	case CategoryLightShade:
		return "Light & Shading"
	case CategoryPerspective:
		return "Perspective"
	default:
		return string(c)
	}
}

// LessonType distinguishes how a lesson is practiced.
type LessonType string

const (
	TypePractice  LessonType = "practice"
	TypeTheory    LessonType = "theory"
	TypeChallenge LessonType = "challenge"
)

// Difficulty is the target experience level for a lesson.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultStepThreshold is the score a step attempt must reach to
// complete the step, used when a step does not override it.
const DefaultStepThreshold = 0.70

// Step is a single exercise inside a lesson.
type Step struct {
	ID           string
	Title        string
	Instructions string
	DurationMins int
	Required     bool
	// Threshold is the minimum attempt score (0.0-1.0] that completes
	// this step. Zero means DefaultStepThreshold.
	Threshold float64
}

// CompletionThreshold returns the effective score threshold for the step.
func (s Step) CompletionThreshold() float64 {
	if s.Threshold > 0 {
		return s.Threshold
	}
	return DefaultStepThreshold
}

// Lesson is a single drawing lesson node in the curriculum graph.
type Lesson struct {
	ID            string
	Title         string
	Description   string
	Type          LessonType
	Category      Category
	Difficulty    Difficulty
	EstimatedMins int
	XPReward      int
	Steps         []Step
	Prerequisites []string
	Unlocks       []string
}

// RequiredSteps returns the lesson's required steps.
func (l Lesson) RequiredSteps() []Step {
	var out []Step
	for _, s := range l.Steps {
		if s.Required {
			out = append(out, s)
		}
	}
	return out
}

// Step returns the step with the given ID, if present.
func (l Lesson) Step(stepID string) (Step, bool) {
	for _, s := range l.Steps {
		if s.ID == stepID {
			return s, true
		}
	}
	return Step{}, false
}

// Unit is an ordered run of lessons inside a section.
type Unit struct {
	ID        string
	Title     string
	LessonIDs []string
}

// Section is an ordered group of units. Sections gate each other:
// a section opens once the previous one passes the completion threshold.
type Section struct {
	ID    string
	Title string
	Units []Unit
}

// Content bundles everything a curriculum pack provides.
type Content struct {
	Sections []Section
	Lessons  []Lesson
}

// LessonState represents a lesson's state relative to the learner.
type LessonState int

const (
	StateLocked     LessonState = iota // One or more gates not yet satisfied
	StateAvailable                     // Unlocked, not yet started
	StateInProgress                    // At least one step attempted
	StateCompleted                     // All required steps complete
)

// Icon returns the display icon for a lesson state.
func (s LessonState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateInProgress:
		return "✏️"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a lesson state.
func (s LessonState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateInProgress:
		return "In Progress"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
