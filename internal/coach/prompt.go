package coach

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/alecrj/atelier/internal/curriculum"
)

const feedbackSystemPrompt = `You are a patient drawing instructor reviewing a learner's practice attempt. The learner self-scored the attempt against the exercise's goal.

Instructions:
- Ground every observation in the exercise instructions and the score. Do not invent details about the drawing you cannot know.
- Tips must be physical and actionable: grip, stroke speed, drawing from the shoulder, ghosting before committing. Never "practice more".
- If the attempt passed, focus tips on consistency and the next level of difficulty.
- If the score dropped from the learner's best, acknowledge it without alarm. Plateaus are normal.
- Keep everything short. This is read in a terminal between attempts.`

var feedbackUserTemplate = template.Must(template.New("feedback").Parse(`Lesson: {{.LessonTitle}} ({{.Category}})
Exercise: {{.StepTitle}}
Instructions: {{.Instructions}}

Attempt #{{.Attempts}}: scored {{printf "%.2f" .Score}} (pass threshold {{printf "%.2f" .Threshold}}, personal best {{printf "%.2f" .BestScore}})
Passed: {{.Passed}}`))

func buildFeedbackMessage(ac AttemptContext) (string, error) {
	var buf bytes.Buffer
	if err := feedbackUserTemplate.Execute(&buf, ac); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const warmupSystemPrompt = `You are a drawing instructor suggesting a short warmup drill before a practice session.

Instructions:
- The drill needs only pen and paper. No references, no special tools.
- Target the learner's weakest skill category unless their recent lessons suggest otherwise.
- Describe exactly what to draw and how many repetitions. Vague prompts like "draw some lines" are useless.
- The category field must be one of the listed category IDs, verbatim.`

// buildWarmupMessage constructs the user message from the learner context.
func buildWarmupMessage(lc LearnerContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learner level: %d\n", lc.Level)
	fmt.Fprintf(&b, "Streak: %d days\n", lc.StreakDays)

	b.WriteString("Recently completed lessons:\n")
	if len(lc.RecentLessons) == 0 {
		b.WriteString("None yet\n")
	} else {
		for _, l := range lc.RecentLessons {
			fmt.Fprintf(&b, "- %s\n", l)
		}
	}

	if lc.WeakestSkill != "" {
		fmt.Fprintf(&b, "Weakest skill: %s (level %d)\n", lc.WeakestSkill, lc.SkillLevel)
	}
	if lc.Difficulty != "" {
		fmt.Fprintf(&b, "Preferred difficulty: %s\n", lc.Difficulty)
	}

	b.WriteString("\nCategory IDs:\n")
	for _, c := range curriculum.AllCategories() {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	return b.String()
}
