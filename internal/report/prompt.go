package report

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a career coach evaluating a short multiple-choice skill assessment.

Rules:
- Judge each answer yourself; the correct answers are not given to you.
- Unanswered questions count as incorrect.
- Scores are whole percentages from 0 to 100.
- Break proficiency down by the skills the questions cover.
- Career readiness reflects both the assessment and the user's stated background.
- Recommend concrete skills and at most 3 learning paths, numbered from 1.
- Write the summary in the second person, in two or three sentences.`

func buildUserMessage(in EvaluationInput) string {
	var b strings.Builder

	b.WriteString("User profile:\n")
	b.WriteString(in.Profile.Describe())

	b.WriteString("\n\nAssessment:\n")
	for i, q := range in.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		fmt.Fprintf(&b, "   Options: %s\n", strings.Join(q.Options, " | "))
		if a, ok := in.Answers[q.ID]; ok {
			fmt.Fprintf(&b, "   Answer: %s\n", a)
		} else {
			b.WriteString("   Answer: (skipped)\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
