package assessment

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerwiz/internal/profile"
)

const systemPrompt = `You are a career coach writing a short skill assessment.

Rules:
- Write multiple-choice questions that test the skills the user says they know and the skills they want to learn.
- Each question has exactly 4 options and exactly one correct answer.
- Questions must be self-contained and answerable in under a minute.
- Mix difficulty: start easy and end with the hardest question.
- Number question ids from 1 in order.
- Do not ask about the user's personal details.`

// buildUserMessage describes the profile and how many questions to write.
func buildUserMessage(p profile.UserProfile, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n\n", count)
	b.WriteString("User profile:\n")
	b.WriteString(p.Describe())
	if skills := profile.SkillList(p.KnownSkills); len(skills) > 0 {
		fmt.Fprintf(&b, "\n\nCover each of these known skills at least once where the count allows: %s", strings.Join(skills, ", "))
	}
	return b.String()
}
