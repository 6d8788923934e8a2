package assessment

// Question is a single multiple-choice assessment item.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// AnswerMap maps a question ID to the selected option text.
type AnswerMap map[int]string

// Clone returns an independent copy of the map.
func (a AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// defaultQuestions is the built-in question bank used when no question
// service is configured.
var defaultQuestions = []Question{
	{
		ID:   1,
		Text: "What is the primary purpose of the `useState` hook in React?",
		Options: []string{
			"To manage side effects",
			"To manage state in functional components",
			"To fetch data",
			"To create context",
		},
	},
	{
		ID:   2,
		Text: "In TypeScript, which type is used to represent a value that can be one of several types?",
		Options: []string{
			"Interface",
			"Enum",
			"Union Type",
			"Any",
		},
	},
	{
		ID:   3,
		Text: "What does the `git clone` command do?",
		Options: []string{
			"Creates a new branch",
			"Stages changes for a commit",
			"Creates a local copy of a remote repository",
			"Pushes changes to a remote repository",
		},
	},
}

// DefaultQuestions returns a copy of the built-in question bank.
func DefaultQuestions() []Question {
	return cloneQuestions(defaultQuestions)
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = Question{
			ID:      q.ID,
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
	}
	return out
}
