package model

// Question kinds.
const (
	KindSelect = "select"
	KindText   = "text"
)

// Option is one selectable answer. Options without a point value simply
// contribute nothing to the score.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Score int    `json:"score,omitempty"`
}

// Condition makes a question visible only when another question was
// answered with one of the listed values.
type Condition struct {
	QuestionID string   `json:"questionId"`
	Values     []string `json:"values"`
}

// Question is one entry of the readiness assessment. The catalog is static.
type Question struct {
	ID          string     `json:"id"`
	Prompt      string     `json:"question"`
	Kind        string     `json:"type"`
	Hint        string     `json:"hint,omitempty"`
	Options     []Option   `json:"options,omitempty"`
	Conditional *Condition `json:"conditional,omitempty"`
}

// Answers maps question ids to the selected option value or free text.
// Missing keys are treated as unanswered, never as an error.
type Answers map[string]string

// Questions is the readiness assessment catalog.
var Questions = []Question{
	{
		ID:     "q1",
		Prompt: "How much time do you and your team spend each week on repetitive, manual tasks?",
		Kind:   KindSelect,
		Hint:   "Add up hours across your whole team. Think: data entry, copying info between systems, sending routine emails, scheduling, invoice processing, etc.",
		Options: []Option{
			{Label: "Less than 10 hours", Value: "less-10", Score: 5},
			{Label: "10-25 hours", Value: "10-25", Score: 10},
			{Label: "25-50 hours", Value: "25-50", Score: 15},
			{Label: "More than 50 hours", Value: "more-50", Score: 20},
		},
	},
	{
		ID:     "q2",
		Prompt: "Do you have documented processes for your core operations?",
		Kind:   KindSelect,
		Hint:   "SOPs, checklists, training docs — anything that explains how to do a task without asking someone.",
		Options: []Option{
			{Label: "No, most things are in people's heads", Value: "no", Score: 0},
			{Label: "Partially — some things are written down", Value: "partial", Score: 6},
			{Label: "Yes, we have SOPs for most key processes", Value: "yes", Score: 12},
		},
	},
	{
		ID:          "q2a",
		Prompt:      "Where are your processes documented?",
		Kind:        KindSelect,
		Conditional: &Condition{QuestionID: "q2", Values: []string{"partial", "yes"}},
		Options: []Option{
			{Label: "Notion, Google Docs, or similar", Value: "docs"},
			{Label: "Shared drives or folders", Value: "drives"},
			{Label: "Project management tool (Asana, Monday, etc.)", Value: "pm-tool"},
			{Label: "Physical documents or scattered locations", Value: "scattered"},
		},
	},
	{
		ID:     "q3",
		Prompt: "What's the biggest bottleneck to growing your business right now?",
		Kind:   KindSelect,
		Options: []Option{
			{Label: "Finding and training good people", Value: "people"},
			{Label: "My own time and bandwidth", Value: "time"},
			{Label: "Generating enough leads or sales", Value: "leads"},
			{Label: "Cash flow or capital", Value: "cashflow"},
			{Label: "Something else", Value: "other"},
		},
	},
	{
		ID:     "q4",
		Prompt: "When your team encounters a problem, what usually happens?",
		Kind:   KindSelect,
		Hint:   "Think about day-to-day operational issues — customer complaints, scheduling conflicts, equipment problems.",
		Options: []Option{
			{Label: "They come to me for direction", Value: "come-to-me", Score: 4},
			{Label: "They try to solve it but often need my input", Value: "need-input", Score: 8},
			{Label: "They handle most issues independently", Value: "independent", Score: 12},
		},
	},
	{
		ID:     "q5",
		Prompt: "How aligned is your team on priorities and goals?",
		Kind:   KindSelect,
		Options: []Option{
			{Label: "Not very — people work in silos", Value: "silos", Score: 4},
			{Label: "Somewhat — but communication gaps exist", Value: "gaps", Score: 8},
			{Label: "Very aligned — everyone knows the priorities", Value: "aligned", Score: 12},
		},
	},
	{
		ID:     "q6",
		Prompt: "What's your current situation with AI?",
		Kind:   KindSelect,
		Options: []Option{
			{Label: "I'm skeptical — not sure AI is right for my business", Value: "skeptic", Score: 0},
			{Label: "I know AI could help but I haven't done anything yet", Value: "aware", Score: 10},
			{Label: "I've tried AI tools for small things like writing or research", Value: "tried", Score: 12},
			{Label: "I'm actively looking for help implementing AI in my business", Value: "looking", Score: 16},
			{Label: "We've already built automations or have technical staff handling it", Value: "advanced", Score: 16},
		},
	},
	{
		ID:     "q7",
		Prompt: "If you had a clear path to save time or increase profits using AI, how likely are you to invest in it?",
		Kind:   KindSelect,
		Options: []Option{
			{Label: "Not likely — I'm skeptical or budget-constrained", Value: "not-likely", Score: 0},
			{Label: "Somewhat likely — I'd need to see proof first", Value: "somewhat", Score: 5},
			{Label: "Likely — I'm open if the ROI is clear", Value: "likely", Score: 10},
			{Label: "Very likely — I'm actively looking for solutions", Value: "very-likely", Score: 15},
			{Label: "Definitely — I'm ready to invest now", Value: "definitely", Score: 20},
		},
	},
	{
		ID:     "q8",
		Prompt: "Describe your business in one sentence.",
		Kind:   KindText,
		Hint:   `Example: "We run a residential cleaning company with 15 employees serving the Denver metro area."`,
	},
	{
		ID:     "q9",
		Prompt: "What's your approximate annual revenue?",
		Kind:   KindSelect,
		Options: []Option{
			{Label: "Under $500k", Value: "under-500k", Score: 0},
			{Label: "$500k - $1M", Value: "500k-1m", Score: 4},
			{Label: "$1M - $3M", Value: "1m-3m", Score: 6},
			{Label: "$3M - $10M", Value: "3m-10m", Score: 8},
			{Label: "Over $10M", Value: "over-10m", Score: 8},
		},
	},
}

// QuestionByID looks a question up in the catalog.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// OptionLabel resolves a stored option value to its human label, falling
// back to the raw value for free text or unknown options.
func OptionLabel(questionID, value string) string {
	q, ok := QuestionByID(questionID)
	if !ok {
		return value
	}
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// VisibleQuestions filters the catalog down to the questions whose
// visibility condition is satisfied by the given answers.
func VisibleQuestions(answers Answers) []Question {
	visible := make([]Question, 0, len(Questions))
	for _, q := range Questions {
		if q.Conditional != nil && !conditionMet(q.Conditional, answers) {
			continue
		}
		visible = append(visible, q)
	}
	return visible
}

func conditionMet(c *Condition, answers Answers) bool {
	got := answers[c.QuestionID]
	for _, v := range c.Values {
		if got == v {
			return true
		}
	}
	return false
}
