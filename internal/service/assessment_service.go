package service

import "uplevelsite/internal/model"

// AssessmentService scores readiness assessments and generates feedback.
type AssessmentService struct{}

// NewAssessmentService creates an AssessmentService.
func NewAssessmentService() *AssessmentService {
	return &AssessmentService{}
}

// Feedback groups the generated insights by kind.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	QuickWins    []string `json:"quickWins"`
}

// Score sums the point values of the selected options. Unanswered and
// unscored questions contribute nothing.
func (s *AssessmentService) Score(answers model.Answers) int {
	score := 0
	for _, q := range model.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, o := range q.Options {
			if o.Value == answer {
				score += o.Score
				break
			}
		}
	}
	return score
}

// Qualified reports whether the lead passes the disqualification rules.
func (s *AssessmentService) Qualified(answers model.Answers) bool {
	// Revenue under $500k
	if answers["q9"] == "under-500k" {
		return false
	}
	// AI skeptic who won't invest
	if answers["q6"] == "skeptic" && answers["q7"] == "not-likely" {
		return false
	}
	// Cash flow problems and won't invest
	if answers["q3"] == "cashflow" && answers["q7"] == "not-likely" {
		return false
	}
	return true
}

// Feedback generates answer-specific strengths, improvements and quick wins.
func (s *AssessmentService) Feedback(answers model.Answers) Feedback {
	fb := Feedback{
		Strengths:    []string{},
		Improvements: []string{},
		QuickWins:    []string{},
	}

	switch answers["q1"] {
	case "more-50":
		fb.Strengths = append(fb.Strengths, "Significant time on repetitive tasks means high automation ROI potential")
		fb.QuickWins = append(fb.QuickWins, "With 50+ hours of manual work weekly, even a 30% reduction through automation could save 15+ hours/week")
	case "25-50":
		fb.Strengths = append(fb.Strengths, "Significant time on repetitive tasks means high automation ROI potential")
		fb.QuickWins = append(fb.QuickWins, "25-50 hours of manual work is a strong foundation for automation. Focus on the most repetitive tasks first.")
	case "less-10":
		fb.Improvements = append(fb.Improvements, "Low volume of repetitive tasks. Automation ROI may be limited until you scale.")
	}

	switch answers["q2"] {
	case "yes":
		fb.Strengths = append(fb.Strengths, "Strong process documentation. You can automate what you can document.")
	case "partial":
		fb.Strengths = append(fb.Strengths, "Some processes already documented gives you a head start on automation")
		fb.QuickWins = append(fb.QuickWins, "Prioritize documenting your highest-volume repetitive tasks first")
	case "no":
		fb.Improvements = append(fb.Improvements, "Processes live in people's heads. This needs to change before AI can help.")
		fb.QuickWins = append(fb.QuickWins, "Start by documenting your top 3 most frequent tasks. Even rough bullet points beat nothing.")
	}

	switch answers["q4"] {
	case "independent":
		fb.Strengths = append(fb.Strengths, "Team operates independently, so automation won't create bottlenecks")
	case "need-input":
		fb.Strengths = append(fb.Strengths, "Team is semi-autonomous, which is a good foundation for automation")
	case "come-to-me":
		fb.Improvements = append(fb.Improvements, "You're the bottleneck. AI can help, but decision frameworks come first.")
		fb.QuickWins = append(fb.QuickWins, "Pick one recurring decision and create a simple rule your team can follow without you")
	}

	switch answers["q5"] {
	case "aligned":
		fb.Strengths = append(fb.Strengths, "Team is aligned on priorities, so automation projects will have buy-in")
	case "gaps":
		fb.Improvements = append(fb.Improvements, "Communication gaps exist. Automation can help, but alignment matters.")
	case "silos":
		fb.Improvements = append(fb.Improvements, "Team works in silos, which limits what automation can do")
	}

	switch answers["q6"] {
	case "looking", "advanced":
		fb.Strengths = append(fb.Strengths, "Already engaged with AI, so you know what's possible")
	case "tried":
		fb.Strengths = append(fb.Strengths, "You've experimented with AI and are ready to go deeper")
	case "aware":
		fb.Strengths = append(fb.Strengths, "Open to AI. You just need the right guidance.")
	}

	switch answers["q3"] {
	case "time":
		fb.QuickWins = append(fb.QuickWins, "Your bandwidth is the bottleneck. Automation should target tasks that eat your time.")
	case "people":
		fb.QuickWins = append(fb.QuickWins, "Hiring is hard. Automation can multiply your existing team's capacity instead.")
	case "leads":
		fb.QuickWins = append(fb.QuickWins, "Lead generation can be partially automated: follow-up sequences, qualification, outreach.")
	}

	return fb
}

// DisqualificationTips returns up to three concrete next steps for leads
// that did not qualify.
func (s *AssessmentService) DisqualificationTips(answers model.Answers) []string {
	tips := []string{}

	if answers["q2"] == "no" {
		tips = append(tips, "Start by documenting your top 3 processes. Even rough notes in Google Docs beats having everything in people's heads.")
	}
	if answers["q4"] == "come-to-me" {
		tips = append(tips, "Pick one recurring decision your team asks you about and create a simple rule they can follow without you.")
	}
	if answers["q6"] == "skeptic" {
		tips = append(tips, "Try using ChatGPT for one small task this week — drafting an email, summarizing meeting notes. See what clicks.")
	}
	if answers["q9"] == "under-500k" {
		tips = append(tips, "Focus on revenue first. AI becomes a multiplier once you have volume to work with.")
	}
	if answers["q3"] == "cashflow" {
		tips = append(tips, "Tighten up cash flow before investing in new systems. AI has real ROI, but it's not free.")
	}

	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}
