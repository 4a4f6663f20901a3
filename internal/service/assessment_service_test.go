package service

import (
	"testing"

	"uplevelsite/internal/model"
)

func perfectAnswers() model.Answers {
	return model.Answers{
		"q1": "more-50",
		"q2": "yes",
		"q3": "time",
		"q4": "independent",
		"q5": "aligned",
		"q6": "advanced",
		"q7": "definitely",
		"q8": "We run a cleaning company",
		"q9": "3m-10m",
	}
}

func TestScore(t *testing.T) {
	svc := NewAssessmentService()

	tests := []struct {
		name    string
		answers model.Answers
		want    int
	}{
		{"perfect", perfectAnswers(), 100},
		{"empty", model.Answers{}, 0},
		{"single question", model.Answers{"q1": "10-25"}, 10},
		{"unknown value ignored", model.Answers{"q1": "bogus"}, 0},
		{"free text ignored", model.Answers{"q8": "anything at all"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Score(tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreIgnoresUnscoredQuestions(t *testing.T) {
	svc := NewAssessmentService()

	a := perfectAnswers()
	base := svc.Score(a)

	a["q3"] = "people"
	a["q2a"] = "docs"
	if got := svc.Score(a); got != base {
		t.Errorf("changing unscored answers moved the score: %d -> %d", base, got)
	}
}

func TestQualified(t *testing.T) {
	svc := NewAssessmentService()

	tests := []struct {
		name   string
		mutate func(model.Answers)
		want   bool
	}{
		{"baseline", func(model.Answers) {}, true},
		{"low revenue", func(a model.Answers) { a["q9"] = "under-500k" }, false},
		{"skeptic who won't invest", func(a model.Answers) { a["q6"] = "skeptic"; a["q7"] = "not-likely" }, false},
		{"skeptic who would invest", func(a model.Answers) { a["q6"] = "skeptic" }, true},
		{"cashflow and won't invest", func(a model.Answers) { a["q3"] = "cashflow"; a["q7"] = "not-likely" }, false},
		{"cashflow but would invest", func(a model.Answers) { a["q3"] = "cashflow" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := perfectAnswers()
			tt.mutate(a)
			if got := svc.Qualified(a); got != tt.want {
				t.Errorf("Qualified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeedback(t *testing.T) {
	svc := NewAssessmentService()

	fb := svc.Feedback(model.Answers{
		"q1": "more-50",
		"q2": "no",
		"q4": "come-to-me",
		"q5": "silos",
		"q6": "aware",
		"q3": "time",
	})

	if len(fb.Strengths) == 0 {
		t.Error("expected strengths for heavy manual workload")
	}
	if len(fb.Improvements) != 3 {
		t.Errorf("improvements = %d, want 3", len(fb.Improvements))
	}
	if len(fb.QuickWins) == 0 {
		t.Error("expected quick wins")
	}
}

func TestFeedbackIsNeverNil(t *testing.T) {
	svc := NewAssessmentService()

	fb := svc.Feedback(model.Answers{})
	if fb.Strengths == nil || fb.Improvements == nil || fb.QuickWins == nil {
		t.Error("feedback lists must encode as JSON arrays, not null")
	}
}

func TestFeedbackDeterministic(t *testing.T) {
	svc := NewAssessmentService()

	a := perfectAnswers()
	first := svc.Feedback(a)
	second := svc.Feedback(a)

	if len(first.Strengths) != len(second.Strengths) ||
		len(first.Improvements) != len(second.Improvements) ||
		len(first.QuickWins) != len(second.QuickWins) {
		t.Error("feedback should be deterministic for identical answers")
	}
}

func TestDisqualificationTips(t *testing.T) {
	svc := NewAssessmentService()

	tips := svc.DisqualificationTips(model.Answers{
		"q2": "no",
		"q4": "come-to-me",
		"q6": "skeptic",
		"q9": "under-500k",
		"q3": "cashflow",
	})
	if len(tips) != 3 {
		t.Errorf("tips = %d, want cap of 3", len(tips))
	}

	if got := svc.DisqualificationTips(model.Answers{}); len(got) != 0 {
		t.Errorf("tips for empty answers = %d, want 0", len(got))
	}
}
