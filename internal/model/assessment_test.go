package model

import "testing"

func TestQuestionCatalog(t *testing.T) {
	if len(Questions) != 10 {
		t.Fatalf("len(Questions) = %d, want 10", len(Questions))
	}

	seen := map[string]bool{}
	for _, q := range Questions {
		if q.ID == "" {
			t.Error("question with empty id")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindSelect:
			if len(q.Options) == 0 {
				t.Errorf("select question %q has no options", q.ID)
			}
		case KindText:
			if len(q.Options) != 0 {
				t.Errorf("text question %q has options", q.ID)
			}
		default:
			t.Errorf("question %q has unknown kind %q", q.ID, q.Kind)
		}
	}
}

func TestMaxScoreIs100(t *testing.T) {
	total := 0
	for _, q := range Questions {
		if q.Conditional != nil {
			continue
		}
		best := 0
		for _, o := range q.Options {
			if o.Score > best {
				best = o.Score
			}
		}
		total += best
	}
	if total != 100 {
		t.Errorf("maximum unconditional score = %d, want 100", total)
	}
}

func TestVisibleQuestions(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		wantQ2a bool
	}{
		{"no documentation", Answers{"q2": "no"}, false},
		{"partial documentation", Answers{"q2": "partial"}, true},
		{"full documentation", Answers{"q2": "yes"}, true},
		{"unanswered", Answers{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := false
			for _, q := range VisibleQuestions(tt.answers) {
				if q.ID == "q2a" {
					got = true
				}
			}
			if got != tt.wantQ2a {
				t.Errorf("q2a visible = %v, want %v", got, tt.wantQ2a)
			}
		})
	}
}

func TestOptionLabel(t *testing.T) {
	tests := []struct {
		questionID string
		value      string
		want       string
	}{
		{"q1", "more-50", "More than 50 hours"},
		{"q9", "under-500k", "Under $500k"},
		{"q8", "We run a cleaning company", "We run a cleaning company"},
		{"q1", "unknown-value", "unknown-value"},
		{"nope", "x", "x"},
	}

	for _, tt := range tests {
		if got := OptionLabel(tt.questionID, tt.value); got != tt.want {
			t.Errorf("OptionLabel(%q, %q) = %q, want %q", tt.questionID, tt.value, got, tt.want)
		}
	}
}
