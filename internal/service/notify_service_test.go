package service

import (
	"context"
	"strings"
	"testing"

	"uplevelsite/internal/config"
	"uplevelsite/internal/model"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Client Onboarding", "Client-Onboarding-Process-Map.pdf"},
		{"Payroll / Benefits!", "Payroll-Benefits-Process-Map.pdf"},
		{"", "Process-Process-Map.pdf"},
		{"---", "Process-Process-Map.pdf"},
	}

	for _, tt := range tests {
		if got := safeFilename(tt.in); got != tt.want {
			t.Errorf("safeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dana Smith", "Dana"},
		{"Dana", "Dana"},
		{"  ", "there"},
	}

	for _, tt := range tests {
		if got := firstName(tt.in); got != tt.want {
			t.Errorf("firstName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAssessmentProspectHTML(t *testing.T) {
	req := AssessmentEmailRequest{
		To:        "dana@example.com",
		ToName:    "Dana Smith",
		Score:     82,
		Qualified: true,
		Feedback: Feedback{
			Strengths: []string{"Strong process documentation. You can automate what you can document."},
			QuickWins: []string{"Prioritize documenting your highest-volume repetitive tasks first"},
		},
	}

	body := assessmentProspectHTML(req)
	if !strings.Contains(body, "82/100") {
		t.Error("score missing from body")
	}
	if !strings.Contains(body, "Hi Dana,") {
		t.Error("greeting missing from body")
	}
	if !strings.Contains(body, strategyCallLink) {
		t.Error("qualified leads should get the strategy call link")
	}

	req.Qualified = false
	body = assessmentProspectHTML(req)
	if strings.Contains(body, strategyCallLink) {
		t.Error("unqualified leads should not get the strategy call link")
	}
	if !strings.Contains(body, processMapperLink) {
		t.Error("unqualified leads should get the process mapper link")
	}
}

func TestAssessmentInternalHTMLUsesLabels(t *testing.T) {
	req := AssessmentEmailRequest{
		To:     "dana@example.com",
		ToName: "Dana",
		Score:  40,
		Answers: model.Answers{
			"q1": "more-50",
			"q8": "We run a cleaning company",
		},
	}

	body := assessmentInternalHTML(req)
	if !strings.Contains(body, "More than 50 hours") {
		t.Error("answer values should be resolved to labels")
	}
	if !strings.Contains(body, "We run a cleaning company") {
		t.Error("free text answers should appear verbatim")
	}
}

func TestHTMLBuildersEscapeUserInput(t *testing.T) {
	body := abandonAlertHTML(AbandonAlertRequest{
		Name:         "<script>alert(1)</script>",
		Email:        "dana@example.com",
		CurrentPhase: 2,
		MessageCount: 3,
	})
	if strings.Contains(body, "<script>") {
		t.Error("user input must be escaped")
	}
	if !strings.Contains(body, "Process Overview") {
		t.Error("phase number should be resolved to a name")
	}
}

func TestSendWithoutAPIKey(t *testing.T) {
	svc := NewNotifyService(&config.Config{}, nil)

	if _, _, err := svc.SendProcessEmails(context.Background(), ProcessEmailRequest{}); err == nil {
		t.Error("expected error without API key")
	}
	if _, _, err := svc.SendAssessmentEmails(context.Background(), AssessmentEmailRequest{}); err == nil {
		t.Error("expected error without API key")
	}
	if _, err := svc.SendAbandonAlert(context.Background(), AbandonAlertRequest{}); err == nil {
		t.Error("expected error without API key")
	}
	// Lead logging degrades to a no-op instead of erroring.
	if err := svc.LogProcessStarted(context.Background(), "Dana", "dana@example.com"); err != nil {
		t.Errorf("LogProcessStarted() error: %v", err)
	}
}
