package service

import (
	"bytes"
	"testing"

	"uplevelsite/internal/model"
)

func sampleProcessData() *model.ProcessData {
	return &model.ProcessData{
		ProcessName:  "Client Onboarding",
		BusinessName: "Acme Cleaning",
		BusinessType: "Residential cleaning",
		TeamSize:     "15",
		ProcessOwner: "Operations manager",
		Duration:     "2 weeks",
		Steps: []model.Step{
			{Number: 1, Title: "Intake call", Actor: "Sales", Details: []string{"Collect requirements", "Schedule walkthrough"}},
			{Number: 2, Title: "Quote", Actor: "Operations", Details: []string{"Build estimate in QuickBooks"}},
		},
		Tools: []model.Tool{
			{Name: "HubSpot", Purpose: "CRM and pipeline"},
			{Name: "QuickBooks", Purpose: "Quotes and invoicing"},
		},
		PainPoints: []string{"Manual data entry between systems"},
		DecisionPoints: []model.DecisionPoint{
			{Location: "After the quote", Condition: "Does the client accept?", Paths: []string{"Yes: schedule first clean", "No: follow-up sequence"}},
		},
		AutomationOpportunities: []model.AutomationOpportunity{
			{Title: "Sync CRM to invoicing", Observation: "Data is retyped", Solution: "Connect HubSpot to QuickBooks", Impact: "Saves 3 hours weekly"},
		},
	}
}

func TestRender(t *testing.T) {
	svc := NewReportService()

	pdf, err := svc.Render(sampleProcessData())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestRenderMinimalData(t *testing.T) {
	svc := NewReportService()

	pdf, err := svc.Render(&model.ProcessData{})
	if err != nil {
		t.Fatalf("Render() error for empty data: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output does not look like a PDF")
	}
}

func TestRenderNilData(t *testing.T) {
	svc := NewReportService()

	if _, err := svc.Render(nil); err == nil {
		t.Fatal("expected error for nil data")
	}
}
