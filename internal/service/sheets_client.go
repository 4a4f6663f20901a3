package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// SheetsClient posts lead records to a spreadsheet webhook. When no URL is
// configured the client is a no-op so the rest of the pipeline keeps working.
type SheetsClient struct {
	url        string
	httpClient *http.Client
}

// NewSheetsClient creates a SheetsClient for the given webhook URL.
func NewSheetsClient(url string) *SheetsClient {
	if url == "" {
		log.Println("Warning: LEAD_WEBHOOK_URL not set, lead logging disabled")
	}
	return &SheetsClient{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AssessmentRecord is one row of the assessment lead sheet.
type AssessmentRecord struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
	Q1        string `json:"q1"`
	Q2        string `json:"q2"`
	Q3        string `json:"q3"`
	Q4        string `json:"q4"`
	Q5        string `json:"q5"`
	Q6        string `json:"q6"`
	Q7        string `json:"q7"`
	Q8        string `json:"q8"`
	Q9        string `json:"q9"`
}

// ProcessRecord is one row of the process mapper lead sheet.
type ProcessRecord struct {
	Type         string `json:"type"`
	Timestamp    string `json:"timestamp"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	Mode         string `json:"mode,omitempty"`
	ProcessName  string `json:"processName,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	TeamSize     string `json:"teamSize,omitempty"`
	StepsCount   int    `json:"stepsCount,omitempty"`
	ToolsUsed    string `json:"toolsUsed,omitempty"`
	PainPoints   string `json:"painPoints,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
}

// LogAssessment appends an assessment row.
func (c *SheetsClient) LogAssessment(ctx context.Context, rec AssessmentRecord) error {
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return c.post(ctx, rec)
}

// LogProcessStarted appends a "started" process row so abandoned sessions
// still show up in the sheet.
func (c *SheetsClient) LogProcessStarted(ctx context.Context, name, email string) error {
	return c.post(ctx, ProcessRecord{
		Type:      "process-mapper",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      name,
		Email:     email,
		Status:    "started",
	})
}

// LogProcessCompleted appends a "completed" process row with the summary.
func (c *SheetsClient) LogProcessCompleted(ctx context.Context, rec ProcessRecord) error {
	rec.Type = "process-mapper"
	rec.Status = "completed"
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	return c.post(ctx, rec)
}

func (c *SheetsClient) post(ctx context.Context, payload interface{}) error {
	if c.url == "" {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal lead record")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return errors.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
