package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"uplevelsite/internal/model"
	"uplevelsite/internal/service"
)

// EmailHandler handles the notification endpoints.
type EmailHandler struct {
	notify      *service.NotifyService
	assessments *service.AssessmentService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(notify *service.NotifyService, assessments *service.AssessmentService) *EmailHandler {
	return &EmailHandler{notify: notify, assessments: assessments}
}

type processEmailRequest struct {
	To           string               `json:"to"`
	ToName       string               `json:"toName"`
	ProcessName  string               `json:"processName"`
	BusinessName string               `json:"businessName"`
	PDFBase64    string               `json:"pdfBase64"`
	Summary      model.ProcessSummary `json:"processData"`
	Transcript   string               `json:"transcript"`
}

// SendProcess handles POST /api/send-email
func (h *EmailHandler) SendProcess(w http.ResponseWriter, r *http.Request) {
	var req processEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.To == "" || req.PDFBase64 == "" || req.ProcessName == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	prospectID, internalID, err := h.notify.SendProcessEmails(r.Context(), service.ProcessEmailRequest{
		To:           req.To,
		ToName:       req.ToName,
		ProcessName:  req.ProcessName,
		BusinessName: req.BusinessName,
		PDFBase64:    req.PDFBase64,
		Summary:      req.Summary,
		Transcript:   req.Transcript,
	})
	if err != nil {
		log.Printf("Failed to send process emails: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"prospectEmailId": prospectID,
		"royEmailId":      internalID,
	})
}

type assessmentEmailRequest struct {
	To           string        `json:"to"`
	ToName       string        `json:"toName"`
	Phone        string        `json:"phone"`
	Score        *int          `json:"score"`
	Qualified    bool          `json:"qualified"`
	Answers      model.Answers `json:"answers"`
	Strengths    []string      `json:"strengths"`
	Improvements []string      `json:"improvements"`
	QuickWins    []string      `json:"quickWins"`
}

// feedback prefers the lists supplied by the caller and regenerates them
// from the answers otherwise.
func (r *assessmentEmailRequest) feedback(assessments *service.AssessmentService) service.Feedback {
	if r.Strengths == nil && r.Improvements == nil && r.QuickWins == nil {
		return assessments.Feedback(r.Answers)
	}
	fb := service.Feedback{
		Strengths:    r.Strengths,
		Improvements: r.Improvements,
		QuickWins:    r.QuickWins,
	}
	if fb.Strengths == nil {
		fb.Strengths = []string{}
	}
	if fb.Improvements == nil {
		fb.Improvements = []string{}
	}
	if fb.QuickWins == nil {
		fb.QuickWins = []string{}
	}
	return fb
}

// SendAssessment handles POST /api/send-assessment-email
func (h *EmailHandler) SendAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.To == "" || req.ToName == "" || req.Score == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	prospectID, internalID, err := h.notify.SendAssessmentEmails(r.Context(), service.AssessmentEmailRequest{
		To:        req.To,
		ToName:    req.ToName,
		Phone:     req.Phone,
		Score:     *req.Score,
		Qualified: req.Qualified,
		Answers:   req.Answers,
		Feedback:  req.feedback(h.assessments),
	})
	if err != nil {
		log.Printf("Failed to send assessment emails: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"prospectEmailId": prospectID,
		"royEmailId":      internalID,
	})
}

type abandonAlertRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CurrentPhase int    `json:"currentPhase"`
	MessageCount int    `json:"messageCount"`
	Transcript   string `json:"transcript"`
}

// SendAbandonAlert handles POST /api/send-abandon-alert
func (h *EmailHandler) SendAbandonAlert(w http.ResponseWriter, r *http.Request) {
	var req abandonAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	_, err := h.notify.SendAbandonAlert(r.Context(), service.AbandonAlertRequest{
		Name:         req.Name,
		Email:        req.Email,
		CurrentPhase: req.CurrentPhase,
		MessageCount: req.MessageCount,
		Transcript:   req.Transcript,
	})
	if err != nil {
		log.Printf("Failed to send abandon alert: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send abandon alert")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
