package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"uplevelsite/internal/model"
	"uplevelsite/internal/service"
)

// AssessmentHandler handles the readiness assessment endpoints.
type AssessmentHandler struct {
	assessments *service.AssessmentService
	notify      *service.NotifyService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessments *service.AssessmentService, notify *service.NotifyService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments, notify: notify}
}

type submitAssessmentRequest struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Answers model.Answers `json:"answers"`
}

type submitAssessmentResponse struct {
	Score                int              `json:"score"`
	Qualified            bool             `json:"qualified"`
	Feedback             service.Feedback `json:"feedback"`
	DisqualificationTips []string         `json:"disqualificationTips,omitempty"`
}

// Submit handles POST /api/assessment/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	score := h.assessments.Score(req.Answers)
	qualified := h.assessments.Qualified(req.Answers)
	resp := submitAssessmentResponse{
		Score:     score,
		Qualified: qualified,
		Feedback:  h.assessments.Feedback(req.Answers),
	}
	if !qualified {
		resp.DisqualificationTips = h.assessments.DisqualificationTips(req.Answers)
	}

	// Notifications run in the background so a provider outage never
	// blocks the score response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, _, err := h.notify.SendAssessmentEmails(ctx, service.AssessmentEmailRequest{
			To:        req.Email,
			ToName:    req.Name,
			Phone:     req.Phone,
			Score:     score,
			Qualified: qualified,
			Answers:   req.Answers,
			Feedback:  resp.Feedback,
		})
		if err != nil {
			log.Printf("Failed to send assessment emails: %v", err)
		}

		if err := h.notify.LogAssessment(ctx, service.AssessmentRecord{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Score:     score,
			Qualified: qualified,
			Q1:        req.Answers["q1"],
			Q2:        req.Answers["q2"],
			Q3:        req.Answers["q3"],
			Q4:        req.Answers["q4"],
			Q5:        req.Answers["q5"],
			Q6:        req.Answers["q6"],
			Q7:        req.Answers["q7"],
			Q8:        req.Answers["q8"],
			Q9:        req.Answers["q9"],
		}); err != nil {
			log.Printf("Failed to log assessment: %v", err)
		}
	}()

	writeJSON(w, http.StatusOK, resp)
}
