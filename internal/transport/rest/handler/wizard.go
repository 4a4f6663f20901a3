package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"uplevelsite/internal/prompts"
	"uplevelsite/internal/service"
)

// WizardHandler handles the guided process mapping endpoints.
type WizardHandler struct {
	wizard *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizard *service.WizardService) *WizardHandler {
	return &WizardHandler{wizard: wizard}
}

type startWizardRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Mode  string `json:"mode"`
}

// Start handles POST /api/wizard/start
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	mode := prompts.Mode(req.Mode)
	if !mode.Valid() {
		writeError(w, http.StatusBadRequest, "invalid mode")
		return
	}

	sess, greeting := h.wizard.StartSession(req.Name, req.Email, mode)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessionId": sess.ID,
		"greeting":  greeting,
		"phase":     1,
		"phases":    prompts.Phases(mode),
	})
}

type wizardMessageRequest struct {
	Content string `json:"content"`
}

// Message handles POST /api/wizard/{sessionId}/message
func (h *WizardHandler) Message(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req wizardMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.wizard.SubmitTurn(r.Context(), sessionID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrSessionBusy):
			writeError(w, http.StatusConflict, "a reply is already being generated")
		case errors.Is(err, service.ErrSessionComplete):
			writeError(w, http.StatusConflict, "session is already complete")
		case errors.Is(err, service.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, "message must not be empty")
		default:
			log.Printf("Wizard turn failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate response")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Result handles GET /api/wizard/{sessionId}/result
func (h *WizardHandler) Result(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.wizard.Result(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load result")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
