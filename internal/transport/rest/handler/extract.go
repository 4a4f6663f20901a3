package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"uplevelsite/internal/model"
	"uplevelsite/internal/service"
)

// ExtractHandler handles the transcript extraction endpoint.
type ExtractHandler struct {
	extractor service.Extractor
}

// NewExtractHandler creates a new extract handler
func NewExtractHandler(extractor service.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor}
}

type extractRequest struct {
	Messages []model.Message `json:"messages"`
}

// Extract handles POST /api/extract-process-data
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "Missing messages")
		return
	}

	data, err := h.extractor.Extract(r.Context(), req.Messages)
	if err != nil {
		log.Printf("Process extraction failed: %v", err)
		if errors.Is(err, service.ErrMalformedExtraction) {
			writeError(w, http.StatusInternalServerError, "Failed to parse process data")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to extract process data")
		return
	}

	writeJSON(w, http.StatusOK, data)
}
