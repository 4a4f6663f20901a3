package handler

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"uplevelsite/internal/model"
	"uplevelsite/internal/service"
)

// PDFHandler handles the process map rendering endpoint.
type PDFHandler struct {
	renderer service.Renderer
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(renderer service.Renderer) *PDFHandler {
	return &PDFHandler{renderer: renderer}
}

type pdfRequest struct {
	ProcessData *model.ProcessData `json:"processData"`
	UserInfo    *model.UserInfo    `json:"userInfo"`
}

// Generate handles POST /api/generate-pdf
func (h *PDFHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req pdfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProcessData == nil || req.UserInfo == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	pdf, err := h.renderer.Render(req.ProcessData)
	if err != nil {
		log.Printf("PDF generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	encoded := base64.StdEncoding.EncodeToString(pdf)
	writeJSON(w, http.StatusOK, map[string]string{
		"pdfUrl":    "data:application/pdf;base64," + encoded,
		"pdfBase64": encoded,
	})
}
