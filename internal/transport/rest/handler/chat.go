package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"uplevelsite/internal/model"
	"uplevelsite/internal/service"
)

const chatMaxTokens = 1024

// ChatHandler handles the stateless chat passthrough endpoint.
type ChatHandler struct {
	chat service.ChatCompleter
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat service.ChatCompleter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Messages     []model.Message `json:"messages"`
	SystemPrompt string          `json:"systemPrompt"`
}

// Complete handles POST /api/chat
func (h *ChatHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 || req.SystemPrompt == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	content, err := h.chat.Complete(r.Context(), req.SystemPrompt, req.Messages, chatMaxTokens)
	if err != nil {
		log.Printf("Chat completion failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}
