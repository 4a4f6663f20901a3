package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/pkg/errors"

	"uplevelsite/internal/model"
	"uplevelsite/internal/prompts"
)

const extractionMaxTokens = 4096

// Extractor turns a mapping conversation into structured process data.
type Extractor interface {
	Extract(ctx context.Context, messages []model.Message) (*model.ProcessData, error)
}

// ExtractorService extracts process data from transcripts via the model.
type ExtractorService struct {
	chat ChatCompleter
}

// NewExtractorService creates an ExtractorService.
func NewExtractorService(chat ChatCompleter) *ExtractorService {
	return &ExtractorService{chat: chat}
}

// Extract sends the transcript through the extraction prompt and parses
// the JSON reply. A reply that cannot be parsed yields
// ErrMalformedExtraction rather than partial data.
func (s *ExtractorService) Extract(ctx context.Context, messages []model.Message) (*model.ProcessData, error) {
	conversation := model.Transcript(messages)
	request := []model.Message{
		{Role: model.RoleUser, Content: "Here is the conversation to extract data from:\n\n" + conversation},
	}

	reply, err := s.chat.Complete(ctx, prompts.ExtractionPrompt, request, extractionMaxTokens)
	if err != nil {
		return nil, errors.Wrap(err, "extraction request failed")
	}

	cleaned := stripCodeFence(reply)

	var data model.ProcessData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		log.Printf("Failed to parse extraction reply: %v", err)
		return nil, errors.Wrapf(ErrMalformedExtraction, "%v", err)
	}
	data.Normalize()
	return &data, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[7:]
	} else if strings.HasPrefix(s, "```") {
		s = s[3:]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}
