package service

import (
	"context"
	"encoding/base64"
	"log"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"uplevelsite/internal/model"
	"uplevelsite/internal/prompts"
)

const (
	defaultAbandonTimeout = 10 * time.Minute
	extractionDelay       = 1500 * time.Millisecond
	turnMaxTokens         = 1024
	turnErrorMessage      = "Sorry, I encountered an error. Please try again."
)

// Session statuses reported by Result.
const (
	StatusInProgress = "in_progress"
	StatusGenerating = "generating"
	StatusReady      = "ready"
	StatusFailed     = "failed"
)

// Notifier is the slice of NotifyService the wizard needs.
type Notifier interface {
	SendProcessEmails(ctx context.Context, req ProcessEmailRequest) (string, string, error)
	SendAbandonAlert(ctx context.Context, req AbandonAlertRequest) (string, error)
	LogProcessStarted(ctx context.Context, name, email string) error
	LogProcessCompleted(ctx context.Context, rec ProcessRecord) error
}

// WizardSession holds the server-side state of one process mapping
// conversation.
type WizardSession struct {
	ID        string
	Mode      prompts.Mode
	UserName  string
	UserEmail string

	mu           sync.Mutex
	messages     []model.Message
	phase        int
	busy         bool
	complete     bool
	abandonFired bool
	abandonTimer *time.Timer
	status       string
	result       *model.ProcessData
	pdf          []byte
}

// TurnResult is the outcome of one exchanged message.
type TurnResult struct {
	Reply        string `json:"reply"`
	DisplayReply string `json:"displayReply"`
	Phase        int    `json:"phase"`
	Complete     bool   `json:"complete"`
}

// WizardResult reports the state of a session after completion.
type WizardResult struct {
	Status      string             `json:"status"`
	ProcessData *model.ProcessData `json:"processData,omitempty"`
	PDFBase64   string             `json:"pdfBase64,omitempty"`
	PDFDataURI  string             `json:"pdfUrl,omitempty"`
}

// WizardService drives guided process mapping conversations end to end,
// from greeting through extraction, PDF rendering and notification.
type WizardService struct {
	chat      ChatCompleter
	extractor Extractor
	renderer  Renderer
	notifier  Notifier

	mu       sync.Mutex
	sessions map[string]*WizardSession

	abandonTimeout time.Duration
	extractDelay   time.Duration
}

// NewWizardService creates a WizardService.
func NewWizardService(chat ChatCompleter, extractor Extractor, renderer Renderer, notifier Notifier, abandonTimeout time.Duration) *WizardService {
	if abandonTimeout <= 0 {
		abandonTimeout = defaultAbandonTimeout
	}
	return &WizardService{
		chat:           chat,
		extractor:      extractor,
		renderer:       renderer,
		notifier:       notifier,
		sessions:       make(map[string]*WizardSession),
		abandonTimeout: abandonTimeout,
		extractDelay:   extractionDelay,
	}
}

// StartSession opens a new conversation and returns the opening message.
func (s *WizardService) StartSession(name, email string, mode prompts.Mode) (*WizardSession, string) {
	greeting := prompts.Greeting(mode, name)
	sess := &WizardSession{
		ID:        uuid.NewString(),
		Mode:      mode,
		UserName:  name,
		UserEmail: email,
		messages:  []model.Message{{Role: model.RoleAssistant, Content: greeting}},
		phase:     1,
		status:    StatusInProgress,
	}
	sess.abandonTimer = time.AfterFunc(s.abandonTimeout, func() { s.abandon(sess) })

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.LogProcessStarted(ctx, name, email); err != nil {
			log.Printf("Failed to log process start: %v", err)
		}
	}()

	return sess, greeting
}

var phaseMarker = regexp.MustCompile(`^\[PHASE:(\d+)\]`)
var phaseMarkerAll = regexp.MustCompile(`\[PHASE:\d+\]\n*`)

// SubmitTurn sends one user message through the model and updates the
// session. Collaborator failures surface as an apologetic assistant turn
// rather than an error so the conversation can continue.
func (s *WizardService) SubmitTurn(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	if sess.complete {
		sess.mu.Unlock()
		return nil, ErrSessionComplete
	}
	if sess.busy {
		sess.mu.Unlock()
		return nil, ErrSessionBusy
	}
	sess.busy = true
	sess.messages = append(sess.messages, model.Message{Role: model.RoleUser, Content: text})
	history := make([]model.Message, len(sess.messages))
	copy(history, sess.messages)
	mode := sess.Mode
	sess.mu.Unlock()

	reply, err := s.chat.Complete(ctx, prompts.SystemPrompt(mode), history, turnMaxTokens)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.busy = false

	if err != nil {
		log.Printf("Chat turn failed for session %s: %v", sess.ID, err)
		sess.messages = append(sess.messages, model.Message{Role: model.RoleAssistant, Content: turnErrorMessage})
		sess.abandonTimer.Reset(s.abandonTimeout)
		return &TurnResult{
			Reply:        turnErrorMessage,
			DisplayReply: turnErrorMessage,
			Phase:        sess.phase,
		}, nil
	}

	if m := phaseMarker.FindStringSubmatch(strings.TrimSpace(reply)); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil && n > sess.phase && n >= 1 && n <= len(prompts.Phases(mode)) {
			sess.phase = n
		}
	}
	sess.messages = append(sess.messages, model.Message{Role: model.RoleAssistant, Content: reply})

	if strings.Contains(reply, prompts.CompletionToken) {
		sess.complete = true
		sess.status = StatusGenerating
		sess.abandonTimer.Stop()
		msgs := make([]model.Message, len(sess.messages))
		copy(msgs, sess.messages)
		time.AfterFunc(s.extractDelay, func() { s.finalize(sess, msgs) })
	} else {
		sess.abandonTimer.Reset(s.abandonTimeout)
	}

	return &TurnResult{
		Reply:        reply,
		DisplayReply: displayReply(reply),
		Phase:        sess.phase,
		Complete:     sess.complete,
	}, nil
}

// Result reports a session's extraction status and artifacts.
func (s *WizardService) Result(sessionID string) (*WizardResult, error) {
	sess, ok := s.lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := &WizardResult{Status: sess.status}
	if sess.status == StatusReady {
		out.ProcessData = sess.result
		out.PDFBase64 = base64.StdEncoding.EncodeToString(sess.pdf)
		out.PDFDataURI = "data:application/pdf;base64," + out.PDFBase64
	}
	return out, nil
}

func (s *WizardService) lookup(id string) (*WizardSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// finalize extracts structured data from the transcript, renders the PDF
// and fires the completion notifications.
func (s *WizardService) finalize(sess *WizardSession, msgs []model.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := s.extractor.Extract(ctx, msgs)
	if err != nil {
		log.Printf("Extraction failed for session %s: %v", sess.ID, err)
		s.fail(sess)
		return
	}
	pdf, err := s.renderer.Render(data)
	if err != nil {
		log.Printf("PDF rendering failed for session %s: %v", sess.ID, err)
		s.fail(sess)
		return
	}

	sess.mu.Lock()
	sess.result = data
	sess.pdf = pdf
	sess.status = StatusReady
	sess.mu.Unlock()

	summary := data.Summary()
	transcript := model.Transcript(msgs)
	pdfBase64 := base64.StdEncoding.EncodeToString(pdf)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_, _, err := s.notifier.SendProcessEmails(ctx, ProcessEmailRequest{
			To:           sess.UserEmail,
			ToName:       sess.UserName,
			ProcessName:  summary.ProcessName,
			BusinessName: summary.BusinessName,
			PDFBase64:    pdfBase64,
			Summary:      summary,
			Transcript:   transcript,
		})
		if err != nil {
			log.Printf("Failed to send process emails for session %s: %v", sess.ID, err)
		}
	}()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := s.notifier.LogProcessCompleted(ctx, ProcessRecord{
			Name:         sess.UserName,
			Email:        sess.UserEmail,
			Mode:         string(sess.Mode),
			ProcessName:  summary.ProcessName,
			BusinessName: summary.BusinessName,
			BusinessType: summary.BusinessType,
			TeamSize:     summary.TeamSize,
			StepsCount:   summary.StepsCount,
			ToolsUsed:    summary.ToolsUsed,
			PainPoints:   summary.PainPoints,
			Duration:     summary.Duration,
			Transcript:   transcript,
		})
		if err != nil {
			log.Printf("Failed to log process completion for session %s: %v", sess.ID, err)
		}
	}()
}

func (s *WizardService) fail(sess *WizardSession) {
	sess.mu.Lock()
	sess.status = StatusFailed
	sess.mu.Unlock()
}

// abandon fires once when a session goes quiet before completing.
func (s *WizardService) abandon(sess *WizardSession) {
	sess.mu.Lock()
	if sess.abandonFired || sess.complete {
		sess.mu.Unlock()
		return
	}
	sess.abandonFired = true
	req := AbandonAlertRequest{
		Name:         sess.UserName,
		Email:        sess.UserEmail,
		CurrentPhase: sess.phase,
		MessageCount: len(sess.messages),
		Transcript:   model.Transcript(sess.messages),
	}
	sess.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.notifier.SendAbandonAlert(ctx, req); err != nil {
		log.Printf("Failed to send abandon alert for session %s: %v", sess.ID, err)
	}
}

func displayReply(reply string) string {
	out := strings.ReplaceAll(reply, prompts.CompletionToken, "")
	out = phaseMarkerAll.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
