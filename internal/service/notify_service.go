package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"

	"uplevelsite/internal/config"
	"uplevelsite/internal/model"
	"uplevelsite/internal/prompts"
)

const (
	strategyCallLink  = "https://cal.com/roy-banwell/ai-strategy-call"
	processMapperLink = "https://uplevelautomations.com/process-mapper"
)

// NotifyService sends transactional emails and mirrors lead events to the
// spreadsheet webhook.
type NotifyService struct {
	emails   *resend.Client
	sheets   *SheetsClient
	from     string
	internal string
}

// NewNotifyService creates a NotifyService. Without an API key the email
// side is disabled and send calls fail with an explicit error.
func NewNotifyService(cfg *config.Config, sheets *SheetsClient) *NotifyService {
	var client *resend.Client
	if cfg.ResendAPIKey != "" {
		client = resend.NewClient(cfg.ResendAPIKey)
	} else {
		log.Println("Warning: RESEND_API_KEY not set, email sending disabled")
	}
	return &NotifyService{
		emails:   client,
		sheets:   sheets,
		from:     cfg.FromAddress,
		internal: cfg.InternalEmail,
	}
}

// ProcessEmailRequest carries everything needed for the post-wizard emails.
type ProcessEmailRequest struct {
	To           string
	ToName       string
	ProcessName  string
	BusinessName string
	PDFBase64    string
	Summary      model.ProcessSummary
	Transcript   string
}

// SendProcessEmails delivers the process map PDF to the prospect and an
// internal copy with the summary. Returns the provider ids of both sends.
func (s *NotifyService) SendProcessEmails(ctx context.Context, req ProcessEmailRequest) (string, string, error) {
	if s.emails == nil {
		return "", "", errors.New("email sending is not configured")
	}
	pdfBytes, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid PDF attachment")
	}
	filename := safeFilename(req.ProcessName)

	prospect, err := s.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{req.To},
		Subject: "Your Process Map: " + req.ProcessName,
		Html:    processProspectHTML(req),
		Attachments: []*resend.Attachment{
			{Filename: filename, Content: pdfBytes},
		},
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to send process map email")
	}

	internal, err := s.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.internal},
		Subject: fmt.Sprintf("📋 New Process Mapped: %s - %s", req.ProcessName, req.ToName),
		Html:    processInternalHTML(req),
		Attachments: []*resend.Attachment{
			{Filename: filename, Content: pdfBytes},
		},
	})
	if err != nil {
		return prospect.Id, "", errors.Wrap(err, "failed to send internal process email")
	}
	return prospect.Id, internal.Id, nil
}

// AssessmentEmailRequest carries the prospect address and scoring results.
type AssessmentEmailRequest struct {
	To        string
	ToName    string
	Phone     string
	Score     int
	Qualified bool
	Answers   model.Answers
	Feedback  Feedback
}

// SendAssessmentEmails delivers the score report to the prospect and a
// lead summary to the internal address.
func (s *NotifyService) SendAssessmentEmails(ctx context.Context, req AssessmentEmailRequest) (string, string, error) {
	if s.emails == nil {
		return "", "", errors.New("email sending is not configured")
	}
	prospect, err := s.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{req.To},
		Subject: fmt.Sprintf("Your AI Readiness Score: %d/100", req.Score),
		Html:    assessmentProspectHTML(req),
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to send assessment email")
	}

	marker := "🔴"
	if req.Qualified {
		marker = "🟢"
	}
	internal, err := s.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.internal},
		Subject: fmt.Sprintf("%s New Assessment: %s - Score %d/100", marker, req.ToName, req.Score),
		Html:    assessmentInternalHTML(req),
	})
	if err != nil {
		return prospect.Id, "", errors.Wrap(err, "failed to send internal assessment email")
	}
	return prospect.Id, internal.Id, nil
}

// AbandonAlertRequest describes a wizard session that timed out mid-flow.
type AbandonAlertRequest struct {
	Name         string
	Email        string
	CurrentPhase int
	MessageCount int
	Transcript   string
}

// SendAbandonAlert notifies the internal address about an abandoned session.
func (s *NotifyService) SendAbandonAlert(ctx context.Context, req AbandonAlertRequest) (string, error) {
	if s.emails == nil {
		return "", errors.New("email sending is not configured")
	}
	sent, err := s.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.internal},
		Subject: "⚠️ Process Mapper Abandoned: " + req.Name,
		Html:    abandonAlertHTML(req),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send abandon alert")
	}
	return sent.Id, nil
}

// LogProcessStarted mirrors a wizard start to the lead sheet.
func (s *NotifyService) LogProcessStarted(ctx context.Context, name, email string) error {
	if s.sheets == nil {
		return nil
	}
	return s.sheets.LogProcessStarted(ctx, name, email)
}

// LogProcessCompleted mirrors a completed wizard run to the lead sheet.
func (s *NotifyService) LogProcessCompleted(ctx context.Context, rec ProcessRecord) error {
	if s.sheets == nil {
		return nil
	}
	return s.sheets.LogProcessCompleted(ctx, rec)
}

// LogAssessment mirrors an assessment submission to the lead sheet.
func (s *NotifyService) LogAssessment(ctx context.Context, rec AssessmentRecord) error {
	if s.sheets == nil {
		return nil
	}
	return s.sheets.LogAssessment(ctx, rec)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func safeFilename(processName string) string {
	base := unsafeFilenameChars.ReplaceAllString(processName, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "Process"
	}
	return base + "-Process-Map.pdf"
}

func processProspectHTML(req ProcessEmailRequest) string {
	var b strings.Builder
	b.WriteString("<h2>Your process map is ready</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(firstName(req.ToName)))
	fmt.Fprintf(&b, "<p>Thanks for mapping out <strong>%s</strong> with us. Your full process document is attached as a PDF.</p>",
		html.EscapeString(req.ProcessName))
	b.WriteString("<p>Inside you'll find every step we captured, the tools involved, and the automation opportunities we spotted along the way.</p>")
	fmt.Fprintf(&b, `<p><a href="%s">Book a free AI strategy call</a> if you'd like to walk through automating any of it.</p>`, strategyCallLink)
	b.WriteString("<p>Roy Banwell<br>UpLevel Automations</p>")
	return b.String()
}

func processInternalHTML(req ProcessEmailRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New process mapped</h2>")
	b.WriteString("<table cellpadding=\"4\">")
	tableRow(&b, "Name", req.ToName)
	tableRow(&b, "Email", req.To)
	tableRow(&b, "Process", req.ProcessName)
	tableRow(&b, "Business", req.BusinessName)
	tableRow(&b, "Steps captured", fmt.Sprintf("%d", req.Summary.StepsCount))
	tableRow(&b, "Tools", req.Summary.ToolsUsed)
	tableRow(&b, "Pain points", req.Summary.PainPoints)
	tableRow(&b, "Duration", req.Summary.Duration)
	b.WriteString("</table>")
	if req.Transcript != "" {
		b.WriteString("<h3>Transcript</h3>")
		fmt.Fprintf(&b, "<pre style=\"white-space:pre-wrap\">%s</pre>", html.EscapeString(req.Transcript))
	}
	return b.String()
}

func assessmentProspectHTML(req AssessmentEmailRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Your AI Readiness Score: %d/100</h2>", req.Score)
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(firstName(req.ToName)))
	if len(req.Feedback.Strengths) > 0 {
		b.WriteString("<h3>Where you're strong</h3><ul>")
		for _, s := range req.Feedback.Strengths {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s))
		}
		b.WriteString("</ul>")
	}
	if len(req.Feedback.Improvements) > 0 {
		b.WriteString("<h3>Where to focus next</h3><ul>")
		for _, s := range req.Feedback.Improvements {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s))
		}
		b.WriteString("</ul>")
	}
	if len(req.Feedback.QuickWins) > 0 {
		b.WriteString("<h3>Quick wins</h3><ul>")
		for _, s := range req.Feedback.QuickWins {
			fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(s))
		}
		b.WriteString("</ul>")
	}
	if req.Qualified {
		fmt.Fprintf(&b, `<p><a href="%s">Book your free AI strategy call</a> and we'll turn this score into a plan.</p>`, strategyCallLink)
	} else {
		fmt.Fprintf(&b, `<p>A great next step: <a href="%s">map one of your processes</a> with our free Process Mapper.</p>`, processMapperLink)
		b.WriteString("<p>Feel free to retake the assessment as your business grows.</p>")
	}
	b.WriteString("<p>Roy Banwell<br>UpLevel Automations</p>")
	return b.String()
}

func assessmentInternalHTML(req AssessmentEmailRequest) string {
	var b strings.Builder
	status := "Not qualified"
	if req.Qualified {
		status = "Qualified"
	}
	fmt.Fprintf(&b, "<h2>New assessment: %d/100 (%s)</h2>", req.Score, html.EscapeString(status))
	b.WriteString("<table cellpadding=\"4\">")
	tableRow(&b, "Name", req.ToName)
	tableRow(&b, "Email", req.To)
	tableRow(&b, "Phone", req.Phone)
	b.WriteString("</table>")
	b.WriteString("<h3>Answers</h3><table cellpadding=\"4\">")
	for _, q := range model.VisibleQuestions(req.Answers) {
		value, ok := req.Answers[q.ID]
		if !ok {
			continue
		}
		tableRow(&b, q.Prompt, model.OptionLabel(q.ID, value))
	}
	b.WriteString("</table>")
	return b.String()
}

func abandonAlertHTML(req AbandonAlertRequest) string {
	var b strings.Builder
	b.WriteString("<h2>Process Mapper session abandoned</h2>")
	b.WriteString("<table cellpadding=\"4\">")
	tableRow(&b, "Name", req.Name)
	tableRow(&b, "Email", req.Email)
	tableRow(&b, "Last phase", prompts.AbandonPhaseName(req.CurrentPhase))
	tableRow(&b, "Messages exchanged", fmt.Sprintf("%d", req.MessageCount))
	b.WriteString("</table>")
	if req.Transcript != "" {
		b.WriteString("<h3>Transcript so far</h3>")
		fmt.Fprintf(&b, "<pre style=\"white-space:pre-wrap\">%s</pre>", html.EscapeString(req.Transcript))
	}
	return b.String()
}

func tableRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
		html.EscapeString(label), html.EscapeString(value))
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return "there"
	}
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
