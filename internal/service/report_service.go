package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"uplevelsite/internal/model"
)

// Renderer produces a PDF document from extracted process data.
type Renderer interface {
	Render(data *model.ProcessData) ([]byte, error)
}

// ReportService renders process map PDFs.
type ReportService struct{}

// NewReportService creates a ReportService.
func NewReportService() *ReportService {
	return &ReportService{}
}

type rgb struct{ r, g, b int }

// Slate palette used throughout the document.
var (
	inkDark  = rgb{30, 41, 59}
	inkMid   = rgb{51, 65, 85}
	inkSoft  = rgb{71, 85, 105}
	inkMuted = rgb{100, 116, 139}
	inkFaint = rgb{148, 163, 184}
	ruleGray = rgb{226, 232, 240}
	fillGray = rgb{241, 245, 249}
)

// Render lays the process document out on Letter pages. The input is
// normalized first so templates never see nil slices.
func (s *ReportService) Render(data *model.ProcessData) ([]byte, error) {
	if data == nil {
		return nil, errors.New("no process data to render")
	}
	d := *data
	d.Normalize()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(54, 43, 54)
	pdf.SetAutoPageBreak(true, 36)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := d.ProcessName
	if title == "" {
		title = "Process Document"
	}
	setText(pdf, "B", 24, inkDark)
	pdf.MultiCell(0, 26, tr(title), "", "L", false)
	if d.BusinessName != "" {
		setText(pdf, "", 12, inkMuted)
		pdf.MultiCell(0, 16, tr(d.BusinessName), "", "L", false)
	}
	pdf.Ln(6)
	drawRule(pdf)
	pdf.Ln(14)

	heading(pdf, "Process Overview")
	labelValueRow(pdf, tr, "Business type", orNA(d.BusinessType))
	labelValueRow(pdf, tr, "Process owner", orNA(d.ProcessOwner))
	labelValueRow(pdf, tr, "Team size", orNA(d.TeamSize))
	labelValueRow(pdf, tr, "Typical duration", orNA(d.Duration))
	pdf.Ln(12)

	heading(pdf, "Process Steps")
	for _, step := range d.Steps {
		setText(pdf, "B", 11, inkDark)
		pdf.MultiCell(0, 15, tr(fmt.Sprintf("%d. %s", step.Number, step.Title)), "", "L", false)
		if step.Actor != "" {
			indent(pdf, 12)
			setText(pdf, "B", 10, inkSoft)
			pdf.Write(14, "Who: ")
			setText(pdf, "", 10, inkSoft)
			pdf.Write(14, tr(step.Actor))
			pdf.Ln(14)
		}
		for _, detail := range step.Details {
			indent(pdf, 12)
			setText(pdf, "", 10, inkMid)
			pdf.MultiCell(0, 14, tr("• "+detail), "", "L", false)
		}
		pdf.Ln(6)
	}

	pdf.AddPage()
	heading(pdf, "Tools & Systems")
	if len(d.Tools) == 0 {
		bodyText(pdf, tr, "No tools specified")
	} else {
		setText(pdf, "B", 10, inkSoft)
		pdf.SetFillColor(fillGray.r, fillGray.g, fillGray.b)
		pdf.CellFormat(130, 22, "Tool", "", 0, "L", true, 0, "")
		pdf.CellFormat(0, 22, "Purpose", "", 1, "L", true, 0, "")
		drawRule(pdf)
		for _, tool := range d.Tools {
			setText(pdf, "B", 10, inkDark)
			pdf.CellFormat(130, 20, tr(tool.Name), "", 0, "L", false, 0, "")
			setText(pdf, "", 10, inkMid)
			pdf.MultiCell(0, 20, tr(tool.Purpose), "", "L", false)
		}
	}
	pdf.Ln(12)

	if len(d.DecisionPoints) > 0 {
		heading(pdf, "Decision Points")
		for _, dp := range d.DecisionPoints {
			setText(pdf, "B", 10, inkDark)
			pdf.Write(14, tr(dp.Location+": "))
			setText(pdf, "", 10, inkMid)
			pdf.Write(14, tr(dp.Condition))
			pdf.Ln(14)
			for _, path := range dp.Paths {
				indent(pdf, 12)
				setText(pdf, "", 10, inkSoft)
				pdf.MultiCell(0, 14, tr("-> "+path), "", "L", false)
			}
			pdf.Ln(6)
		}
		pdf.Ln(6)
	}

	if len(d.PainPoints) > 0 {
		heading(pdf, "Pain Points & Opportunities")
		for i, pp := range d.PainPoints {
			setText(pdf, "B", 12, inkDark)
			pdf.MultiCell(0, 16, fmt.Sprintf("Pain Point %d", i+1), "", "L", false)
			bodyText(pdf, tr, pp)
			pdf.Ln(4)
		}
	}

	if len(d.AutomationOpportunities) > 0 {
		pdf.AddPage()
		heading(pdf, "Automation Opportunities")
		for _, op := range d.AutomationOpportunities {
			setText(pdf, "B", 12, inkDark)
			pdf.MultiCell(0, 16, tr(op.Title), "", "L", false)
			opportunityLine(pdf, tr, "What we noticed", op.Observation)
			opportunityLine(pdf, tr, "Suggested solution", op.Solution)
			opportunityLine(pdf, tr, "Potential impact", op.Impact)
			pdf.Ln(8)
		}
		setText(pdf, "B", 12, inkDark)
		pdf.MultiCell(0, 16, "Ready to automate?", "", "L", false)
		bodyText(pdf, tr, "Book a free AI strategy call to walk through these opportunities: "+strategyCallLink)
	}

	pdf.Ln(30)
	drawRule(pdf)
	pdf.Ln(8)
	setText(pdf, "", 9, inkFaint)
	pdf.CellFormat(0, 12, "Generated by UpLevel Automations Process Mapper", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 12, "Questions about automating this process? Contact roy@uplevelautomations.com", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf output failed")
	}
	return buf.Bytes(), nil
}

func setText(pdf *fpdf.Fpdf, style string, size float64, color rgb) {
	pdf.SetFont("Helvetica", style, size)
	pdf.SetTextColor(color.r, color.g, color.b)
}

func heading(pdf *fpdf.Fpdf, text string) {
	setText(pdf, "B", 15, inkDark)
	pdf.MultiCell(0, 20, text, "", "L", false)
	pdf.Ln(4)
}

func bodyText(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	setText(pdf, "", 10, inkMid)
	pdf.MultiCell(0, 14, tr(text), "", "L", false)
}

func labelValueRow(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	setText(pdf, "B", 10, inkSoft)
	pdf.CellFormat(130, 18, label, "", 0, "L", false, 0, "")
	setText(pdf, "", 10, inkMid)
	pdf.MultiCell(0, 18, tr(value), "", "L", false)
}

func opportunityLine(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	indent(pdf, 12)
	setText(pdf, "B", 10, inkSoft)
	pdf.Write(14, label+": ")
	setText(pdf, "", 10, inkMid)
	pdf.Write(14, tr(value))
	pdf.Ln(14)
}

func drawRule(pdf *fpdf.Fpdf) {
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	pdf.SetDrawColor(ruleGray.r, ruleGray.g, ruleGray.b)
	pdf.Line(left, pdf.GetY(), width-right, pdf.GetY())
}

func indent(pdf *fpdf.Fpdf, by float64) {
	left, _, _, _ := pdf.GetMargins()
	pdf.SetX(left + by)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
