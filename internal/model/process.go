package model

import "strings"

// UserInfo identifies the person who ran a tool.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Step is one step of a mapped process.
type Step struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Actor   string   `json:"actor"`
	Details []string `json:"details"`
}

// Tool is a system or piece of software used in the process.
type Tool struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// DecisionPoint is a branch in the process flow.
type DecisionPoint struct {
	Location  string   `json:"location"`
	Condition string   `json:"condition"`
	Paths     []string `json:"paths"`
}

// AutomationOpportunity is a recommendation produced during extraction.
type AutomationOpportunity struct {
	Title       string `json:"title"`
	Observation string `json:"observation"`
	Solution    string `json:"solution"`
	Impact      string `json:"impact"`
}

// ProcessData is the structured record extracted from a finished mapper
// conversation. It is produced once and never mutated afterwards.
type ProcessData struct {
	ProcessName             string                  `json:"processName"`
	BusinessName            string                  `json:"businessName"`
	BusinessType            string                  `json:"businessType"`
	TeamSize                string                  `json:"teamSize"`
	ProcessOwner            string                  `json:"processOwner"`
	Steps                   []Step                  `json:"steps"`
	Tools                   []Tool                  `json:"tools"`
	PainPoints              []string                `json:"painPoints"`
	Duration                string                  `json:"duration"`
	DecisionPoints          []DecisionPoint         `json:"decisionPoints"`
	AutomationOpportunities []AutomationOpportunity `json:"automationOpportunities,omitempty"`
}

// Normalize replaces absent arrays with empty ones so that downstream
// consumers never have to distinguish nil from empty.
func (p *ProcessData) Normalize() {
	if p.Steps == nil {
		p.Steps = []Step{}
	}
	if p.Tools == nil {
		p.Tools = []Tool{}
	}
	if p.PainPoints == nil {
		p.PainPoints = []string{}
	}
	if p.DecisionPoints == nil {
		p.DecisionPoints = []DecisionPoint{}
	}
	for i := range p.Steps {
		if p.Steps[i].Details == nil {
			p.Steps[i].Details = []string{}
		}
	}
	for i := range p.DecisionPoints {
		if p.DecisionPoints[i].Paths == nil {
			p.DecisionPoints[i].Paths = []string{}
		}
	}
}

// ProcessSummary is the flattened form of ProcessData used for the internal
// notification email and the lead log.
type ProcessSummary struct {
	ProcessName  string `json:"processName"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	TeamSize     string `json:"teamSize"`
	StepsCount   int    `json:"stepsCount"`
	ToolsUsed    string `json:"toolsUsed"`
	PainPoints   string `json:"painPoints"`
	Duration     string `json:"duration"`
}

// Summary flattens the record: tool names joined with commas, pain points
// joined with semicolons.
func (p *ProcessData) Summary() ProcessSummary {
	tools := make([]string, 0, len(p.Tools))
	for _, t := range p.Tools {
		tools = append(tools, t.Name)
	}
	return ProcessSummary{
		ProcessName:  p.ProcessName,
		BusinessName: p.BusinessName,
		BusinessType: p.BusinessType,
		TeamSize:     p.TeamSize,
		StepsCount:   len(p.Steps),
		ToolsUsed:    strings.Join(tools, ", "),
		PainPoints:   strings.Join(p.PainPoints, "; "),
		Duration:     p.Duration,
	}
}
