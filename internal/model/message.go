package model

import "strings"

// Message roles. The conversation only ever contains these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a mapper conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript flattens a conversation into "ROLE: content" lines separated
// by blank lines, the format used for extraction and internal emails.
func Transcript(messages []Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, strings.ToUpper(m.Role)+": "+m.Content)
	}
	return strings.Join(parts, "\n\n")
}
