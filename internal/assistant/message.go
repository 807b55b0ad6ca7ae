// Package assistant implements the portfolio assistant's response pipeline:
// the conversation store, the outbound payload construction, the remote
// round-trip and the keyword fallback that covers for it.
package assistant

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Message roles. RoleSystem is used only for the injected knowledge context
// and is never rendered to the visitor.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn in a conversation. Fields are never mutated after
// creation; ordering within a Conversation is chronological order.
type Message struct {
	ID        string    `json:"id"` // ULID
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a fresh ULID and the current time.
func NewMessage(role, content string) Message {
	return Message{
		ID:        ulid.Make().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// PayloadMessage is the wire shape forwarded to the completion proxy.
// IDs and timestamps are stripped; only role and content travel.
type PayloadMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildPayload derives the outbound payload for one round-trip: the knowledge
// context as a system message, the conversation history so far, then the new
// user message. Built fresh per request and never stored.
func BuildPayload(history []Message, userText string) []PayloadMessage {
	payload := make([]PayloadMessage, 0, len(history)+2)
	payload = append(payload, PayloadMessage{Role: RoleSystem, Content: KnowledgeContext})
	for _, msg := range history {
		payload = append(payload, PayloadMessage{Role: msg.Role, Content: msg.Content})
	}
	payload = append(payload, PayloadMessage{Role: RoleUser, Content: userText})
	return payload
}
