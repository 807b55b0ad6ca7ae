package assistant

import "sync"

// Conversation is the ordered, session-owned sequence of exchanged messages.
// It starts with the seeded greeting and lives only as long as the session;
// nothing is persisted. Messages are immutable once appended and insertion
// order is chronological order.
type Conversation struct {
	mu       sync.Mutex
	messages []Message
}

// NewConversation creates a conversation seeded with the assistant greeting.
func NewConversation() *Conversation {
	return &Conversation{
		messages: []Message{NewMessage(RoleAssistant, Greeting)},
	}
}

// Append adds one message to the end of the conversation.
func (c *Conversation) Append(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the conversation in order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Last returns the most recent message.
func (c *Conversation) Last() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages[len(c.messages)-1]
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
