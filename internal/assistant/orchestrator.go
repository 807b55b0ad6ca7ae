package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Sender delivers an outbound payload to the completion proxy and reports
// the assistant's reply. ok is false when the proxy was unreachable or
// returned garbage; implementations must absorb every failure behind that
// boolean and never panic or surface an error to the orchestrator.
type Sender interface {
	Send(ctx context.Context, payload []PayloadMessage) (reply string, ok bool)
}

// Orchestrator drives one conversation: it accepts visitor input, performs
// the single remote round-trip and resolves the displayed reply, falling
// back to the canned responder when the remote path yields nothing.
type Orchestrator struct {
	conv   *Conversation
	sender Sender
	logger zerolog.Logger

	mu      sync.Mutex
	sending bool
}

// NewOrchestrator creates an orchestrator bound to one conversation.
func NewOrchestrator(conv *Conversation, sender Sender, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{conv: conv, sender: sender, logger: logger}
}

// Sending reports whether a submission is currently in flight.
func (o *Orchestrator) Sending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sending
}

// Conversation returns the conversation this orchestrator mutates.
func (o *Orchestrator) Conversation() *Conversation {
	return o.conv
}

// HandleUserSubmit runs one submission round-trip. Blank input, or a submit
// while another is in flight, is rejected as a no-op and returns false.
// An accepted submission always appends exactly two messages: the visitor's,
// and exactly one assistant reply — remote when the proxy produced a usable
// string, canned otherwise. The visitor never sees a raw error.
func (o *Orchestrator) HandleUserSubmit(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	o.mu.Lock()
	if o.sending {
		o.mu.Unlock()
		return false
	}
	o.sending = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.sending = false
		o.mu.Unlock()
	}()

	history := o.conv.Messages()
	userMsg := NewMessage(RoleUser, text)
	o.conv.Append(userMsg)

	payload := BuildPayload(history, userMsg.Content)

	reply, ok := o.sender.Send(ctx, payload)
	if !ok || reply == "" {
		o.logger.Debug().Bool("reachable", ok).Msg("remote reply unavailable, using fallback")
		reply = Respond(userMsg.Content)
	}

	o.conv.Append(NewMessage(RoleAssistant, reply))
	return true
}
