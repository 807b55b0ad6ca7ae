package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
	"github.com/najimt9-dotcom/PortfolioNT/internal/metrics"
	"github.com/najimt9-dotcom/PortfolioNT/internal/store"
)

// replyApology substitutes for an empty provider completion. Not an error:
// the proxy still answers 200 with it.
const replyApology = "I'm sorry, I couldn't generate a response."

// ChatResponse is the success response of the chat proxy.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat relays a conversation to the completion provider. Single-shot: no
// retries, no streaming, and provider failure detail never reaches the
// client.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages json.RawMessage `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Messages == nil {
		h.Error(w, http.StatusBadRequest, "Messages must be a non-empty array")
		return
	}

	// A JSON null decodes without error but leaves the slice nil; it is
	// rejected like any other non-array.
	var messages []assistant.PayloadMessage
	if err := json.Unmarshal(req.Messages, &messages); err != nil || messages == nil {
		h.Error(w, http.StatusBadRequest, "Messages must be a non-empty array")
		return
	}

	start := time.Now()
	content, err := h.provider.Complete(r.Context(), messages)
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderErrors.Inc()
		h.logger.Error().Err(err).Msg("completion provider call failed")
		h.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	source := store.SourceRemote
	reply := content
	if reply == "" {
		source = store.SourceApology
		reply = replyApology
	}
	metrics.RepliesServed.WithLabelValues(source).Inc()

	h.recordExchange(r, messages, reply, source)

	h.JSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// recordExchange archives the question/reply pair. Best-effort: failures are
// counted and logged, never surfaced to the visitor.
func (h *Handler) recordExchange(r *http.Request, messages []assistant.PayloadMessage, reply, source string) {
	question := lastUserContent(messages)
	if question == "" {
		return
	}

	ex := &store.Exchange{
		Question: question,
		Reply:    reply,
		Source:   source,
	}
	if err := h.archive.AddExchange(r.Context(), ex); err != nil {
		metrics.ArchiveWriteFailures.Inc()
		h.logger.Warn().Err(err).Msg("transcript archive write failed")
	}
	if h.cache != nil {
		if err := h.cache.AddExchange(r.Context(), ex); err != nil {
			metrics.ArchiveWriteFailures.Inc()
			h.logger.Warn().Err(err).Msg("transcript cache write failed")
		}
	}
}

// lastUserContent finds the visitor's question in the forwarded payload.
func lastUserContent(messages []assistant.PayloadMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == assistant.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}
