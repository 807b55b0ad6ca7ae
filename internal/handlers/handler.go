package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
	"github.com/najimt9-dotcom/PortfolioNT/internal/store"
)

// CompletionProvider is the remote completion call the chat proxy relays to.
type CompletionProvider interface {
	Complete(ctx context.Context, messages []assistant.PayloadMessage) (string, error)
}

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	provider CompletionProvider
	archive  store.Archive       // durable exchange log (sqlite or memory)
	cache    *store.RedisArchive // optional recent-exchange cache
	logger   zerolog.Logger
}

// NewHandler creates a new Handler. cache may be nil when Redis is not
// configured.
func NewHandler(provider CompletionProvider, archive store.Archive, cache *store.RedisArchive, logger zerolog.Logger) *Handler {
	return &Handler{provider: provider, archive: archive, cache: cache, logger: logger}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// MethodNotAllowed replies to any request whose method does not match its
// route.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
