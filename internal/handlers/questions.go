package handlers

import (
	"net/http"

	"github.com/najimt9-dotcom/PortfolioNT/internal/assistant"
)

// QuestionsResponse lists the suggested starter prompts.
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// Questions returns the static quick-question suggestions shown before a
// visitor has typed anything.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, QuestionsResponse{Questions: assistant.QuickQuestions})
}
