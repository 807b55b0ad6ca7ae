package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/najimt9-dotcom/PortfolioNT/internal/store"
)

// QuestionPreview is a truncated recent visitor question.
type QuestionPreview struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Source    string `json:"source"`
	Timestamp int64  `json:"ts"`
}

// StatsResponse represents the response from the stats endpoint.
type StatsResponse struct {
	TotalExchanges  int64             `json:"total_exchanges"`
	ApologiesServed int64             `json:"apologies_served"`
	LastActivity    string            `json:"last_activity"`
	RecentQuestions []QuestionPreview `json:"recent_questions"`
}

// Stats returns assistant usage statistics for the site owner.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.archive.CountExchanges(ctx)
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to count exchanges")
		return
	}

	apologies, err := h.archive.CountBySource(ctx, store.SourceApology)
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to count apologies")
		return
	}

	lastActivityTime, err := h.archive.LastActivity(ctx)
	if err != nil {
		h.Error(w, http.StatusInternalServerError, "failed to get last activity")
		return
	}

	lastActivity := "no activity yet"
	if lastActivityTime != nil {
		lastActivity = formatTimeAgo(*lastActivityTime)
	}

	// Recent previews come from the Redis window when available, else the
	// durable log.
	recentSource := h.archive
	if h.cache != nil {
		recentSource = store.Archive(h.cache)
	}
	exchanges, err := recentSource.RecentExchanges(ctx, 5)
	if err != nil {
		// Non-fatal, continue with empty previews
		exchanges = nil
	}

	previews := make([]QuestionPreview, 0, len(exchanges))
	for _, ex := range exchanges {
		question := ex.Question
		if len(question) > 200 {
			question = question[:197] + "..."
		}
		previews = append(previews, QuestionPreview{
			ID:        ex.ID,
			Question:  question,
			Source:    ex.Source,
			Timestamp: ex.Timestamp,
		})
	}

	h.JSON(w, http.StatusOK, StatsResponse{
		TotalExchanges:  total,
		ApologiesServed: apologies,
		LastActivity:    lastActivity,
		RecentQuestions: previews,
	})
}

// formatTimeAgo formats a time as a human-readable "X ago" string.
func formatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return strconv.Itoa(mins) + " minutes ago"
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return strconv.Itoa(hours) + " hours ago"
	default:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return strconv.Itoa(days) + " days ago"
	}
}
