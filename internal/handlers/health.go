package handlers

import (
	"context"
	"net/http"
	"time"
)

const version = "0.1.0"

// Check represents the status of a health check.
type Check struct {
	Status  string `json:"status"`            // "pass" or "fail"
	Latency string `json:"latency,omitempty"` // e.g., "2ms"
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string           `json:"status"` // "healthy" or "degraded"
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	Timestamp string           `json:"timestamp"`
}

// Health handles the health check endpoint. Only the configured backends are
// checked; the completion provider itself is not probed (every probe would
// cost a billable call).
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := make(map[string]Check)
	allHealthy := true

	// Check durable archive
	archiveStart := time.Now()
	if err := h.archive.Ping(ctx); err != nil {
		checks["archive"] = Check{Status: "fail", Message: "connection failed"}
		allHealthy = false
	} else {
		checks["archive"] = Check{Status: "pass", Latency: time.Since(archiveStart).String()}
	}

	// Check Redis cache when configured
	if h.cache != nil {
		cacheStart := time.Now()
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = Check{Status: "fail", Message: "connection failed"}
			allHealthy = false
		} else {
			checks["cache"] = Check{Status: "pass", Latency: time.Since(cacheStart).String()}
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	h.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Version:   version,
		Checks:    checks,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// RootResponse represents the root endpoint response.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Chat    string `json:"chat"`
}

// Root handles the API info endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, RootResponse{
		Name:    "portfolio-assistant",
		Version: version,
		Chat:    "POST /api/chat",
	})
}
