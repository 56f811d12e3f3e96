package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/llm"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string    `json:"status"` // "healthy" or "degraded"
	Provider  string    `json:"provider"`
	Latency   string    `json:"latency,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler probes the narrative collaborator.
type HealthHandler struct {
	provider llm.Provider
	logger   *zap.Logger
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(provider llm.Provider, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{provider: provider, logger: logger}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := HealthStatus{Status: "healthy", Provider: h.provider.Name(), Timestamp: time.Now()}
	hs, err := h.provider.HealthCheck(ctx)
	if err != nil || hs == nil || !hs.Healthy {
		// The app still serves answers (with fallback copy), so a dead
		// collaborator degrades rather than fails the service.
		status.Status = "degraded"
		h.logger.Warn("collaborator health check failed", zap.Error(err))
	}
	if hs != nil {
		status.Latency = hs.Latency.String()
	}

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	WriteJSON(w, code, status)
}
