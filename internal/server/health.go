package server

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is anything with a pingable backing connection.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the backing stores are reachable.
type HealthHandler struct {
	checks []HealthChecker
}

func NewHealthHandler(checks []HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, MessageEnvelope{Error: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "ok"})
}
