package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Dosada05/roster-graphql/lib/logger/sl"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *slog.Logger
}

func NewHealthHandler(db Pinger, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(slog.String("component", "handlers.health")),
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, body := http.StatusOK, jsonResponse{"status": "ok"}
	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(r.Context(), "database ping failed", sl.Err(err))
		status, body = http.StatusServiceUnavailable, jsonResponse{"status": "unavailable"}
	}

	if err := writeJSON(w, status, body, nil); err != nil {
		serverErrorResponse(w, r, h.log, err)
	}
}
