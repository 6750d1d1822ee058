package handlers

import (
	"database/sql"
	"net/http"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db *sql.DB
}

// NewHealthHandler creates a new health handler. db may be nil when the
// gateway runs without a database.
func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns the gateway's health status
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":   "ok",
		"database": "not configured",
	}

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			status["database"] = "unreachable"
		} else {
			status["database"] = "connected"
		}
	}

	renderJSON(w, http.StatusOK, status)
}
