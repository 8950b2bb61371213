package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: ok
	Status string `json:"status"`

	// Database reachability
	Database string `json:"database"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Healthy"
// @Failure 503 {object} handlers.HealthResponse "Degraded"
// @Router /health [get]
func NewHealthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Database: "ok"}
		code := http.StatusOK

		if err := db.PingContext(r.Context()); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(resp)
	}
}
