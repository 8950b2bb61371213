package handlers

import (
	"context"

	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// EventRecorder records security events without failing the request.
type EventRecorder interface {
	Record(ctx context.Context, event models.SecurityEventDB)
}

// recordEvent fills in the request-derived fields and hands the event to
// the recorder. A nil recorder or nil actor id is fine.
func recordEvent(r *http.Request, recorder EventRecorder, action string, userID *int64, success bool, details string) {
	if recorder == nil {
		return
	}
	ip := middlewares.ClientIP(r)
	ua := r.UserAgent()
	recorder.Record(r.Context(), models.SecurityEventDB{
		Action:    action,
		UserID:    userID,
		Success:   success,
		Details:   details,
		IPAddress: &ip,
		UserAgent: &ua,
	})
}
