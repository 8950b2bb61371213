package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout. Tokens are
// stateless; logout only records the event so sessions can be audited.
// @Summary Log out
// @Description Records a logout event. The client discards its token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 401 {object} handlers.LoginErrorResponse "Unauthorized"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		recordEvent(r, recorder, models.ActionUserLogout, &claims.UserID, true, "logout")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out"})
	}
}
