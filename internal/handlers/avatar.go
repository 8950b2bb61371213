package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/ssrf"
)

// AvatarUpdater defines the interface that the service must implement.
type AvatarUpdater interface {
	Update(ctx context.Context, userID int64, rawURL string) (int, error)
}

// UpdateAvatarRequest represents the JSON body for an avatar update
// swagger:model UpdateAvatarRequest
type UpdateAvatarRequest struct {
	// Remote image URL on a whitelisted domain
	// required: true
	// default: https://i.imgur.com/example.png
	AvatarURL string `json:"avatar_url"`
}

// UpdateAvatarResponse represents a successful avatar update
// swagger:model UpdateAvatarResponse
type UpdateAvatarResponse struct {
	// Stored avatar URL
	AvatarURL string `json:"avatar_url"`

	// Downloaded image size in bytes
	Size int `json:"size"`
}

// AvatarErrorResponse represents an error response for avatar updates
// swagger:model AvatarErrorResponse
type AvatarErrorResponse struct {
	// Error message
	// default: domain not allowed
	Error string `json:"error"`
}

// NewUpdateAvatarHandler returns an HTTP handler for updating the caller's
// avatar from a remote URL. The URL runs through the hardened admission
// and fetch pipeline; rejections at the private-IP stage are recorded as
// SSRF attempts.
// @Summary Update own avatar
// @Description Downloads the image through the SSRF-hardened pipeline and stores the URL.
// @Tags users
// @Accept json
// @Produce json
// @Param updateAvatarRequest body handlers.UpdateAvatarRequest true "Avatar update request"
// @Success 200 {object} handlers.UpdateAvatarResponse "Avatar updated"
// @Failure 400 {object} handlers.AvatarErrorResponse "URL rejected"
// @Failure 401 {object} handlers.AvatarErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.AvatarErrorResponse "Image could not be retrieved"
// @Router /users/me/avatar [put]
// @Security BearerAuth
func NewUpdateAvatarHandler(svc AvatarUpdater, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateAvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AvatarURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "avatar_url is required"})
			return
		}

		size, err := svc.Update(r.Context(), claims.UserID, req.AvatarURL)
		if err != nil {
			var rejection *ssrf.Rejection
			var badStatus *ssrf.BadStatusError
			switch {
			case errors.As(err, &rejection):
				action := models.ActionValidationError
				if rejection.SSRFAttempt() {
					action = models.ActionSSRFAttempt
				}
				recordEvent(r, recorder, action, &claims.UserID, false,
					fmt.Sprintf("avatar URL rejected at %s stage: %s", rejection.Stage, req.AvatarURL))
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AvatarErrorResponse{Error: rejection.Reason})
			case errors.As(err, &badStatus),
				errors.Is(err, ssrf.ErrTimeout),
				errors.Is(err, ssrf.ErrNetwork),
				errors.Is(err, ssrf.ErrContentType),
				errors.Is(err, ssrf.ErrTooLarge),
				errors.Is(err, ssrf.ErrEmpty):
				recordEvent(r, recorder, models.ActionAvatarUpdateFailed, &claims.UserID, false, err.Error())
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(AvatarErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AvatarErrorResponse{Error: "Internal server error"})
			}
			return
		}

		recordEvent(r, recorder, models.ActionAvatarUpdated, &claims.UserID, true,
			fmt.Sprintf("avatar set to %s (%d bytes)", req.AvatarURL, size))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateAvatarResponse{
			AvatarURL: req.AvatarURL,
			Size:      size,
		})
	}
}
