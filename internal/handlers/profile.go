package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

// ProfileReader defines the interface that the service must implement.
type ProfileReader interface {
	GetProfile(ctx context.Context, id int64) (*models.UserDB, error)
}

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, id int64, firstName, lastName string) (*models.UserDB, error)
}

// UserResponse represents a user in API responses
// swagger:model UserResponse
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

func toUserResponse(user *models.UserDB) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		AvatarURL: user.AvatarURL,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse "Profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toUserResponse(user))
	}
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's name.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UserResponse "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		req.FirstName = strings.TrimSpace(req.FirstName)
		req.LastName = strings.TrimSpace(req.LastName)
		if req.FirstName == "" || req.LastName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "First and last name are required"})
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, req.FirstName, req.LastName)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		recordEvent(r, recorder, models.ActionProfileUpdated, &claims.UserID, true, "profile updated")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toUserResponse(user))
	}
}
