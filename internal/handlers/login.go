package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.UserDB, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT access token
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`

	// Token lifetime in seconds
	ExpiresIn int `json:"expires_in"`

	// Authenticated user
	User UserResponse `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// default: Invalid email or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies credentials and returns a JWT token. Failed attempts are recorded as security events.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.LoginResponse "Authenticated"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, recorder EventRecorder, expiresInSecond int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid request body"})
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				recordEvent(r, recorder, models.ActionLoginAttempt, nil, false, "invalid credentials for "+req.Email)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid email or password"})
			case errors.Is(err, services.ErrAccountDisabled):
				recordEvent(r, recorder, models.ActionLoginAttempt, nil, false, "login for disabled account "+req.Email)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Invalid email or password"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		recordEvent(r, recorder, models.ActionLoginAttempt, &user.ID, true, "login ok")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   expiresInSecond,
			User:        toUserResponse(user),
		})
	}
}
