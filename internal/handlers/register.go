package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, role, firstName, lastName string) (int64, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: Secret123
	Password string `json:"password"`

	// Role, patient or doctor
	// required: true
	// default: patient
	Role string `json:"role"`

	// First name
	// required: true
	// default: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Assigned user id
	ID int64 `json:"id"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a patient or doctor account. Ensures unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Invalid request body"})
			return
		}

		id, err := svc.Register(r.Context(), req.Email, req.Password, req.Role, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken),
				errors.Is(err, services.ErrInvalidEmail),
				errors.Is(err, services.ErrWeakPassword),
				errors.Is(err, services.ErrInvalidRole):
				recordEvent(r, recorder, models.ActionRegistrationAttempt, nil, false, err.Error())
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
			}
			return
		}

		recordEvent(r, recorder, models.ActionUserRegistration, &id, true,
			fmt.Sprintf("registered %s as %s", req.Email, req.Role))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully",
			ID:      id,
		})
	}
}
