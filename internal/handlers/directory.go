package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// DirectoryReader defines the interface that the service must implement.
type DirectoryReader interface {
	ListDoctors(ctx context.Context) ([]models.UserDB, error)
	ListPatients(ctx context.Context) ([]models.UserDB, error)
}

// DirectoryEntry represents one user in the booking directory
// swagger:model DirectoryEntry
type DirectoryEntry struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DirectoryErrorResponse represents an error response for directory listings
// swagger:model DirectoryErrorResponse
type DirectoryErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeDirectory(w http.ResponseWriter, users []models.UserDB, err error) {
	if err != nil {
		logger.Log.Errorw("failed to list directory", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(DirectoryErrorResponse{Error: "Internal server error"})
		return
	}

	entries := make([]DirectoryEntry, 0, len(users))
	for i := range users {
		entries = append(entries, DirectoryEntry{
			ID:        users[i].ID,
			FirstName: users[i].FirstName,
			LastName:  users[i].LastName,
			AvatarURL: users[i].AvatarURL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entries)
}

// NewListDoctorsHandler returns an HTTP handler for the doctor directory.
// @Summary List active doctors
// @Tags users
// @Produce json
// @Success 200 {array} handlers.DirectoryEntry "Doctors"
// @Failure 401 {object} handlers.DirectoryErrorResponse "Unauthorized"
// @Router /users/doctors [get]
// @Security BearerAuth
func NewListDoctorsHandler(svc DirectoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListDoctors(r.Context())
		writeDirectory(w, users, err)
	}
}

// NewListPatientsHandler returns an HTTP handler for the patient directory,
// used by doctors when booking.
// @Summary List active patients
// @Tags users
// @Produce json
// @Success 200 {array} handlers.DirectoryEntry "Patients"
// @Failure 401 {object} handlers.DirectoryErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DirectoryErrorResponse "Forbidden"
// @Router /users/patients [get]
// @Security BearerAuth
func NewListPatientsHandler(svc DirectoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListPatients(r.Context())
		writeDirectory(w, users, err)
	}
}
