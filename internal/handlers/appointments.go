package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

// AppointmentLister defines the interface that the service must implement.
type AppointmentLister interface {
	List(ctx context.Context, actorID int64, role string) ([]models.AppointmentDB, error)
}

// AppointmentGetter defines the interface that the service must implement.
type AppointmentGetter interface {
	Get(ctx context.Context, actorID int64, role string, id int64) (*models.AppointmentDB, error)
}

// AppointmentCreator defines the interface that the service must implement.
type AppointmentCreator interface {
	Create(ctx context.Context, actorID int64, role string, patientID, doctorID *int64, date time.Time, description *string) (*models.AppointmentDB, error)
}

// AppointmentUpdater defines the interface that the service must implement.
type AppointmentUpdater interface {
	Update(ctx context.Context, actorID int64, role string, id int64, patch models.AppointmentUpdate) (*models.AppointmentDB, error)
}

// AppointmentResponse represents an appointment in API responses
// swagger:model AppointmentResponse
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	Description     *string   `json:"description,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentErrorResponse represents an error response for appointment operations
// swagger:model AppointmentErrorResponse
type AppointmentErrorResponse struct {
	// Error message
	// default: Appointment not found
	Error string `json:"error"`
}

func toAppointmentResponse(a *models.AppointmentDB) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		PatientName:     a.PatientName,
		DoctorName:      a.DoctorName,
		AppointmentDate: a.AppointmentDate,
		Description:     a.Description,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// writeAppointmentError maps service errors to status codes. Not-owned
// records surface as 404 so appointment ids cannot be enumerated.
func writeAppointmentError(w http.ResponseWriter, r *http.Request, recorder EventRecorder, actorID int64, err error) {
	switch {
	case errors.Is(err, services.ErrAppointmentNotFound):
		recordEvent(r, recorder, models.ActionUnauthorizedAccess, &actorID, false,
			fmt.Sprintf("appointment access denied: %s %s", r.Method, r.URL.Path))
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Appointment not found"})
	case errors.Is(err, services.ErrForbidden):
		recordEvent(r, recorder, models.ActionUnauthorizedAccess, &actorID, false,
			fmt.Sprintf("appointment operation forbidden: %s %s", r.Method, r.URL.Path))
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrPartySelection),
		errors.Is(err, services.ErrBothPartiesRequired),
		errors.Is(err, services.ErrCounterpartInvalid),
		errors.Is(err, services.ErrPastDate),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrDescriptionTooLong):
		recordEvent(r, recorder, models.ActionValidationError, &actorID, false, err.Error())
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
	}
}

// NewListAppointmentsHandler returns an HTTP handler for listing the
// caller's appointments.
// @Summary List appointments
// @Description Patients and doctors see their own appointments; admins see all.
// @Tags appointments
// @Produce json
// @Success 200 {array} handlers.AppointmentResponse "Appointments"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Router /appointments [get]
// @Security BearerAuth
func NewListAppointmentsHandler(svc AppointmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		appointments, err := svc.List(r.Context(), claims.UserID, claims.Role)
		if err != nil {
			logger.Log.Errorw("failed to list appointments", "user_id", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]AppointmentResponse, 0, len(appointments))
		for i := range appointments {
			resp = append(resp, toAppointmentResponse(&appointments[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// CreateAppointmentRequest represents the JSON body for booking an appointment
// swagger:model CreateAppointmentRequest
type CreateAppointmentRequest struct {
	// Patient id, set by doctor or admin callers
	PatientID *int64 `json:"patient_id,omitempty"`

	// Doctor id, set by patient or admin callers
	DoctorID *int64 `json:"doctor_id,omitempty"`

	// Scheduled time, must be in the future
	// required: true
	AppointmentDate time.Time `json:"appointment_date"`

	// Optional description
	Description *string `json:"description,omitempty"`
}

// NewCreateAppointmentHandler returns an HTTP handler for booking an appointment.
// @Summary Create an appointment
// @Description A patient names the doctor, a doctor names the patient, an admin names both.
// @Tags appointments
// @Accept json
// @Produce json
// @Param createAppointmentRequest body handlers.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} handlers.AppointmentResponse "Created appointment"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Router /appointments [post]
// @Security BearerAuth
func NewCreateAppointmentHandler(svc AppointmentCreator, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid request body"})
			return
		}

		appointment, err := svc.Create(r.Context(), claims.UserID, claims.Role,
			req.PatientID, req.DoctorID, req.AppointmentDate, req.Description)
		if err != nil {
			writeAppointmentError(w, r, recorder, claims.UserID, err)
			return
		}

		recordEvent(r, recorder, models.ActionAppointmentCreated, &claims.UserID, true,
			fmt.Sprintf("appointment %d created", appointment.ID))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toAppointmentResponse(appointment))
	}
}

// NewGetAppointmentHandler returns an HTTP handler for reading one appointment.
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment id"
// @Success 200 {object} handlers.AppointmentResponse "Appointment"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{id} [get]
// @Security BearerAuth
func NewGetAppointmentHandler(svc AppointmentGetter, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment id"})
			return
		}

		appointment, err := svc.Get(r.Context(), claims.UserID, claims.Role, id)
		if err != nil {
			writeAppointmentError(w, r, recorder, claims.UserID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toAppointmentResponse(appointment))
	}
}

// UpdateAppointmentRequest represents the JSON body for an appointment update.
// All fields are optional; an empty body is accepted as a no-op.
// swagger:model UpdateAppointmentRequest
type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Status          *string    `json:"status,omitempty"`
}

// NewUpdateAppointmentHandler returns an HTTP handler for updating an appointment.
// @Summary Update an appointment
// @Description Only the assigned doctor or an admin may update.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment id"
// @Param updateAppointmentRequest body handlers.UpdateAppointmentRequest true "Appointment update"
// @Success 200 {object} handlers.AppointmentResponse "Updated appointment"
// @Failure 400 {object} handlers.AppointmentErrorResponse "Invalid request"
// @Failure 401 {object} handlers.AppointmentErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.AppointmentErrorResponse "Forbidden"
// @Failure 404 {object} handlers.AppointmentErrorResponse "Appointment not found"
// @Router /appointments/{id} [put]
// @Security BearerAuth
func NewUpdateAppointmentHandler(svc AppointmentUpdater, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid appointment id"})
			return
		}

		var req UpdateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AppointmentErrorResponse{Error: "Invalid request body"})
			return
		}

		appointment, err := svc.Update(r.Context(), claims.UserID, claims.Role, id, models.AppointmentUpdate{
			AppointmentDate: req.AppointmentDate,
			Description:     req.Description,
			Status:          req.Status,
		})
		if err != nil {
			writeAppointmentError(w, r, recorder, claims.UserID, err)
			return
		}

		recordEvent(r, recorder, models.ActionAppointmentUpdated, &claims.UserID, true,
			fmt.Sprintf("appointment %d updated", id))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toAppointmentResponse(appointment))
	}
}
