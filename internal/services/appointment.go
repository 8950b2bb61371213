package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrForbidden           = errors.New("operation not permitted for this role")
	ErrPartySelection      = errors.New("exactly one of doctor_id or patient_id must be provided")
	ErrBothPartiesRequired = errors.New("both patient_id and doctor_id must be provided")
	ErrCounterpartInvalid  = errors.New("named counterpart does not exist, is inactive, or has the wrong role")
	ErrPastDate            = errors.New("appointment date must be in the future")
	ErrInvalidStatus       = errors.New("status must be scheduled, completed or cancelled")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
)

const maxDescriptionLen = 500

// AppointmentReader defines read operations for appointments.
type AppointmentReader interface {
	GetForPatient(ctx context.Context, patientID int64) ([]models.AppointmentDB, error)
	GetForDoctor(ctx context.Context, doctorID int64) ([]models.AppointmentDB, error)
	GetAll(ctx context.Context) ([]models.AppointmentDB, error)
	GetByID(ctx context.Context, id int64) (*models.AppointmentDB, error)
}

// AppointmentWriter defines write operations for appointments.
type AppointmentWriter interface {
	Save(ctx context.Context, patientID, doctorID int64, date time.Time, description *string) (int64, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.AppointmentDB, error)
	Update(ctx context.Context, id int64, patch models.AppointmentUpdate) error
}

// AppointmentService enforces the role-scoped access policy over
// appointment records. Records a caller does not own are reported as
// not found, never as forbidden, so ids cannot be enumerated.
type AppointmentService struct {
	readRepo  AppointmentReader
	writeRepo AppointmentWriter
	users     UserReader
}

// NewAppointmentService creates a new AppointmentService.
func NewAppointmentService(readRepo AppointmentReader, writeRepo AppointmentWriter, users UserReader) *AppointmentService {
	return &AppointmentService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		users:     users,
	}
}

// List returns the appointments visible to the caller: own rows for
// patients and doctors, every row for admins.
func (svc *AppointmentService) List(ctx context.Context, actorID int64, role string) ([]models.AppointmentDB, error) {
	switch role {
	case models.RolePatient:
		return svc.readRepo.GetForPatient(ctx, actorID)
	case models.RoleDoctor:
		return svc.readRepo.GetForDoctor(ctx, actorID)
	case models.RoleAdmin:
		return svc.readRepo.GetAll(ctx)
	}
	logger.Log.Warnw("list with unknown role", "actor_id", actorID, "role", role)
	return nil, ErrForbidden
}

// Get returns one appointment if the caller may see it.
func (svc *AppointmentService) Get(ctx context.Context, actorID int64, role string, id int64) (*models.AppointmentDB, error) {
	appointment, err := svc.readRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		logger.Log.Errorw("failed to get appointment", "id", id, "error", err)
		return nil, err
	}

	if role != models.RoleAdmin && appointment.PatientID != actorID && appointment.DoctorID != actorID {
		logger.Log.Warnw("appointment access denied", "actor_id", actorID, "role", role, "appointment_id", id)
		return nil, ErrAppointmentNotFound
	}

	return appointment, nil
}

// checkCounterpart verifies the named party exists, is active, and holds
// the expected role.
func (svc *AppointmentService) checkCounterpart(ctx context.Context, id int64, role string) error {
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCounterpartInvalid
		}
		return err
	}
	if !user.IsActive || user.Role != role {
		return ErrCounterpartInvalid
	}
	return nil
}

// Create books an appointment. A patient names the doctor, a doctor names
// the patient, and an admin names both parties explicitly.
func (svc *AppointmentService) Create(ctx context.Context, actorID int64, role string, patientID, doctorID *int64, date time.Time, description *string) (*models.AppointmentDB, error) {
	if !date.After(time.Now()) {
		return nil, ErrPastDate
	}
	if description != nil && len(*description) > maxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}

	var patient, doctor int64
	switch role {
	case models.RolePatient:
		if doctorID == nil || patientID != nil {
			return nil, ErrPartySelection
		}
		patient, doctor = actorID, *doctorID
		if err := svc.checkCounterpart(ctx, doctor, models.RoleDoctor); err != nil {
			return nil, err
		}
	case models.RoleDoctor:
		if patientID == nil || doctorID != nil {
			return nil, ErrPartySelection
		}
		patient, doctor = *patientID, actorID
		if err := svc.checkCounterpart(ctx, patient, models.RolePatient); err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		if patientID == nil || doctorID == nil {
			return nil, ErrBothPartiesRequired
		}
		patient, doctor = *patientID, *doctorID
		if err := svc.checkCounterpart(ctx, patient, models.RolePatient); err != nil {
			return nil, err
		}
		if err := svc.checkCounterpart(ctx, doctor, models.RoleDoctor); err != nil {
			return nil, err
		}
	default:
		return nil, ErrForbidden
	}

	id, err := svc.writeRepo.Save(ctx, patient, doctor, date, description)
	if err != nil {
		logger.Log.Errorw("failed to save appointment", "patient_id", patient, "doctor_id", doctor, "error", err)
		return nil, err
	}

	return svc.readRepo.GetByID(ctx, id)
}

// Update mutates an appointment. Only the assigned doctor or an admin may
// update; patients never can. The ownership check and the write run in
// the same transaction, with the row locked in between.
func (svc *AppointmentService) Update(ctx context.Context, actorID int64, role string, id int64, patch models.AppointmentUpdate) (*models.AppointmentDB, error) {
	if role == models.RolePatient {
		return nil, ErrForbidden
	}

	if patch.AppointmentDate != nil && !patch.AppointmentDate.After(time.Now()) {
		return nil, ErrPastDate
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return nil, ErrInvalidStatus
	}
	if patch.Description != nil && len(*patch.Description) > maxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}

	appointment, err := svc.writeRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		logger.Log.Errorw("failed to lock appointment", "id", id, "error", err)
		return nil, err
	}

	if role == models.RoleDoctor && appointment.DoctorID != actorID {
		logger.Log.Warnw("appointment update denied", "actor_id", actorID, "appointment_id", id)
		return nil, ErrAppointmentNotFound
	}

	if patch.Empty() {
		return svc.readRepo.GetByID(ctx, id)
	}

	if err := svc.writeRepo.Update(ctx, id, patch); err != nil {
		logger.Log.Errorw("failed to update appointment", "id", id, "error", err)
		return nil, err
	}

	return svc.readRepo.GetByID(ctx, id)
}
