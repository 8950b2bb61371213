package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

const appointmentColumns = `
	a.id, a.patient_id, a.doctor_id, a.appointment_date, a.description,
	a.status, a.created_at, a.updated_at,
	p.first_name || ' ' || p.last_name AS patient_name,
	d.first_name || ' ' || d.last_name AS doctor_name
`

const appointmentJoins = `
	FROM appointments a
	JOIN users p ON p.id = a.patient_id
	JOIN users d ON d.id = a.doctor_id
`

type AppointmentReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAppointmentReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AppointmentReadRepository {
	return &AppointmentReadRepository{db: db, txGetter: txGetter}
}

// executor returns the request transaction when one is open so reads issued
// after a write in the same request observe that write.
func (r *AppointmentReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetForPatient lists the appointments where the user is the patient.
func (r *AppointmentReadRepository) GetForPatient(ctx context.Context, patientID int64) ([]models.AppointmentDB, error) {
	query := `SELECT ` + appointmentColumns + appointmentJoins + `
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date
	`

	var appointments []models.AppointmentDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &appointments, query, patientID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{patientID},
		"count", len(appointments),
		"error", err,
	)

	return appointments, err
}

// GetForDoctor lists the appointments where the user is the doctor.
func (r *AppointmentReadRepository) GetForDoctor(ctx context.Context, doctorID int64) ([]models.AppointmentDB, error) {
	query := `SELECT ` + appointmentColumns + appointmentJoins + `
		WHERE a.doctor_id = $1
		ORDER BY a.appointment_date
	`

	var appointments []models.AppointmentDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &appointments, query, doctorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{doctorID},
		"count", len(appointments),
		"error", err,
	)

	return appointments, err
}

// GetAll lists every appointment, for the admin view.
func (r *AppointmentReadRepository) GetAll(ctx context.Context) ([]models.AppointmentDB, error) {
	query := `SELECT ` + appointmentColumns + appointmentJoins + `
		ORDER BY a.appointment_date
	`

	var appointments []models.AppointmentDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &appointments, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(appointments),
		"error", err,
	)

	return appointments, err
}

func (r *AppointmentReadRepository) GetByID(ctx context.Context, id int64) (*models.AppointmentDB, error) {
	query := `SELECT ` + appointmentColumns + appointmentJoins + `
		WHERE a.id = $1
		LIMIT 1
	`

	var appointment models.AppointmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &appointment, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

type AppointmentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAppointmentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AppointmentWriteRepository {
	return &AppointmentWriteRepository{db: db, txGetter: txGetter}
}

func (r *AppointmentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new appointment and returns its assigned id.
func (r *AppointmentWriteRepository) Save(ctx context.Context, patientID, doctorID int64, date time.Time, description *string) (int64, error) {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'scheduled', NOW(), NOW())
		RETURNING id
	`
	args := []any{patientID, doctorID, date, description}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{patientID, doctorID, date},
		"result", id,
		"error", err,
	)

	return id, err
}

// GetByIDForUpdate locks the appointment row for the duration of the
// enclosing transaction so the ownership check and the update see the
// same state.
func (r *AppointmentWriteRepository) GetByIDForUpdate(ctx context.Context, id int64) (*models.AppointmentDB, error) {
	query := `
		SELECT id, patient_id, doctor_id, appointment_date, description, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`

	var appointment models.AppointmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &appointment, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// Update applies the non-nil fields of the patch. An empty patch is a no-op.
func (r *AppointmentWriteRepository) Update(ctx context.Context, id int64, patch models.AppointmentUpdate) error {
	if patch.Empty() {
		return nil
	}

	query := `
		UPDATE appointments
		SET appointment_date = COALESCE($2, appointment_date),
		    description = COALESCE($3, description),
		    status = COALESCE($4, status),
		    updated_at = NOW()
		WHERE id = $1
	`
	args := []any{id, patch.AppointmentDate, patch.Description, patch.Status}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
