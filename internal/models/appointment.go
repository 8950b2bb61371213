package models

import "time"

// Appointment lifecycle states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether status is a recognized appointment status.
func ValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AppointmentDB represents an appointment row joined with the denormalized
// names of both parties.
type AppointmentDB struct {
	ID              int64     `db:"id"`
	PatientID       int64     `db:"patient_id"`
	DoctorID        int64     `db:"doctor_id"`
	AppointmentDate time.Time `db:"appointment_date"`
	Description     *string   `db:"description"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	PatientName     string    `db:"patient_name"`
	DoctorName      string    `db:"doctor_name"`
}

// AppointmentUpdate carries the fields of a partial appointment update.
// Nil fields are left untouched; an update with all fields nil is a no-op.
type AppointmentUpdate struct {
	AppointmentDate *time.Time
	Description     *string
	Status          *string
}

// Empty reports whether the update carries no recognized fields.
func (u AppointmentUpdate) Empty() bool {
	return u.AppointmentDate == nil && u.Description == nil && u.Status == nil
}
