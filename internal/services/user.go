package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserService serves profiles, the doctor/patient directories, and the
// admin user management surface.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// GetProfile returns one user by id.
func (svc *UserService) GetProfile(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the user's display name.
func (svc *UserService) UpdateProfile(ctx context.Context, id int64, firstName, lastName string) (*models.UserDB, error) {
	if err := svc.writer.UpdateProfile(ctx, id, firstName, lastName); err != nil {
		logger.Log.Errorw("failed to update profile", "id", id, "error", err)
		return nil, err
	}
	return svc.GetProfile(ctx, id)
}

// ListDoctors returns the active doctors for the booking directory.
func (svc *UserService) ListDoctors(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.GetActiveByRole(ctx, models.RoleDoctor)
}

// ListPatients returns the active patients for the booking directory.
func (svc *UserService) ListPatients(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.GetActiveByRole(ctx, models.RolePatient)
}

// ListAll returns every user including deactivated ones, for admins.
func (svc *UserService) ListAll(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.GetAll(ctx)
}

// SetActive enables or disables an account.
func (svc *UserService) SetActive(ctx context.Context, id int64, active bool) (*models.UserDB, error) {
	if _, err := svc.GetProfile(ctx, id); err != nil {
		return nil, err
	}
	if err := svc.writer.SetActive(ctx, id, active); err != nil {
		logger.Log.Errorw("failed to change account status", "id", id, "active", active, "error", err)
		return nil, err
	}
	return svc.GetProfile(ctx, id)
}
