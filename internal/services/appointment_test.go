package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

func int64Ptr(v int64) *int64 { return &v }

func newAppointmentService(t *testing.T) (*services.AppointmentService, *services.MockAppointmentReader, *services.MockAppointmentWriter, *services.MockUserReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockAppointmentReader(ctrl)
	writer := services.NewMockAppointmentWriter(ctrl)
	users := services.NewMockUserReader(ctrl)
	return services.NewAppointmentService(reader, writer, users), reader, writer, users
}

func TestAppointmentService_List(t *testing.T) {
	svc, reader, _, _ := newAppointmentService(t)
	ctx := context.Background()

	own := []models.AppointmentDB{{ID: 1}, {ID: 2}}
	all := []models.AppointmentDB{{ID: 1}, {ID: 2}, {ID: 3}}

	reader.EXPECT().GetForPatient(gomock.Any(), int64(10)).Return(own, nil)
	got, err := svc.List(ctx, 10, models.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, own, got)

	reader.EXPECT().GetForDoctor(gomock.Any(), int64(20)).Return(own, nil)
	got, err = svc.List(ctx, 20, models.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, own, got)

	reader.EXPECT().GetAll(gomock.Any()).Return(all, nil)
	got, err = svc.List(ctx, 30, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	_, err = svc.List(ctx, 40, "intruder")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestAppointmentService_Get(t *testing.T) {
	svc, reader, _, _ := newAppointmentService(t)
	ctx := context.Background()

	record := &models.AppointmentDB{ID: 5, PatientID: 10, DoctorID: 20}

	t.Run("owner patient sees own", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(record, nil)
		got, err := svc.Get(ctx, 10, models.RolePatient, 5)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("admin sees any", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(record, nil)
		_, err := svc.Get(ctx, 99, models.RoleAdmin, 5)
		assert.NoError(t, err)
	})

	t.Run("stranger gets not found, not forbidden", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(record, nil)
		_, err := svc.Get(ctx, 77, models.RoleDoctor, 5)
		assert.ErrorIs(t, err, services.ErrAppointmentNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, sql.ErrNoRows)
		_, err := svc.Get(ctx, 10, models.RolePatient, 6)
		assert.ErrorIs(t, err, services.ErrAppointmentNotFound)
	})
}

func TestAppointmentService_Create(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	activeDoctor := &models.UserDB{ID: 20, Role: models.RoleDoctor, IsActive: true}
	activePatient := &models.UserDB{ID: 10, Role: models.RolePatient, IsActive: true}

	t.Run("patient books doctor", func(t *testing.T) {
		svc, reader, writer, users := newAppointmentService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(20)).Return(activeDoctor, nil)
		writer.EXPECT().Save(gomock.Any(), int64(10), int64(20), future, (*string)(nil)).Return(int64(100), nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(&models.AppointmentDB{ID: 100, PatientID: 10, DoctorID: 20, Status: models.StatusScheduled}, nil)

		got, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(20), future, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10), got.PatientID)
		assert.Equal(t, int64(20), got.DoctorID)
		assert.Equal(t, models.StatusScheduled, got.Status)
	})

	t.Run("doctor books patient", func(t *testing.T) {
		svc, reader, writer, users := newAppointmentService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(10)).Return(activePatient, nil)
		writer.EXPECT().Save(gomock.Any(), int64(10), int64(20), future, (*string)(nil)).Return(int64(101), nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(101)).Return(&models.AppointmentDB{ID: 101}, nil)

		_, err := svc.Create(context.Background(), 20, models.RoleDoctor, int64Ptr(10), nil, future, nil)
		assert.NoError(t, err)
	})

	t.Run("admin names both parties", func(t *testing.T) {
		svc, reader, writer, users := newAppointmentService(t)

		users.EXPECT().GetByID(gomock.Any(), int64(10)).Return(activePatient, nil)
		users.EXPECT().GetByID(gomock.Any(), int64(20)).Return(activeDoctor, nil)
		writer.EXPECT().Save(gomock.Any(), int64(10), int64(20), future, (*string)(nil)).Return(int64(102), nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(102)).Return(&models.AppointmentDB{ID: 102}, nil)

		_, err := svc.Create(context.Background(), 99, models.RoleAdmin, int64Ptr(10), int64Ptr(20), future, nil)
		assert.NoError(t, err)
	})

	t.Run("past date rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(20), time.Now().Add(-time.Hour), nil)
		assert.ErrorIs(t, err, services.ErrPastDate)
	})

	t.Run("patient supplying both parties rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, int64Ptr(10), int64Ptr(20), future, nil)
		assert.ErrorIs(t, err, services.ErrPartySelection)
	})

	t.Run("patient supplying neither rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, nil, future, nil)
		assert.ErrorIs(t, err, services.ErrPartySelection)
	})

	t.Run("admin missing a party rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Create(context.Background(), 99, models.RoleAdmin, int64Ptr(10), nil, future, nil)
		assert.ErrorIs(t, err, services.ErrBothPartiesRequired)
	})

	t.Run("unknown counterpart rejected", func(t *testing.T) {
		svc, _, _, users := newAppointmentService(t)
		users.EXPECT().GetByID(gomock.Any(), int64(55)).Return(nil, sql.ErrNoRows)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(55), future, nil)
		assert.ErrorIs(t, err, services.ErrCounterpartInvalid)
	})

	t.Run("inactive counterpart rejected", func(t *testing.T) {
		svc, _, _, users := newAppointmentService(t)
		users.EXPECT().GetByID(gomock.Any(), int64(56)).Return(&models.UserDB{ID: 56, Role: models.RoleDoctor, IsActive: false}, nil)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(56), future, nil)
		assert.ErrorIs(t, err, services.ErrCounterpartInvalid)
	})

	t.Run("wrong role counterpart rejected", func(t *testing.T) {
		svc, _, _, users := newAppointmentService(t)
		users.EXPECT().GetByID(gomock.Any(), int64(57)).Return(&models.UserDB{ID: 57, Role: models.RolePatient, IsActive: true}, nil)
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(57), future, nil)
		assert.ErrorIs(t, err, services.ErrCounterpartInvalid)
	})

	t.Run("oversized description rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		long := string(make([]byte, 501))
		_, err := svc.Create(context.Background(), 10, models.RolePatient, nil, int64Ptr(20), future, &long)
		assert.ErrorIs(t, err, services.ErrDescriptionTooLong)
	})
}

func TestAppointmentService_Update(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	record := &models.AppointmentDB{ID: 5, PatientID: 10, DoctorID: 20, Status: models.StatusScheduled}

	t.Run("assigned doctor completes appointment", func(t *testing.T) {
		svc, reader, writer, _ := newAppointmentService(t)

		status := models.StatusCompleted
		patch := models.AppointmentUpdate{Status: &status}

		writer.EXPECT().GetByIDForUpdate(gomock.Any(), int64(5)).Return(record, nil)
		writer.EXPECT().Update(gomock.Any(), int64(5), patch).Return(nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.AppointmentDB{ID: 5, Status: status}, nil)

		got, err := svc.Update(context.Background(), 20, models.RoleDoctor, 5, patch)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
	})

	t.Run("patient never updates", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Update(context.Background(), 10, models.RolePatient, 5, models.AppointmentUpdate{})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("other doctor gets not found", func(t *testing.T) {
		svc, _, writer, _ := newAppointmentService(t)
		writer.EXPECT().GetByIDForUpdate(gomock.Any(), int64(5)).Return(record, nil)
		_, err := svc.Update(context.Background(), 77, models.RoleDoctor, 5, models.AppointmentUpdate{Status: strPtr(models.StatusCancelled)})
		assert.ErrorIs(t, err, services.ErrAppointmentNotFound)
	})

	t.Run("admin updates any", func(t *testing.T) {
		svc, reader, writer, _ := newAppointmentService(t)
		patch := models.AppointmentUpdate{AppointmentDate: &future}

		writer.EXPECT().GetByIDForUpdate(gomock.Any(), int64(5)).Return(record, nil)
		writer.EXPECT().Update(gomock.Any(), int64(5), patch).Return(nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(record, nil)

		_, err := svc.Update(context.Background(), 99, models.RoleAdmin, 5, patch)
		assert.NoError(t, err)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		svc, reader, writer, _ := newAppointmentService(t)
		writer.EXPECT().GetByIDForUpdate(gomock.Any(), int64(5)).Return(record, nil)
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(record, nil)

		got, err := svc.Update(context.Background(), 20, models.RoleDoctor, 5, models.AppointmentUpdate{})
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("past date rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		past := time.Now().Add(-time.Hour)
		_, err := svc.Update(context.Background(), 20, models.RoleDoctor, 5, models.AppointmentUpdate{AppointmentDate: &past})
		assert.ErrorIs(t, err, services.ErrPastDate)
	})

	t.Run("bad status rejected", func(t *testing.T) {
		svc, _, _, _ := newAppointmentService(t)
		_, err := svc.Update(context.Background(), 20, models.RoleDoctor, 5, models.AppointmentUpdate{Status: strPtr("rescheduled")})
		assert.ErrorIs(t, err, services.ErrInvalidStatus)
	})

	t.Run("missing row", func(t *testing.T) {
		svc, _, writer, _ := newAppointmentService(t)
		writer.EXPECT().GetByIDForUpdate(gomock.Any(), int64(6)).Return(nil, sql.ErrNoRows)
		_, err := svc.Update(context.Background(), 20, models.RoleDoctor, 6, models.AppointmentUpdate{Status: strPtr(models.StatusCancelled)})
		assert.ErrorIs(t, err, services.ErrAppointmentNotFound)
	})
}

func strPtr(s string) *string { return &s }
