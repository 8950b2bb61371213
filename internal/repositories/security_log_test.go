package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeDuranS/MedicLab/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSecurityLogRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, db, "audited@example.com", models.RolePatient)

	writeRepo := NewSecurityLogWriteRepository(db)
	readRepo := NewSecurityLogReadRepository(db)

	events := []models.SecurityEventDB{
		{UserID: &userID, Action: models.ActionLoginAttempt, Success: true, IPAddress: strPtr("203.0.113.7"), Details: "login ok"},
		{UserID: &userID, Action: models.ActionLoginAttempt, Success: false, IPAddress: strPtr("203.0.113.7"), Details: "bad password"},
		{UserID: nil, Action: models.ActionLoginAttempt, Success: false, IPAddress: strPtr("198.51.100.9"), Details: "unknown account"},
		{UserID: &userID, Action: models.ActionSSRFAttempt, Success: false, IPAddress: strPtr("203.0.113.7"), Details: "private IP target"},
	}
	for _, e := range events {
		require.NoError(t, writeRepo.Save(ctx, e))
	}

	t.Run("unfiltered returns all", func(t *testing.T) {
		got, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("filter by action", func(t *testing.T) {
		action := models.ActionSSRFAttempt
		got, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{Action: &action})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "private IP target", got[0].Details)
	})

	t.Run("filter by user and success", func(t *testing.T) {
		success := false
		got, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{UserID: &userID, Success: &success})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filter by ip", func(t *testing.T) {
		ip := "198.51.100.9"
		got, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{IPAddress: &ip})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].UserID)
	})

	t.Run("pagination", func(t *testing.T) {
		got, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		rest, err := readRepo.GetFiltered(ctx, models.SecurityEventFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := readRepo.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalEvents)
		assert.Equal(t, int64(3), stats.FailedEvents)
		assert.Equal(t, int64(4), stats.RecentEvents24)
		assert.InDelta(t, 25.0, stats.SuccessRate, 0.01)
		require.NotEmpty(t, stats.TopActions)
		assert.Equal(t, models.ActionLoginAttempt, stats.TopActions[0].Action)
		assert.Equal(t, int64(3), stats.TopActions[0].Count)
	})
}
