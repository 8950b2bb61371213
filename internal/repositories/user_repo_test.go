package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeDuranS/MedicLab/internal/models"
)

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)

	id, err := writeRepo.Save(ctx, "alice@example.com", "hash1", models.RolePatient, "Alice", "Smith")
	require.NoError(t, err)
	docID, err := writeRepo.Save(ctx, "bob@example.com", "hash2", models.RoleDoctor, "Bob", "Jones")
	require.NoError(t, err)

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, models.RolePatient, user.Role)
		assert.True(t, user.IsActive)
		assert.Nil(t, user.AvatarURL)
	})

	t.Run("GetByEmail unknown", func(t *testing.T) {
		_, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "alice@example.com", "hash3", models.RolePatient, "Alice", "Clone")
		assert.Error(t, err)
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		err := writeRepo.UpdateProfile(ctx, id, "Alicia", "Smythe")
		require.NoError(t, err)

		user, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", user.FirstName)
		assert.Equal(t, "Smythe", user.LastName)
	})

	t.Run("UpdateAvatar", func(t *testing.T) {
		err := writeRepo.UpdateAvatar(ctx, id, "https://imgur.com/a.png")
		require.NoError(t, err)

		user, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, user.AvatarURL)
		assert.Equal(t, "https://imgur.com/a.png", *user.AvatarURL)
	})

	t.Run("GetActiveByRole excludes deactivated", func(t *testing.T) {
		doctors, err := readRepo.GetActiveByRole(ctx, models.RoleDoctor)
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, docID, doctors[0].ID)

		err = writeRepo.SetActive(ctx, docID, false)
		require.NoError(t, err)

		doctors, err = readRepo.GetActiveByRole(ctx, models.RoleDoctor)
		require.NoError(t, err)
		assert.Empty(t, doctors)
	})

	t.Run("GetAll includes deactivated", func(t *testing.T) {
		users, err := readRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}
