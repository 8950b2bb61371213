package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, role, first_name, last_name, avatar_url, is_active, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, role, first_name, last_name, avatar_url, is_active, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetActiveByRole lists the active users with the given role, for the
// doctor and patient directories.
func (r *UserReadRepository) GetActiveByRole(ctx context.Context, role string) ([]models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, role, first_name, last_name, avatar_url, is_active, created_at
		FROM users
		WHERE role = $1 AND is_active = TRUE
		ORDER BY last_name, first_name
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query, role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{role},
		"count", len(users),
		"error", err,
	)

	return users, err
}

// GetAll lists every user regardless of status, for the admin view.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, role, first_name, last_name, avatar_url, is_active, created_at
		FROM users
		ORDER BY id
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	return users, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns its assigned id.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash, role, firstName, lastName string) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash, role, first_name, last_name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING id
	`
	args := []any{email, passwordHash, role, firstName, lastName}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, role, firstName, lastName},
		"result", id,
		"error", err,
	)

	return id, err
}

func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName string) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3
		WHERE id = $1
	`
	args := []any{id, firstName, lastName}

	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, id int64, avatarURL string) error {
	query := `
		UPDATE users
		SET avatar_url = $2
		WHERE id = $1
	`
	args := []any{id, avatarURL}

	res, err := r.db.ExecContext(ctx, query, args...)
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

// SetActive flips the account status, for admin deactivation.
func (r *UserWriteRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `
		UPDATE users
		SET is_active = $2
		WHERE id = $1
	`
	args := []any{id, active}

	res, err := r.db.ExecContext(ctx, query, args...)
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
