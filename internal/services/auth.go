package services

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit")
	ErrInvalidRole        = errors.New("role must be patient or doctor")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetActiveByRole(ctx context.Context, role string) ([]models.UserDB, error)
	GetAll(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash, role, firstName, lastName string) (int64, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName string) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, email, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

func passwordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// Register creates a new patient or doctor account. Admin accounts are
// provisioned out of band, never through self-registration.
func (svc *AuthService) Register(ctx context.Context, email, password, role, firstName, lastName string) (int64, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, ErrInvalidEmail
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		return 0, ErrInvalidRole
	}
	if !passwordStrong(password) {
		return 0, ErrWeakPassword
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return 0, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, email, string(hashedPassword), role, firstName, lastName)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns a JWT token with the user row.
// Unknown accounts and wrong passwords are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("login for unknown account", "email", email)
			return "", nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Warnw("login for disabled account", "email", email)
		return "", nil, ErrAccountDisabled
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
