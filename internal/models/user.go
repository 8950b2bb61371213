package models

import "time"

// User roles recognized by the access policy.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the recognized user roles.
func ValidRole(role string) bool {
	switch role {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// UserDB represents a user row in the database.
type UserDB struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	AvatarURL    *string   `db:"avatar_url"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// FullName returns the user's display name.
func (u *UserDB) FullName() string {
	return u.FirstName + " " + u.LastName
}
