package models

import "time"

// Security event actions recorded by the audit sink.
const (
	ActionLoginAttempt        = "LOGIN_ATTEMPT"
	ActionUserRegistration    = "USER_REGISTRATION"
	ActionRegistrationAttempt = "REGISTRATION_ATTEMPT"
	ActionUserLogout          = "USER_LOGOUT"
	ActionUnauthorizedAccess  = "UNAUTHORIZED_ACCESS"
	ActionRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	ActionSSRFAttempt         = "SSRF_ATTEMPT"
	ActionValidationError     = "VALIDATION_ERROR"
	ActionInvalidToken        = "INVALID_TOKEN"
	ActionAvatarUpdated       = "AVATAR_UPDATED"
	ActionAvatarUpdateFailed  = "AVATAR_UPDATE_FAILED"
	ActionProfileUpdated      = "PROFILE_UPDATED"
	ActionAppointmentsAccess  = "APPOINTMENTS_ACCESS"
	ActionAppointmentCreated  = "APPOINTMENT_CREATED"
	ActionAppointmentUpdated  = "APPOINTMENT_UPDATED"
	ActionAdminAccess         = "ADMIN_ACCESS"
)

// SecurityEventActions lists the action types exposed to the admin log
// viewer for filtering.
var SecurityEventActions = []string{
	ActionLoginAttempt,
	ActionUserRegistration,
	ActionRegistrationAttempt,
	ActionUserLogout,
	ActionUnauthorizedAccess,
	ActionRateLimitExceeded,
	ActionSSRFAttempt,
	ActionValidationError,
	ActionInvalidToken,
	ActionAvatarUpdated,
	ActionAvatarUpdateFailed,
	ActionProfileUpdated,
	ActionAppointmentsAccess,
	ActionAppointmentCreated,
	ActionAppointmentUpdated,
	ActionAdminAccess,
}

// SecurityEventDB represents one audit-trail row.
type SecurityEventDB struct {
	ID        int64     `db:"id"`
	Action    string    `db:"action"`
	UserID    *int64    `db:"user_id"`
	Success   bool      `db:"success"`
	Details   string    `db:"details"`
	IPAddress *string   `db:"ip_address"`
	UserAgent *string   `db:"user_agent"`
	CreatedAt time.Time `db:"created_at"`
}

// SecurityEventFilter narrows a security-log query. Nil fields are not
// applied.
type SecurityEventFilter struct {
	Action    *string
	UserID    *int64
	Success   *bool
	StartDate *time.Time
	EndDate   *time.Time
	IPAddress *string
	Limit     int
	Offset    int
}

// SecurityEventStats summarizes the audit trail for the admin dashboard.
type SecurityEventStats struct {
	TotalEvents    int64         `json:"total_events"`
	FailedEvents   int64         `json:"failed_events"`
	SuccessRate    float64       `json:"success_rate"`
	RecentEvents24 int64         `json:"recent_events_24h"`
	TopActions     []ActionCount `json:"top_actions"`
}

// ActionCount is one entry of the top-actions ranking.
type ActionCount struct {
	Action string `json:"action" db:"action"`
	Count  int64  `json:"count" db:"count"`
}
