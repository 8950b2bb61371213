package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/middlewares"
	"github.com/JorgeDuranS/MedicLab/internal/models"
	"github.com/JorgeDuranS/MedicLab/internal/services"
)

// AdminUserManager defines the interface that the service must implement.
type AdminUserManager interface {
	ListAll(ctx context.Context) ([]models.UserDB, error)
	GetProfile(ctx context.Context, id int64) (*models.UserDB, error)
	SetActive(ctx context.Context, id int64, active bool) (*models.UserDB, error)
}

// AuditReader defines the interface that the audit service must implement.
type AuditReader interface {
	GetEvents(ctx context.Context, filter models.SecurityEventFilter) ([]models.SecurityEventDB, error)
	GetStats(ctx context.Context) (*models.SecurityEventStats, error)
	Actions() []string
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewAdminListUsersHandler returns an HTTP handler listing every account.
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.UserResponse "Users"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminListUsersHandler(svc AdminUserManager, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		users, err := svc.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		recordEvent(r, recorder, models.ActionAdminAccess, &claims.UserID, true, "listed all users")

		resp := make([]UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, toUserResponse(&users[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewAdminGetUserHandler returns an HTTP handler for reading any account.
// @Summary Get a user
// @Tags admin
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} handlers.UserResponse "User"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/users/{id} [get]
// @Security BearerAuth
func NewAdminGetUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid user id"})
			return
		}

		user, err := svc.GetProfile(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to get user", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toUserResponse(user))
	}
}

// AdminUpdateUserRequest represents the JSON body for account management
// swagger:model AdminUpdateUserRequest
type AdminUpdateUserRequest struct {
	// Account status
	// required: true
	IsActive bool `json:"is_active"`
}

// NewAdminUpdateUserHandler returns an HTTP handler for activating or
// deactivating an account.
// @Summary Activate or deactivate a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param adminUpdateUserRequest body handlers.AdminUpdateUserRequest true "Account status"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/users/{id} [put]
// @Security BearerAuth
func NewAdminUpdateUserHandler(svc AdminUserManager, recorder EventRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid user id"})
			return
		}

		var req AdminUpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.SetActive(r.Context(), id, req.IsActive)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found"})
				return
			}
			logger.Log.Errorw("failed to update account status", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		recordEvent(r, recorder, models.ActionAdminAccess, &claims.UserID, true,
			fmt.Sprintf("set user %d active=%t", id, req.IsActive))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toUserResponse(user))
	}
}

// parseLogFilter builds a security-event filter from query parameters.
func parseLogFilter(r *http.Request) models.SecurityEventFilter {
	var filter models.SecurityEventFilter
	q := r.URL.Query()

	if action := q.Get("action"); action != "" {
		filter.Action = &action
	}
	if userIDStr := q.Get("user_id"); userIDStr != "" {
		if userID, err := strconv.ParseInt(userIDStr, 10, 64); err == nil {
			filter.UserID = &userID
		}
	}
	if successStr := q.Get("success"); successStr != "" {
		if success, err := strconv.ParseBool(successStr); err == nil {
			filter.Success = &success
		}
	}
	if fromStr := q.Get("from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filter.StartDate = &from
		}
	}
	if toStr := q.Get("to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			filter.EndDate = &to
		}
	}
	if ip := q.Get("ip"); ip != "" {
		filter.IPAddress = &ip
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}
	return filter
}

// SecurityEventResponse represents a security event in API responses
// swagger:model SecurityEventResponse
type SecurityEventResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	UserID    *int64    `json:"user_id,omitempty"`
	Success   bool      `json:"success"`
	Details   string    `json:"details"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdminListLogsHandler returns an HTTP handler for querying the
// security log.
// @Summary Query security events
// @Description Filterable by action, user, success, time range, and ip; paginated.
// @Tags admin
// @Produce json
// @Param action query string false "Action type"
// @Param user_id query int false "Actor id"
// @Param success query bool false "Outcome"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param ip query string false "Client address"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} handlers.SecurityEventResponse "Events"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Router /admin/logs [get]
// @Security BearerAuth
func NewAdminListLogsHandler(svc AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.GetEvents(r.Context(), parseLogFilter(r))
		if err != nil {
			logger.Log.Errorw("failed to query security log", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]SecurityEventResponse, 0, len(events))
		for _, e := range events {
			resp = append(resp, SecurityEventResponse{
				ID:        e.ID,
				Action:    e.Action,
				UserID:    e.UserID,
				Success:   e.Success,
				Details:   e.Details,
				IPAddress: e.IPAddress,
				UserAgent: e.UserAgent,
				CreatedAt: e.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// LogActionsResponse lists the recognized event action types
// swagger:model LogActionsResponse
type LogActionsResponse struct {
	Actions []string `json:"actions"`
}

// NewAdminLogActionsHandler returns an HTTP handler listing the action
// types available for log filtering.
// @Summary List security event action types
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.LogActionsResponse "Action types"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Router /admin/logs/actions [get]
// @Security BearerAuth
func NewAdminLogActionsHandler(svc AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogActionsResponse{Actions: svc.Actions()})
	}
}

// NewAdminLogStatsHandler returns an HTTP handler summarizing the audit
// trail.
// @Summary Security event statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.SecurityEventStats "Statistics"
// @Failure 403 {object} handlers.AdminErrorResponse "Forbidden"
// @Router /admin/logs/stats [get]
// @Security BearerAuth
func NewAdminLogStatsHandler(svc AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetStats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to aggregate security log", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
