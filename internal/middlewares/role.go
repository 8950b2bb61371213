package middlewares

import (
	"fmt"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// RequireRoles rejects authenticated callers whose role is not in the
// allowed set. Must run after AuthMiddleware. Wrong-role access is a 403
// and is always recorded as a security event.
func RequireRoles(recorder EventRecorder, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims := GetClaimsFromContext(ctx)
			if claims == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, ok := allowed[claims.Role]; !ok {
				logger.Log.Warnw("role check failed",
					"user_id", claims.UserID, "role", claims.Role, "path", r.URL.Path)
				if recorder != nil {
					ip := ClientIP(r)
					ua := r.UserAgent()
					recorder.Record(ctx, models.SecurityEventDB{
						Action:    models.ActionUnauthorizedAccess,
						UserID:    &claims.UserID,
						Success:   false,
						Details:   fmt.Sprintf("role %s denied for %s %s", claims.Role, r.Method, r.URL.Path),
						IPAddress: &ip,
						UserAgent: &ua,
					})
				}
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
