package middlewares

import (
	"context"
	"net/http"

	"github.com/JorgeDuranS/MedicLab/internal/jwt"
	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// Tokener defines the minimal interface needed by the auth middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventRecorder records security events without failing the request.
type EventRecorder interface {
	Record(ctx context.Context, event models.SecurityEventDB)
}

type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// SetClaimsToContext stores authenticated claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext returns the authenticated claims, or nil when the
// request did not pass the auth middleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// AuthMiddleware validates the bearer token and stores its claims in the
// request context. Rejections are recorded as security events.
func AuthMiddleware(tokener Tokener, recorder EventRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				recordAuthFailure(ctx, recorder, r, "missing or malformed authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				recordAuthFailure(ctx, recorder, r, "invalid or expired token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func recordAuthFailure(ctx context.Context, recorder EventRecorder, r *http.Request, detail string) {
	if recorder == nil {
		return
	}
	ip := ClientIP(r)
	ua := r.UserAgent()
	recorder.Record(ctx, models.SecurityEventDB{
		Action:    models.ActionInvalidToken,
		Success:   false,
		Details:   detail,
		IPAddress: &ip,
		UserAgent: &ua,
	})
}
