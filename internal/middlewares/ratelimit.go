package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JorgeDuranS/MedicLab/internal/logger"
	"github.com/JorgeDuranS/MedicLab/internal/models"
)

// ClientIP returns the caller's address, preferring proxy headers over the
// socket peer.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware enforces a fixed-window per-client limit backed by
// Redis. If Redis is unavailable the request is allowed through: the
// limiter protects against abuse, it must not take the API down with it.
func RateLimitMiddleware(rdb *redis.Client, recorder EventRecorder, name string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := ClientIP(r)
			key := fmt.Sprintf("ratelimit:%s:%s", name, ip)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				logger.Log.Warnw("rate limit exceeded", "key", key, "count", count, "limit", limit)
				if recorder != nil {
					ua := r.UserAgent()
					recorder.Record(ctx, models.SecurityEventDB{
						Action:    models.ActionRateLimitExceeded,
						Success:   false,
						Details:   fmt.Sprintf("%s limit of %d per %s exceeded", name, limit, window),
						IPAddress: &ip,
						UserAgent: &ua,
					})
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
