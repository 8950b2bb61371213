package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/JorgeDuranS/MedicLab/internal/models"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{name: "forwarded-for wins", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-IP": "198.51.100.2"}, remote: "127.0.0.1:1234", expected: "203.0.113.7"},
		{name: "real-ip fallback", headers: map[string]string{"X-Real-IP": "198.51.100.2"}, remote: "127.0.0.1:1234", expected: "198.51.100.2"},
		{name: "remote addr fallback", remote: "192.0.2.5:4321", expected: "192.0.2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, ClientIP(req))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("requests over the limit get 429 and an event", func(t *testing.T) {
		recorder := NewMockEventRecorder(ctrl)
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event models.SecurityEventDB) {
			assert.Equal(t, models.ActionRateLimitExceeded, event.Action)
		})

		handler := RateLimitMiddleware(rdb, recorder, "login", 3, time.Minute)(next)

		for i := 0; i < 3; i++ {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			r.RemoteAddr = "203.0.113.7:1000"
			handler.ServeHTTP(rr, r)
			assert.Equal(t, http.StatusOK, rr.Code)
		}

		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.RemoteAddr = "203.0.113.7:1000"
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		handler := RateLimitMiddleware(rdb, nil, "register", 1, time.Minute)(next)

		first := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
		first.RemoteAddr = "198.51.100.1:1000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, first)
		assert.Equal(t, http.StatusOK, rr.Code)

		second := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
		second.RemoteAddr = "198.51.100.2:1000"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		defer dead.Close()

		handler := RateLimitMiddleware(dead, nil, "default", 1, time.Minute)(next)

		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
