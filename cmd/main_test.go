package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout
	output := buf.String()

	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2026-08-29")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.com", "b.com"}, splitList("a.com, b.com"))
	assert.Equal(t, []string{"a.com"}, splitList("a.com,,  "))
	assert.Nil(t, splitList(""))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	// Application
	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)

	// PostgreSQL
	assert.Equal(t, "localhost", cfg.pgHost)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, "mediclab", cfg.pgDB)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)

	// Redis
	assert.Equal(t, "localhost", cfg.redisHost)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 0, cfg.redisDB)

	// Kafka disabled by default
	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "security-events", cfg.kafkaSecurityTopic)

	// JWT
	assert.Equal(t, "my_super_secret_key", cfg.jwtSecretKey)
	assert.Equal(t, 1800, cfg.jwtExpSecond)

	// Avatar pipeline
	assert.Contains(t, cfg.avatarAllowedDomains, "i.imgur.com")
	assert.Contains(t, cfg.avatarExtensionExemptDomains, "gravatar.com")
	assert.Equal(t, 5, cfg.avatarFetchTimeoutSecond)
	assert.Equal(t, int64(5*1024*1024), cfg.avatarMaxBytes)
	assert.False(t, cfg.ssrfAllowLoopback)

	// Rate limits
	assert.Equal(t, 5, cfg.rateLimitLogin)
	assert.Equal(t, 3, cfg.rateLimitRegister)
	assert.Equal(t, 3, cfg.rateLimitAvatar)
	assert.Equal(t, 100, cfg.rateLimitDefault)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")

	os.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	os.Setenv("KAFKA_SECURITY_TOPIC", "audit")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("AVATAR_ALLOWED_DOMAINS", "pics.example.com")
	os.Setenv("AVATAR_EXTENSION_EXEMPT_DOMAINS", "pics.example.com")
	os.Setenv("AVATAR_FETCH_TIMEOUT_SECOND", "10")
	os.Setenv("AVATAR_MAX_BYTES", "1048576")
	os.Setenv("SSRF_ALLOW_LOOPBACK", "true")

	os.Setenv("RATE_LIMIT_LOGIN_PER_MINUTE", "2")
	os.Setenv("RATE_LIMIT_DEFAULT_PER_HOUR", "50")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.appHost)
	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, "pg.example.com", cfg.pgHost)
	assert.Equal(t, 5433, cfg.pgPort)
	assert.Equal(t, "admin", cfg.pgUser)
	assert.Equal(t, "secret", cfg.pgPassword)
	assert.Equal(t, "mydb", cfg.pgDB)
	assert.Equal(t, "redis.example.com", cfg.redisHost)
	assert.Equal(t, 6380, cfg.redisPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.kafkaBrokers)
	assert.Equal(t, "audit", cfg.kafkaSecurityTopic)
	assert.Equal(t, "supersecret", cfg.jwtSecretKey)
	assert.Equal(t, 300, cfg.jwtExpSecond)
	assert.Equal(t, []string{"pics.example.com"}, cfg.avatarAllowedDomains)
	assert.Equal(t, 10, cfg.avatarFetchTimeoutSecond)
	assert.Equal(t, int64(1048576), cfg.avatarMaxBytes)
	assert.True(t, cfg.ssrfAllowLoopback)
	assert.Equal(t, 2, cfg.rateLimitLogin)
	assert.Equal(t, 50, cfg.rateLimitDefault)
}

func TestParseConfig_BadValue(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestRun_GracefulStop(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "mediclab", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := &config{
		appHost:                  "127.0.0.1",
		appPort:                  "8086",
		logLevel:                 "debug",
		pgHost:                   pgHost,
		pgPort:                   pgPort.Int(),
		pgUser:                   "user",
		pgPassword:               "password",
		pgDB:                     "mediclab",
		pgMaxOpenConns:           5,
		pgMaxIdleConns:           2,
		redisHost:                redisHost,
		redisPort:                redisPort.Int(),
		redisPoolSize:            10,
		redisMinIdleConns:        2,
		kafkaSecurityTopic:       "security-events",
		jwtSecretKey:             "testsecret",
		jwtExpSecond:             60,
		avatarAllowedDomains:     []string{"i.imgur.com"},
		avatarFetchTimeoutSecond: 5,
		avatarMaxBytes:           5 * 1024 * 1024,
		rateLimitLogin:           5,
		rateLimitRegister:        3,
		rateLimitAvatar:          3,
		rateLimitDefault:         100,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
