package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
host = "localhost"
port = 9000
log_level = "debug"
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "fitdash"
redis_host = "localhost"
redis_port = "6379"
allowed_origins = ["http://localhost:5173"]
query_cache_ttl = "45s"

[production]
host = "0.0.0.0"
port = 8080
log_level = "info"
postgres_user = "fitdash"
postgres_ssl_mode = "require"
recent_workouts_limit = 20
log_workout_rate_limit_per_minute = 10
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "fitdash", cfg.PostgresDBName)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, "disable", cfg.PostgresSSLMode)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.QueryCacheTTL.Duration)
	assert.Equal(t, 10, cfg.RecentWorkoutsLimit)
	assert.Equal(t, 30, cfg.LogWorkoutRateLimitPerMinute)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("production", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "fitdash", cfg.PostgresUser)
	assert.Equal(t, "require", cfg.PostgresSSLMode)
	assert.Equal(t, 20, cfg.RecentWorkoutsLimit)
	assert.Equal(t, 10, cfg.LogWorkoutRateLimitPerMinute)
	assert.Zero(t, cfg.QueryCacheTTL.Duration)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("staging", writeTestConfig(t))
	assert.Error(t, err)

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	emptyPath := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(emptyPath, []byte("[development]\nport = 1\n"), 0o600))
	_, err = Load("prod", emptyPath)
	assert.Error(t, err)
}
