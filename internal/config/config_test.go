package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "HOST", "PORT", "STATIC_DIR", "SHUTDOWN_TIMEOUT",
		"DATABASE_DRIVER", "DATABASE_URL", "ADMIN_PASSWORD",
		"RECENT_SUGGESTIONS_LIMIT", "CONFIG_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Keep a stray .env in the working directory out of the picture.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "127.0.0.1:8000", cfg.HTTP.Addr())
	assert.Equal(t, "web", cfg.HTTP.StaticDir)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "school_meals.db", cfg.Database.URL)
	assert.Empty(t, cfg.Admin.Password)
	assert.Equal(t, 8, cfg.Poll.RecentSuggestions)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://meals@localhost/meals")
	t.Setenv("RECENT_SUGGESTIONS_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://meals@localhost/meals", cfg.Database.URL)
	assert.Equal(t, 3, cfg.Poll.RecentSuggestions)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("ADMIN_PASSWORD=from-dotenv\nPORT=8123\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ADMIN_PASSWORD")
		os.Unsetenv("PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Admin.Password)
	assert.Equal(t, 8123, cfg.HTTP.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
env: production
http:
  host: 0.0.0.0
  port: 8080
database:
  driver: postgres
  url: postgres://meals@db/meals
admin:
  password: yaml-secret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "yaml-secret", cfg.Admin.Password)
	assert.Equal(t, "web", cfg.HTTP.StaticDir)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
