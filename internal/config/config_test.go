package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niiakoadjei/BlogApp/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_USER", "bloguser")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, constants.EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, constants.DefaultJWTExpiry, cfg.JWT.Expiry)
	assert.Equal(t, constants.DefaultJWTRefreshExpiry, cfg.JWT.RefreshExpiry)
	assert.Equal(t, constants.DefaultJWTRememberExpiry, cfg.JWT.RememberExpiry)
	assert.Equal(t, 30*time.Minute, cfg.JWT.ResetExpiry)
	assert.Equal(t, constants.DevBcryptCost, cfg.PasswordHash.Cost)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("DB_USER", "bloguser")

	content := []byte(`
app:
  environment: testing
server:
  port: 9090
jwt:
  expiry: 5m
  issuer: custom-issuer
database:
  host: db.internal
  port: 5433
  name: blog
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "testing", cfg.App.Environment)
	assert.True(t, cfg.App.IsTesting())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, "custom-issuer", cfg.JWT.Issuer)
	assert.Contains(t, cfg.Database.ConnectionString(), "host=db.internal")
	assert.Contains(t, cfg.Database.ConnectionString(), "port=5433")
	assert.Contains(t, cfg.Database.ConnectionString(), "sslmode=disable")
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DB_USER", "bloguser")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_RESET_EXPIRY", "10m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	content := []byte("server:\n  port: 9090\n")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.JWT.ResetExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidateConfig(t *testing.T) {
	t.Setenv("DB_USER", "bloguser")
	t.Setenv("APP_ENV", "staging")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("DB_USER", "bloguser")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
