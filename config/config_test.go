package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "access_token", cfg.Auth.AccessCookieName)
	assert.Equal(t, "refresh_token", cfg.Auth.RefreshCookieName)
	assert.Equal(t, "/admin/dashboard", cfg.Auth.AdminLandingPath)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Backend.RefreshTimeout)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.campushire.io/")
	t.Setenv("BACKEND_REFRESH_TIMEOUT", "2s")
	t.Setenv("AUTH_ADMIN_LANDING_PATH", "/admin/users")
	t.Setenv("HTTP_ADDR", ":8443")
	t.Setenv("LOG_LEVEL", "DEBUG")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://api.campushire.io", cfg.Backend.URL, "trailing slash trimmed")
	assert.Equal(t, 2*time.Second, cfg.Backend.RefreshTimeout)
	assert.Equal(t, "/admin/users", cfg.Auth.AdminLandingPath)
	assert.Equal(t, ":8443", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestSanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		Auth:          AuthConfig{AdminLandingPath: "admin"},
		Backend:       BackendConfig{URL: "  ", RequestTimeout: -1, RefreshTimeout: 0},
		HTTP:          HTTPConfig{Addr: ""},
		Observability: ObservabilityConfig{LogLevel: "verbose", LogFormat: "yaml"},
	}
	cfg.Sanitize()

	assert.Equal(t, "/admin/dashboard", cfg.Auth.AdminLandingPath)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Backend.RefreshTimeout)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestRefreshTimeoutClampedToRequestTimeout(t *testing.T) {
	cfg := BackendConfig{URL: "http://localhost:8080", RequestTimeout: 3 * time.Second, RefreshTimeout: 30 * time.Second}
	cfg.Sanitize()
	assert.Equal(t, 3*time.Second, cfg.RefreshTimeout)
}

func TestDetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
