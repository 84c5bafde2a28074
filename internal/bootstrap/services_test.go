package bootstrap

import (
	"testing"

	"github.com/campushire/campushire-web/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.URL)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}

func TestNewServicesWiresEverything(t *testing.T) {
	cfg := config.AppConfig{}
	cfg.Sanitize()

	services, err := NewServices(&ServiceDeps{Config: &cfg})
	require.NoError(t, err)

	assert.NotNil(t, services.Sessions)
	assert.NotNil(t, services.Jobs)
	assert.NotNil(t, services.Applications)
	assert.NotNil(t, services.Users)
	assert.NotNil(t, services.Notes)
	assert.NotNil(t, services.Files)
	assert.NotNil(t, services.Backend)
}

func TestBuildHandler(t *testing.T) {
	cfg := config.AppConfig{}
	cfg.Sanitize()

	services, err := NewServices(&ServiceDeps{Config: &cfg})
	require.NoError(t, err)

	handler, err := BuildHandler(&cfg, services, InitLogger())
	require.NoError(t, err)
	assert.NotNil(t, handler)
}
