package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: session cookie and routing configuration
//   - backend.go: backend API configuration
//   - http.go: HTTP server configuration
//   - observability.go: logging configuration
type AppConfig struct {
	// IsDev controls development mode behavior (cookie security, .env loading).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth is the session and routing configuration.
	Auth AuthConfig

	// Backend is the upstream API configuration.
	Backend BackendConfig `envPrefix:"BACKEND_"`

	// HTTP is the HTTP server configuration.
	HTTP HTTPConfig

	// Observability is the logging configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Backend.Sanitize()
	c.HTTP.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback since the deployment tooling for the
// frontend assets still exports it.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
