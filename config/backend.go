package config

import (
	"strings"
	"time"
)

// BackendConfig controls the connection to the backend API.
type BackendConfig struct {
	// URL is the base URL of the backend API.
	URL string `env:"URL" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds each proxied backend call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// RefreshTimeout bounds the session refresh call. Kept shorter than
	// RequestTimeout because every protected page load may wait on it.
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to backend configuration values.
func (c *BackendConfig) Sanitize() {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
	if c.URL == "" {
		c.URL = "http://localhost:8080"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.RefreshTimeout <= 0 {
		c.RefreshTimeout = 5 * time.Second
	}
	if c.RefreshTimeout > c.RequestTimeout {
		c.RefreshTimeout = c.RequestTimeout
	}
}
