package config

import "strings"

// AuthConfig controls session cookies and post-login routing.
type AuthConfig struct {
	// AccessCookieName is the cookie carrying the short-lived access token.
	AccessCookieName string `env:"AUTH_ACCESS_COOKIE" envDefault:"access_token"`

	// RefreshCookieName is the cookie carrying the long-lived refresh token.
	// Only ever forwarded to the backend, never read by this service.
	RefreshCookieName string `env:"AUTH_REFRESH_COOKIE" envDefault:"refresh_token"`

	// AdminLandingPath is where authenticated admins land after visiting an
	// auth page without a returnUrl.
	AdminLandingPath string `env:"AUTH_ADMIN_LANDING_PATH" envDefault:"/admin/dashboard"`
}

// Sanitize applies guardrails to auth configuration values.
func (c *AuthConfig) Sanitize() {
	if strings.TrimSpace(c.AccessCookieName) == "" {
		c.AccessCookieName = "access_token"
	}
	if strings.TrimSpace(c.RefreshCookieName) == "" {
		c.RefreshCookieName = "refresh_token"
	}
	if !strings.HasPrefix(c.AdminLandingPath, "/") {
		c.AdminLandingPath = "/admin/dashboard"
	}
}
