package httpx

import (
	"context"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	"github.com/campushire/campushire-web/internal/ports"
)

// userKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type userKey struct{}

// credentialKey carries the raw access token for downstream backend calls.
type credentialKey struct{}

// requestIDKey carries the per-request correlation ID.
type requestIDKey struct{}

// SetUserInContext returns a child context that carries the resolved user.
func SetUserInContext(ctx context.Context, user domainauth.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the resolved user and a boolean indicating presence.
// Absence means the session middleware did not run or resolved no session.
func GetUserFromContext(ctx context.Context) (domainauth.User, bool) {
	if u, ok := ctx.Value(userKey{}).(domainauth.User); ok {
		return u, true
	}
	return domainauth.User{}, false
}

// IsAuthenticated reports whether the current request carries an
// authenticated, resolved user.
func IsAuthenticated(ctx context.Context) bool {
	u, ok := GetUserFromContext(ctx)
	return ok && u.IsAuthenticated
}

// SetCredentialInContext returns a child context carrying the access token
// that authenticated this request, for forwarding on backend calls.
func SetCredentialInContext(ctx context.Context, cred ports.Credential) context.Context {
	if cred == "" {
		return ctx
	}
	return context.WithValue(ctx, credentialKey{}, cred)
}

// GetCredentialFromContext returns the request's backend credential.
// Empty means the request is unauthenticated.
func GetCredentialFromContext(ctx context.Context) ports.Credential {
	if c, ok := ctx.Value(credentialKey{}).(ports.Credential); ok {
		return c
	}
	return ""
}

// SetRequestIDInContext returns a child context carrying the request ID.
func SetRequestIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request ID, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
