// Package token decodes backend-issued JWTs into domain claims.
//
// Decoding is deliberately unverified: the access token is signed and
// checked by the backend, and this tier only reads claims to make routing
// and display decisions. Client-side role checks never substitute for
// backend authorization.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
)

// ErrEmptyToken is returned when Decode is called with an empty string.
var ErrEmptyToken = errors.New("empty token")

// Decoder decodes access tokens without signature verification.
type Decoder struct{}

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode parses the raw token and extracts session claims. Structural
// decode succeeds regardless of expiry; expiry is a separate check made
// by the caller. Any malformed input yields an error, never a panic.
func (d *Decoder) Decode(raw string) (domainauth.Claims, error) {
	if raw == "" {
		return domainauth.Claims{}, ErrEmptyToken
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domainauth.Claims{}, errors.New("unexpected claims type")
	}

	return claimsFromMap(mapClaims), nil
}

func claimsFromMap(m jwt.MapClaims) domainauth.Claims {
	c := domainauth.Claims{
		Email:     stringClaim(m, "email"),
		Name:      stringClaim(m, "name"),
		AvatarURL: stringClaim(m, "avatarURL"),
		UserID:    stringClaim(m, "userID"),
		Role:      stringClaim(m, "role"),
		Verified:  boolClaim(m, "verified"),
		Banned:    boolClaim(m, "banned"),
	}

	// exp arrives as a JSON number; MapClaims stores it as float64.
	switch v := m["exp"].(type) {
	case float64:
		c.Exp = int64(v)
	case int64:
		c.Exp = v
	}

	return c
}

func stringClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(m jwt.MapClaims, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}
