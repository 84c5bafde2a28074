package auth

// Package auth contains domain-level types for sessions and roles.
// It is pure and free of transport/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application authorization role.
// Kept in string form for easy carriage through tokens and templates.
// Valid values are defined as constants below.
type Role string

const (
	RoleJobSeeker Role = "jobSeeker"
	RoleCompany   Role = "company"
	RoleFaculty   Role = "faculty"
	RoleAdmin     Role = "admin"
)

// NormalizeRole maps a raw backend role string onto one of the four
// application roles. Matching is case-insensitive and tolerates the
// synonym spellings seen across backend revisions. Unknown or empty
// values default to RoleJobSeeker.
func NormalizeRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "jobseeker", "job_seeker", "job-seeker", "student":
		return RoleJobSeeker
	case "company", "employer":
		return RoleCompany
	case "faculty":
		return RoleFaculty
	case "admin":
		return RoleAdmin
	default:
		return RoleJobSeeker
	}
}

// Claims is the decoded payload of a backend-issued access token.
// The decode is advisory: the signature is never verified on this tier,
// so claims drive routing and display only, never backend authorization.
type Claims struct {
	Email     string
	Name      string
	AvatarURL string
	UserID    string
	Role      string // raw backend value; normalize before use
	Verified  bool
	Banned    bool
	Exp       int64 // unix seconds; 0 means no expiry recorded in the token
}

// Expired reports whether the token expiry has passed at the given instant.
// Tokens without an exp claim never expire at this layer; the refresh logic
// applies its own conservative lifetime when re-issuing cookies.
func (c Claims) Expired(now time.Time) bool {
	return c.Exp != 0 && c.Exp*1000 < now.UnixMilli()
}

// HasSubject reports whether the claims identify a user. A token without
// a userID is treated as an invalid session even when it decodes cleanly.
func (c Claims) HasSubject() bool { return c.UserID != "" }

// User is the request-scoped projection attached to the request context
// for consumption by page handlers. Built fresh per request, never cached.
type User struct {
	Email           string
	Name            string
	AvatarURL       string
	UserID          string
	Role            Role
	Verified        bool
	IsAuthenticated bool
}

// UserFromClaims builds the resolved user projection from decoded claims.
// The caller is responsible for having established that the session is
// valid (non-banned, subject present, unexpired or refreshed).
func UserFromClaims(c Claims) User {
	return User{
		Email:           c.Email,
		Name:            c.Name,
		AvatarURL:       c.AvatarURL,
		UserID:          c.UserID,
		Role:            NormalizeRole(c.Role),
		Verified:        c.Verified,
		IsAuthenticated: true,
	}
}

// DefaultPath returns the landing page for a role when no more specific
// destination is known. The admin landing is overridable via configuration;
// this is the built-in default.
func DefaultPath(r Role) string {
	switch r {
	case RoleCompany:
		return "/company/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleFaculty, RoleJobSeeker:
		return "/app/jobs"
	default:
		return "/app/jobs"
	}
}
