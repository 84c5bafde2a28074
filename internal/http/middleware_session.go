package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	"github.com/campushire/campushire-web/internal/ports"
	"github.com/campushire/campushire-web/internal/service"
)

// SessionResolver resolves one request's cookies into a session outcome.
// Implemented by service.SessionService; narrowed here for test doubles.
type SessionResolver interface {
	Resolve(ctx context.Context, in service.ResolveInput) service.Resolution
}

// publicPaths is the allowlist of paths reachable without a session.
// A path matches an entry exactly or as a slash-separated extension of it,
// so /signup/student/2 is public but /loginx is not.
var publicPaths = []string{
	"/",
	"/login",
	"/signup",
	"/signup/student",
	"/signup/company",
	"/callback",
	"/unverified",
	"/banned",
}

// unverifiedAllowedPaths are the paths an authenticated but unverified
// account may still reach: the verification notice itself, the OAuth
// callback, and the multi-step signup flow. Everything else bounces to
// /unverified.
var unverifiedAllowedPaths = []string{
	"/unverified",
	"/callback",
	"/signup/student",
	"/signup/company",
}

// signupFlowPaths mark requests where an expired unverified session keeps
// its stale claims instead of refreshing; the account has not finished
// onboarding, so minting a fresh token is wasted backend work.
var signupFlowPaths = []string{
	"/signup/student",
	"/signup/company",
}

// pathMatches reports whether path equals entry or extends it past a
// path-separator boundary.
func pathMatches(path, entry string) bool {
	return path == entry || strings.HasPrefix(path, entry+"/")
}

func matchesAny(path string, entries []string) bool {
	for _, e := range entries {
		if pathMatches(path, e) {
			return true
		}
	}
	return false
}

// isPublicPath reports whether the path is reachable without a session.
func isPublicPath(path string) bool {
	return matchesAny(path, publicPaths)
}

// isSignupFlowPath reports whether the path sits inside the signup flow.
func isSignupFlowPath(path string) bool {
	return matchesAny(path, signupFlowPaths)
}

// safeRedirectPath validates a caller-supplied returnUrl. Only relative
// paths within this site are honored; anything that could leave the origin
// (absolute URLs, protocol-relative //host forms) is rejected.
func safeRedirectPath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	if strings.ContainsAny(raw, "\\\r\n") {
		return ""
	}
	return raw
}

// SessionMiddlewareOptions groups dependencies for the Session middleware.
type SessionMiddlewareOptions struct {
	Sessions SessionResolver
	Logger   *slog.Logger

	AccessCookieName  string // defaults to access_token
	RefreshCookieName string // defaults to refresh_token
	CookieDomain      string // empty means host-only
	SecureCookies     bool   // true outside dev mode
	AdminLandingPath  string // defaults to /admin/dashboard
}

type sessionMiddleware struct {
	sessions      SessionResolver
	logger        *slog.Logger
	accessCookie  string
	refreshCookie string
	cookieDomain  string
	secure        bool
	adminLanding  string
}

// Session returns the request-interception middleware that resolves the
// session cookies, enforces the ban and verification gates, applies
// role-based routing, and attaches the resolved user to the request
// context. Every request terminates in exactly one of: a pass-through
// (with or without a user) or a 303 redirect.
func Session(opts SessionMiddlewareOptions) func(http.Handler) http.Handler {
	m := &sessionMiddleware{
		sessions:      opts.Sessions,
		logger:        opts.Logger,
		accessCookie:  opts.AccessCookieName,
		refreshCookie: opts.RefreshCookieName,
		cookieDomain:  opts.CookieDomain,
		secure:        opts.SecureCookies,
		adminLanding:  opts.AdminLandingPath,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.accessCookie == "" {
		m.accessCookie = "access_token"
	}
	if m.refreshCookie == "" {
		m.refreshCookie = "refresh_token"
	}
	if m.adminLanding == "" {
		m.adminLanding = "/admin/dashboard"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.handle(next, w, r)
		})
	}
}

func (m *sessionMiddleware) handle(next http.Handler, w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	res := m.sessions.Resolve(r.Context(), service.ResolveInput{
		AccessToken:  cookieValue(r, m.accessCookie),
		RefreshToken: cookieValue(r, m.refreshCookie),
		SkipRefresh:  isSignupFlowPath(path),
	})

	switch res.Outcome {
	case service.SessionBanned:
		// Ban dominates everything, including being expired or unverified.
		m.clearCookie(w, m.accessCookie)
		m.clearCookie(w, m.refreshCookie)
		if !pathMatches(path, "/banned") {
			m.redirect(w, r, "/banned")
			return
		}
		next.ServeHTTP(w, r)
		return

	case service.SessionRefreshed:
		m.installAccessCookie(w, res.NewAccessToken, res.CookieMaxAge)
		m.serveAuthenticated(next, w, r, res.User, ports.Credential(res.NewAccessToken))
		return

	case service.SessionActive:
		m.serveAuthenticated(next, w, r, res.User, ports.Credential(cookieValue(r, m.accessCookie)))
		return

	case service.SessionExpired:
		m.clearCookie(w, m.accessCookie)

	case service.SessionRefreshFailed:
		m.clearCookie(w, m.accessCookie)
		m.clearCookie(w, m.refreshCookie)
	}

	// No session. Public paths proceed unauthenticated; everything else
	// goes to login carrying the original path for the round trip back.
	if isPublicPath(path) {
		next.ServeHTTP(w, r)
		return
	}
	m.redirect(w, r, "/login?returnUrl="+url.QueryEscape(path))
}

// serveAuthenticated applies the verification gate and the role router,
// then dispatches with the resolved user attached.
func (m *sessionMiddleware) serveAuthenticated(next http.Handler, w http.ResponseWriter, r *http.Request, user domainauth.User, cred ports.Credential) {
	path := r.URL.Path

	if !user.Verified {
		if !matchesAny(path, unverifiedAllowedPaths) {
			m.redirect(w, r, "/unverified?name="+url.QueryEscape(user.Name))
			return
		}
		m.dispatch(next, w, r, user, cred)
		return
	}

	// Authenticated users have no business on the auth forms.
	if path == "/login" || path == "/signup" {
		if target := safeRedirectPath(r.URL.Query().Get("returnUrl")); target != "" {
			m.redirect(w, r, target)
			return
		}
		m.redirect(w, r, m.landingPath(user.Role))
		return
	}

	if target, ok := m.roleRestriction(path, user.Role); !ok {
		m.redirect(w, r, target)
		return
	}

	m.dispatch(next, w, r, user, cred)
}

// roleRestriction checks the role-scoped path prefixes, first match wins.
// /app/jobs is open to every verified role. Returns the redirect target
// and false when the role may not stay on this path.
func (m *sessionMiddleware) roleRestriction(path string, role domainauth.Role) (string, bool) {
	switch {
	case pathMatches(path, "/app/jobs"):
		return "", true
	case pathMatches(path, "/app"):
		if role != domainauth.RoleJobSeeker {
			return m.landingPath(role), false
		}
	case pathMatches(path, "/company"):
		if role != domainauth.RoleCompany {
			return m.landingPath(role), false
		}
	case pathMatches(path, "/faculty"):
		if role != domainauth.RoleFaculty {
			return m.landingPath(role), false
		}
	case pathMatches(path, "/admin"):
		if role != domainauth.RoleAdmin {
			return m.landingPath(role), false
		}
	}
	return "", true
}

// landingPath is the role default, with the admin landing taken from
// configuration.
func (m *sessionMiddleware) landingPath(role domainauth.Role) string {
	if role == domainauth.RoleAdmin {
		return m.adminLanding
	}
	return domainauth.DefaultPath(role)
}

func (m *sessionMiddleware) dispatch(next http.Handler, w http.ResponseWriter, r *http.Request, user domainauth.User, cred ports.Credential) {
	ctx := SetUserInContext(r.Context(), user)
	ctx = SetCredentialInContext(ctx, cred)
	next.ServeHTTP(w, r.WithContext(ctx))
}

// redirect issues a 303 so the browser re-fetches the target with GET
// regardless of the original method.
func (m *sessionMiddleware) redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (m *sessionMiddleware) installAccessCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.accessCookie,
		Value:    token,
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *sessionMiddleware) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
