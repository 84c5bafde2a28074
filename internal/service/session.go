package service

import (
	"context"
	"log/slog"
	"time"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// SessionOutcome is the terminal state of resolving one request's credentials.
type SessionOutcome string

const (
	// SessionNone means no usable credential was found; the request
	// proceeds unauthenticated (route protection is the caller's concern).
	SessionNone SessionOutcome = "none"
	// SessionActive means the access token was valid (or deliberately
	// used stale under the skip-refresh rule) and a user was resolved.
	SessionActive SessionOutcome = "active"
	// SessionRefreshed means a new access token was minted; the caller
	// must install it as a cookie with the reported max-age.
	SessionRefreshed SessionOutcome = "refreshed"
	// SessionBanned means the claims or the refresh endpoint reported a
	// ban; the caller must clear both cookies and route to the ban page.
	SessionBanned SessionOutcome = "banned"
	// SessionExpired means the access token expired and no refresh was
	// possible; the caller clears the access cookie.
	SessionExpired SessionOutcome = "expired"
	// SessionRefreshFailed means the single refresh attempt failed for a
	// non-ban reason; the caller clears both cookies.
	SessionRefreshFailed SessionOutcome = "refresh_failed"
)

// defaultTokenTTL is the conservative cookie lifetime applied when a
// refreshed token carries no exp claim.
const defaultTokenTTL = 24 * time.Hour

// ResolveInput carries one request's credentials into resolution.
type ResolveInput struct {
	AccessToken  string
	RefreshToken string

	// SkipRefresh suppresses the refresh attempt for expired unverified
	// sessions. Set by the caller when the request is inside the signup
	// flow, where refreshing is wasted work for an account that has not
	// finished onboarding; stale claims are used as-is instead.
	SkipRefresh bool
}

// Resolution is the outcome of resolving one request's credentials.
// User is populated only for SessionActive and SessionRefreshed.
type Resolution struct {
	Outcome        SessionOutcome
	User           domainauth.User
	Claims         domainauth.Claims
	NewAccessToken string // set when Outcome == SessionRefreshed
	CookieMaxAge   int    // seconds; set when Outcome == SessionRefreshed
}

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Decoder   ports.TokenDecoder
	Refresher ports.TokenRefresher
	Logger    *slog.Logger
	Now       func() time.Time // defaults to time.Now
}

// SessionService resolves request credentials into a session state.
// It is stateless: every resolution is local to one request, and the
// refresh endpoint is called at most once per resolution.
type SessionService struct {
	decoder   ports.TokenDecoder
	refresher ports.TokenRefresher
	logger    *slog.Logger
	now       func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		decoder:   opts.Decoder,
		refresher: opts.Refresher,
		logger:    logger,
		now:       now,
	}
}

// Resolve walks the per-request credential state machine:
// decode, ban dominance, expiry, at-most-one refresh, skip-refresh.
// It never returns an error; every failure path collapses into a
// deterministic outcome for the caller to act on.
func (s *SessionService) Resolve(ctx context.Context, in ResolveInput) Resolution {
	claims, haveClaims := s.decodeOrNothing(ctx, in.AccessToken)

	if !haveClaims {
		// No usable access token. A refresh token can still mint a session.
		if in.RefreshToken != "" {
			return s.refresh(ctx, in.RefreshToken)
		}
		return Resolution{Outcome: SessionNone}
	}

	// Ban dominates every other state, including expiry: a banned and
	// expired token must still surface as banned, not as a login failure.
	if claims.Banned {
		return Resolution{Outcome: SessionBanned, Claims: claims}
	}

	if !claims.Expired(s.now()) {
		return Resolution{
			Outcome: SessionActive,
			User:    domainauth.UserFromClaims(claims),
			Claims:  claims,
		}
	}

	// Expired. Unverified accounts mid-signup keep their stale claims.
	if in.SkipRefresh && !claims.Verified {
		return Resolution{
			Outcome: SessionActive,
			User:    domainauth.UserFromClaims(claims),
			Claims:  claims,
		}
	}

	if in.RefreshToken != "" {
		return s.refresh(ctx, in.RefreshToken)
	}

	return Resolution{Outcome: SessionExpired, Claims: claims}
}

// decodeOrNothing decodes the access token, treating every decode
// failure and every subject-less token as "no session".
func (s *SessionService) decodeOrNothing(ctx context.Context, raw string) (domainauth.Claims, bool) {
	if raw == "" {
		return domainauth.Claims{}, false
	}

	claims, err := s.decoder.Decode(raw)
	if err != nil {
		s.logger.WarnContext(ctx, "access token decode failed", "error", err)
		return domainauth.Claims{}, false
	}
	if !claims.HasSubject() {
		s.logger.WarnContext(ctx, "access token missing userID claim")
		return domainauth.Claims{}, false
	}
	return claims, true
}

// refresh performs the single allowed refresh attempt and classifies
// its outcome.
func (s *SessionService) refresh(ctx context.Context, refreshToken string) Resolution {
	newToken, err := s.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		if apperrors.IsBanned(err) {
			return Resolution{Outcome: SessionBanned}
		}
		s.logger.WarnContext(ctx, "token refresh failed", "error", err)
		return Resolution{Outcome: SessionRefreshFailed}
	}

	claims, err := s.decoder.Decode(newToken)
	if err != nil {
		s.logger.WarnContext(ctx, "refreshed token decode failed", "error", err)
		return Resolution{Outcome: SessionRefreshFailed}
	}
	if !claims.HasSubject() {
		s.logger.WarnContext(ctx, "refreshed token missing userID claim")
		return Resolution{Outcome: SessionRefreshFailed}
	}
	if claims.Banned {
		return Resolution{Outcome: SessionBanned, Claims: claims}
	}

	return Resolution{
		Outcome:        SessionRefreshed,
		User:           domainauth.UserFromClaims(claims),
		Claims:         claims,
		NewAccessToken: newToken,
		CookieMaxAge:   s.cookieMaxAge(claims),
	}
}

// cookieMaxAge derives the new access cookie lifetime from the token's
// own exp claim, clamped to non-negative, defaulting to 24h without one.
func (s *SessionService) cookieMaxAge(claims domainauth.Claims) int {
	if claims.Exp == 0 {
		return int(defaultTokenTTL.Seconds())
	}
	remaining := claims.Exp - s.now().Unix()
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}
