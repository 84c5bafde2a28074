package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushire/campushire-web/internal/domain/auth"
	apperrors "github.com/campushire/campushire-web/internal/errors"
)

type fakeDecoder struct {
	claims map[string]domainauth.Claims
}

func (f *fakeDecoder) Decode(raw string) (domainauth.Claims, error) {
	if c, ok := f.claims[raw]; ok {
		return c, nil
	}
	return domainauth.Claims{}, errors.New("decode failed")
}

type fakeRefresher struct {
	calls int
	token string
	err   error
}

func (f *fakeRefresher) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.calls++
	return f.token, f.err
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
}

func newTestSessionService(dec *fakeDecoder, ref *fakeRefresher) *SessionService {
	return NewSessionService(SessionServiceOptions{
		Decoder:   dec,
		Refresher: ref,
		Now:       fixedNow,
	})
}

func validClaims() domainauth.Claims {
	return domainauth.Claims{
		Email:    "ada@example.com",
		Name:     "Ada",
		UserID:   "u-1",
		Role:     "jobSeeker",
		Verified: true,
		Exp:      fixedNow().Add(10 * time.Minute).Unix(),
	}
}

func TestResolveNoCredentials(t *testing.T) {
	svc := newTestSessionService(&fakeDecoder{}, &fakeRefresher{})

	res := svc.Resolve(context.Background(), ResolveInput{})

	assert.Equal(t, SessionNone, res.Outcome)
	assert.False(t, res.User.IsAuthenticated)
}

func TestResolveActiveToken(t *testing.T) {
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"tok": validClaims()}}
	ref := &fakeRefresher{}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "tok"})

	assert.Equal(t, SessionActive, res.Outcome)
	assert.True(t, res.User.IsAuthenticated)
	assert.Equal(t, domainauth.RoleJobSeeker, res.User.Role)
	assert.Zero(t, ref.calls)
}

func TestResolveGarbageTokenIsNoSession(t *testing.T) {
	svc := newTestSessionService(&fakeDecoder{}, &fakeRefresher{})

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "garbage"})

	assert.Equal(t, SessionNone, res.Outcome)
}

func TestResolveMissingSubjectIsNoSession(t *testing.T) {
	claims := validClaims()
	claims.UserID = ""
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"tok": claims}}
	svc := newTestSessionService(dec, &fakeRefresher{})

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "tok"})

	assert.Equal(t, SessionNone, res.Outcome)
	assert.False(t, res.User.IsAuthenticated)
}

func TestResolveBanDominatesExpiry(t *testing.T) {
	claims := validClaims()
	claims.Banned = true
	claims.Exp = fixedNow().Add(-time.Hour).Unix() // expired AND banned
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"tok": claims}}
	ref := &fakeRefresher{}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "tok", RefreshToken: "r"})

	assert.Equal(t, SessionBanned, res.Outcome)
	assert.Zero(t, ref.calls, "a banned token must not be refreshed")
}

func TestResolveExpiredNoRefreshToken(t *testing.T) {
	claims := validClaims()
	claims.Exp = fixedNow().Add(-time.Minute).Unix()
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"tok": claims}}
	svc := newTestSessionService(dec, &fakeRefresher{})

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "tok"})

	assert.Equal(t, SessionExpired, res.Outcome)
}

func TestResolveExpiredRefreshSucceeds(t *testing.T) {
	stale := validClaims()
	stale.Exp = fixedNow().Add(-time.Minute).Unix()
	fresh := validClaims()
	fresh.Exp = fixedNow().Add(time.Hour).Unix()

	dec := &fakeDecoder{claims: map[string]domainauth.Claims{
		"stale": stale,
		"fresh": fresh,
	}}
	ref := &fakeRefresher{token: "fresh"}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{AccessToken: "stale", RefreshToken: "r"})

	assert.Equal(t, SessionRefreshed, res.Outcome)
	assert.Equal(t, "fresh", res.NewAccessToken)
	assert.Equal(t, 1, ref.calls)
	assert.InDelta(t, 3600, res.CookieMaxAge, 1)
	assert.True(t, res.User.IsAuthenticated)
}

func TestResolveRefreshedTokenWithoutExpGetsDefaultTTL(t *testing.T) {
	fresh := validClaims()
	fresh.Exp = 0
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"fresh": fresh}}
	ref := &fakeRefresher{token: "fresh"}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{RefreshToken: "r"})

	require.Equal(t, SessionRefreshed, res.Outcome)
	assert.Equal(t, 86400, res.CookieMaxAge)
}

func TestResolveRefreshReportsBan(t *testing.T) {
	ref := &fakeRefresher{err: apperrors.Banned("account banned")}
	svc := newTestSessionService(&fakeDecoder{}, ref)

	res := svc.Resolve(context.Background(), ResolveInput{RefreshToken: "r"})

	assert.Equal(t, SessionBanned, res.Outcome)
}

func TestResolveRefreshedClaimsCarryBan(t *testing.T) {
	fresh := validClaims()
	fresh.Banned = true
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"fresh": fresh}}
	ref := &fakeRefresher{token: "fresh"}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{RefreshToken: "r"})

	assert.Equal(t, SessionBanned, res.Outcome)
	assert.False(t, res.User.IsAuthenticated)
}

func TestResolveRefreshFails(t *testing.T) {
	ref := &fakeRefresher{err: apperrors.Upstream("backend down")}
	svc := newTestSessionService(&fakeDecoder{}, ref)

	res := svc.Resolve(context.Background(), ResolveInput{RefreshToken: "r"})

	assert.Equal(t, SessionRefreshFailed, res.Outcome)
	assert.Equal(t, 1, ref.calls)
}

func TestResolveRefreshedTokenUndecodableIsFailure(t *testing.T) {
	ref := &fakeRefresher{token: "not-in-map"}
	svc := newTestSessionService(&fakeDecoder{}, ref)

	res := svc.Resolve(context.Background(), ResolveInput{RefreshToken: "r"})

	assert.Equal(t, SessionRefreshFailed, res.Outcome)
}

func TestResolveSkipRefreshUsesStaleClaims(t *testing.T) {
	stale := validClaims()
	stale.Verified = false
	stale.Exp = fixedNow().Add(-time.Minute).Unix()
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{"stale": stale}}
	ref := &fakeRefresher{}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{
		AccessToken:  "stale",
		RefreshToken: "r",
		SkipRefresh:  true,
	})

	assert.Equal(t, SessionActive, res.Outcome)
	assert.True(t, res.User.IsAuthenticated)
	assert.Zero(t, ref.calls, "skip-refresh must suppress the refresh call")
}

func TestResolveSkipRefreshIgnoredForVerifiedSessions(t *testing.T) {
	stale := validClaims() // verified
	stale.Exp = fixedNow().Add(-time.Minute).Unix()
	fresh := validClaims()
	dec := &fakeDecoder{claims: map[string]domainauth.Claims{
		"stale": stale,
		"fresh": fresh,
	}}
	ref := &fakeRefresher{token: "fresh"}
	svc := newTestSessionService(dec, ref)

	res := svc.Resolve(context.Background(), ResolveInput{
		AccessToken:  "stale",
		RefreshToken: "r",
		SkipRefresh:  true,
	})

	assert.Equal(t, SessionRefreshed, res.Outcome)
	assert.Equal(t, 1, ref.calls)
}
