package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "github.com/campushire/campushire-web/internal/errors"
)

// refreshResponse is the 200 body of POST /auth/refresh.
type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Refresh exchanges a refresh token for a new access token.
//
// The refresh token travels as a cookie header, matching how the browser
// would present it; the old access token is never forwarded. The call is
// bounded by its own timeout so a stalled backend degrades to a refresh
// failure instead of hanging the request.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apperrors.Unauthorized("refresh token is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.refreshTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "build refresh request")
	}
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", apperrors.Wrap(err, apperrors.ErrCodeTimeout, "refresh call timed out")
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "refresh call failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("close refresh response body", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "read refresh response")
	}

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		_ = json.Unmarshal(raw, &body)
		if body.Error == "account_banned" {
			return "", apperrors.Banned("refresh rejected: account banned")
		}
		return "", apperrors.Upstreamf("refresh rejected: %s", resp.Status)
	}

	var body refreshResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode refresh response")
	}
	if body.AccessToken == "" {
		return "", apperrors.Upstream("refresh response missing access token")
	}

	return body.AccessToken, nil
}
