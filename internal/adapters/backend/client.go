// Package backend is the REST client for the job-board backend API.
// All persistent state (jobs, users, applications, notes, files) lives
// behind this surface; this tier never stores rows of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/campushire/campushire-web/internal/errors"
	"github.com/campushire/campushire-web/internal/ports"
)

// Config captures backend client settings. Callers should pass a
// validated config; see config.BackendConfig for the env surface.
type Config struct {
	BaseURL        string
	Timeout        time.Duration // per-request timeout for resource calls
	RefreshTimeout time.Duration // bound on the token refresh call
	Client         *http.Client
	Logger         *slog.Logger
}

// Client calls the backend REST API, forwarding the caller's access
// token as a cookie on authenticated requests.
type Client struct {
	baseURL        string
	refreshTimeout time.Duration
	hc             *http.Client
	logger         *slog.Logger
}

// NewClient builds a backend API client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("backend base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	refreshTimeout := cfg.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = 5 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        base,
		refreshTimeout: refreshTimeout,
		hc:             hc,
		logger:         logger,
	}, nil
}

// request groups the parameters for a single backend call.
type request struct {
	method string
	path   string
	cred   ports.Credential
	query  url.Values
	body   any
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doJSON executes a backend request and decodes a JSON response into out
// (which may be nil for calls with no interesting body).
func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "backend call timed out")
		}
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "backend %s %s", req.method, req.path)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("close backend response body", "error", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(req, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode backend %s %s response", req.method, req.path)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var reader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build backend request")
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.cred != "" {
		httpReq.AddCookie(&http.Cookie{Name: "access_token", Value: string(req.cred)})
	}
	return httpReq, nil
}

func (c *Client) errorFromResponse(req request, resp *http.Response) error {
	var body errorBody
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if readErr == nil && len(raw) > 0 {
		// Non-JSON error bodies are fine; fall through with zero values.
		_ = json.Unmarshal(raw, &body)
	}

	switch {
	case body.Error == "account_banned":
		return apperrors.Banned("backend reported account banned")
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.NotFoundf("backend %s %s: not found", req.method, req.path)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return apperrors.Unauthorized(fmt.Sprintf("backend %s %s: %s", req.method, req.path, resp.Status))
	case resp.StatusCode == http.StatusBadRequest:
		return apperrors.Validationf("backend %s %s: %s", req.method, req.path, firstNonEmpty(body.Message, body.Error, resp.Status))
	default:
		return apperrors.Upstreamf("backend %s %s: %s", req.method, req.path, firstNonEmpty(body.Message, body.Error, resp.Status))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
