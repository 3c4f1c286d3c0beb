package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pghd/records-dashboard/internal/core/domain"
	"github.com/pghd/records-dashboard/internal/core/ports"
	"github.com/pghd/records-dashboard/internal/pkg/metrics"
)

const (
	defaultTimeout = 15 * time.Second

	// An access token this close to its exp claim is treated as expired
	// and refreshed up front instead of burning a doomed round trip.
	expirySkew = 10 * time.Second

	refreshPath = "/api/token/refresh/"
)

// Client talks to the records backend over HTTP. Tokens are read from the
// session store at call time; refreshed pairs are written back through it.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, sessions ports.SessionStore, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

// do issues one backend call. For authenticated calls (sid non-empty) the
// access token is attached; an expired token is exchanged via the refresh
// token and the call retried, at most once per invocation.
func (c *Client) do(ctx context.Context, op, method, path, sid string, body, out any) error {
	var access string
	refreshed := false

	if sid != "" {
		pair, err := c.sessions.Get(ctx, sid)
		if err != nil {
			return domain.ErrUnauthenticated
		}
		access = pair.Access

		if tokenExpired(access) {
			pair, err = c.refresh(ctx, sid, pair)
			if err != nil {
				return err
			}
			access = pair.Access
			refreshed = true
		}
	}

	status, data, err := c.send(ctx, op, method, path, access, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	if status == http.StatusUnauthorized && sid != "" {
		if refreshed {
			return domain.ErrSessionExpired
		}
		pair, err := c.sessions.Get(ctx, sid)
		if err != nil {
			return domain.ErrUnauthenticated
		}
		pair, err = c.refresh(ctx, sid, pair)
		if err != nil {
			return err
		}
		status, data, err = c.send(ctx, op, method, path, pair.Access, body)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
		if status == http.StatusUnauthorized {
			return domain.ErrSessionExpired
		}
	}

	if status >= 400 {
		return apiError(status, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

// refresh exchanges the refresh token for a new access token and persists
// the updated pair.
func (c *Client) refresh(ctx context.Context, sid string, pair domain.TokenPair) (domain.TokenPair, error) {
	status, data, err := c.send(ctx, "token_refresh", http.MethodPost, refreshPath, "",
		map[string]string{"refresh": pair.Refresh})
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		return domain.TokenPair{}, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if status >= 400 {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		c.log.Warn().Int("status", status).Msg("refresh token exchange rejected")
		return domain.TokenPair{}, domain.ErrSessionExpired
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		return domain.TokenPair{}, fmt.Errorf("token_refresh: decode response: %w", err)
	}

	pair.Access = resp.Access
	if resp.Refresh != "" {
		pair.Refresh = resp.Refresh
	}
	if err := c.sessions.Save(ctx, sid, pair); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failed").Inc()
		return domain.TokenPair{}, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return pair, nil
}

// send performs a single HTTP exchange and records metrics for it.
func (c *Client) send(ctx context.Context, op, method, path, access string, body any) (int, []byte, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		c.log.Error().Err(err).Str("endpoint", op).Msg("backend request failed")
		return 0, nil, err
	}
	defer resp.Body.Close()

	metrics.BackendRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

// apiError converts a non-2xx response into a BackendError carrying the
// backend's own detail message, so callers can surface it verbatim.
func apiError(status int, data []byte) error {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	_ = json.Unmarshal(data, &payload)

	detail := payload.Detail
	if detail == "" {
		detail = payload.Error
	}
	return &domain.BackendError{Status: status, Detail: detail}
}

// tokenExpired inspects the access token's exp claim without verifying the
// signature; the backend remains the authority, this only avoids sending a
// token already known to be dead. Tokens without a readable exp pass
// through untouched.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < expirySkew
}
