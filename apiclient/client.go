package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	// APIPrefix is prepended to every request path.
	APIPrefix = "/api/v1"

	// RefreshPath is the token refresh endpoint, relative to APIPrefix.
	RefreshPath = "/auth/refresh"

	DefaultTimeout = 30 * time.Second
)

// Navigator performs the hard redirect to the login entry point.
// Implementations discard all in-memory session state.
type Navigator interface {
	RedirectToLogin()
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) RedirectToLogin() { f() }

// Outcome is the result of the recovery stage for one response.
type Outcome int

const (
	// PassThrough hands the response to the caller unchanged.
	PassThrough Outcome = iota
	// RefreshedRetry means new tokens were stored and the request must be replayed.
	RefreshedRetry
	// HardLogout means credentials were cleared and the login redirect fired.
	HardLogout
)

func (o Outcome) String() string {
	switch o {
	case PassThrough:
		return "pass-through"
	case RefreshedRetry:
		return "refreshed-retry"
	case HardLogout:
		return "hard-logout"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Client sends every call through the attach and recovery stages.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credentials.Store
	navigator  Navigator

	coalesce  bool
	refreshes singleflight.Group
}

type Option func(*Client)

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

// WithRefreshCoalescing makes concurrent 401s holding the same refresh token
// share a single call to the refresh endpoint.
func WithRefreshCoalescing(enabled bool) Option {
	return func(c *Client) {
		c.coalesce = enabled
	}
}

// New creates a client for the backend at origin (e.g. "http://localhost:8000").
func New(origin string, store credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(origin, "/") + APIPrefix,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		store:      store,
		navigator:  NavigatorFunc(func() {}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the credential store the client reads tokens from.
func (c *Client) Store() credentials.Store {
	return c.store
}

// Do sends req and applies the recovery stage to the response. Non-2xx
// outcomes are returned as errors alongside the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	res, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	switch outcome := c.recoverResponse(ctx, req, res); outcome {
	case RefreshedRetry:
		return c.Do(ctx, req)
	case HardLogout:
		re := newResponseError(res.StatusCode, res.Body)
		re.SessionExpired = true
		return res, re
	default:
		return res, res.Err()
	}
}

// attach builds the outbound request, adding the bearer unless the request is public.
// A token set by a refresh on this request wins over the stored one.
func (c *Client) attach(ctx context.Context, req *Request) (*http.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", req.Method, req.Path, err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Request-ID", req.ID)

	if req.Public {
		return httpReq, nil
	}
	token := req.bearer
	if token == "" {
		token, _ = credentials.AccessToken(c.store)
	}
	if token != "" {
		(&oauth2.Token{AccessToken: token}).SetAuthHeader(httpReq)
	}
	return httpReq, nil
}

// recoverResponse decides what happens after a response arrives. Only a 401 on a
// non-public request that has not been retried yet leads to a refresh.
func (c *Client) recoverResponse(ctx context.Context, req *Request, res *Response) Outcome {
	if res.StatusCode != http.StatusUnauthorized || req.retried || req.Public {
		return PassThrough
	}
	req.retried = true

	refreshToken, ok := credentials.RefreshToken(c.store)
	if !ok {
		log.Debug().Str("request_id", req.ID).Msg("No refresh token, ending session")
		c.hardLogout()
		return HardLogout
	}

	tok, err := c.refresh(ctx, refreshToken)
	if err != nil {
		log.Err(err).Str("request_id", req.ID).Msg("Token refresh failed")
		c.hardLogout()
		return HardLogout
	}
	if err := credentials.SaveTokens(c.store, tok); err != nil {
		log.Err(err).Str("request_id", req.ID).Msg("Failed to store refreshed tokens")
		c.hardLogout()
		return HardLogout
	}

	req.bearer = tok.AccessToken
	log.Debug().Str("request_id", req.ID).Str("path", req.Path).Msg("Token refreshed, replaying request")
	return RefreshedRetry
}

func (c *Client) hardLogout() {
	if err := credentials.ClearTokens(c.store); err != nil {
		log.Err(err).Msg("Failed to clear credentials")
	}
	log.Warn().Msg("Session expired, redirecting to login")
	c.navigator.RedirectToLogin()
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if !c.coalesce {
		return c.exchangeRefreshToken(ctx, refreshToken)
	}
	v, err, shared := c.refreshes.Do(refreshToken, func() (any, error) {
		// The shared exchange ignores the starting caller's cancellation.
		refreshCtx, cancel := c.detached(ctx)
		defer cancel()
		return c.exchangeRefreshToken(refreshCtx, refreshToken)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug().Msg("Joined in-flight token refresh")
	}
	return v.(*oauth2.Token), nil
}

// detached keeps ctx's values but not its cancellation, bounded by the client timeout.
func (c *Client) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if c.httpClient.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.httpClient.Timeout)
}

// exchangeRefreshToken calls the refresh endpoint directly, outside the recovery stage.
func (c *Client) exchangeRefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	req, err := NewRequest(http.MethodPost, RefreshPath, map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, err
	}
	req.Public = true
	req.ID = uuid.NewString()

	res, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	var tr credentials.TokenResponse
	if err := res.Decode(&tr); err != nil {
		return nil, err
	}
	return tr.Token(), nil
}

func (c *Client) roundTrip(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.attach(ctx, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, URL: httpReq.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, URL: httpReq.URL.String(), Err: err}
	}

	log.Debug().
		Str("request_id", req.ID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Bool("retried", req.retried).
		Dur("elapsed", time.Since(started)).
		Msg("API call")

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}
