// Package auction is the client SDK for the player-auction platform API.
//
// All authenticated traffic flows through Client.Do, which injects the bearer
// token and transparently refreshes it once when the platform answers 401.
package auction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cricbid/auctionctl/internal/credentials"
	"github.com/cricbid/auctionctl/internal/errors"
	"github.com/cricbid/auctionctl/internal/log"
	"github.com/cricbid/auctionctl/internal/version"
)

// Client is the auction platform API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Store
	logger     *log.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the client logger
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new auction platform API client
func NewClient(baseURL string, creds credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		creds:  creds,
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues an authenticated request and returns the raw response.
//
// The bearer token is attached when present. On 401 with a refresh token
// stored, exactly one refresh call and one retry are made; the retried
// response is returned unconditionally without being re-checked, so a second
// 401 cannot loop. On refresh failure both tokens are cleared and the
// original 401 response is returned to the caller.
func (c *Client) Do(ctx context.Context, method, path string, body []byte, header http.Header) (*http.Response, error) {
	resp, err := c.send(ctx, method, path, body, header, c.creds.Access())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refresh := c.creds.Refresh()
	if refresh == "" {
		return resp, nil
	}

	access, rerr := c.refreshAccess(ctx, refresh)
	if rerr != nil {
		c.logger.WithError(rerr).Warn("token refresh failed, clearing session")
		_ = c.creds.Clear()
		return resp, nil
	}

	resp.Body.Close()
	// Refresh-only update: the refresh token stays untouched.
	if err := c.creds.SetTokens(access, ""); err != nil {
		return nil, err
	}

	c.logger.Debug("access token refreshed, retrying request", "method", method, "path", path)
	return c.send(ctx, method, path, body, header, access)
}

// send builds and issues a single request. Bodies are passed as byte slices
// so the 401 retry can replay them.
func (c *Client) send(ctx context.Context, method, path string, body []byte, header http.Header, access string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPINetwork, "failed to create request", err)
	}

	// Caller headers first, bearer and request id on top.
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPINetwork, "request failed", err).
			WithSuggestion("check that the auction platform is reachable at " + c.baseURL)
	}
	return resp, nil
}

// refreshAccess trades the refresh token for a new access token
func (c *Client) refreshAccess(ctx context.Context, refresh string) (string, error) {
	body := formBody(map[string]string{"refresh_token": refresh})
	header := http.Header{"Content-Type": []string{formContentType}}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", body, header, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var rr refreshResponse
	if err := decodeJSON(resp.Body, &rr); err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || rr.AccessToken == "" {
		reason := rr.Detail
		if reason == "" {
			reason = fmt.Sprintf("refresh rejected with status %d", resp.StatusCode)
		}
		return "", errors.New(errors.ErrCodeSessionExpired, reason)
	}
	return rr.AccessToken, nil
}

// getJSON issues a GET through the pipeline and decodes a 2xx body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp, "request failed")
	}
	return decodeJSON(resp.Body, out)
}

// postJSON issues a JSON-bodied request through the pipeline and interprets
// the {ok, detail, message} envelope: accepted iff HTTP success and ok=true.
func (c *Client) postJSON(ctx context.Context, method, path string, payload any, fallback string) (envelope, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return envelope{}, errors.Wrap(errors.ErrCodeAPIDecode, "failed to encode request body", err)
		}
	}

	header := http.Header{"Content-Type": []string{"application/json"}}
	resp, err := c.Do(ctx, method, path, body, header)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	return interpretEnvelope(resp, fallback)
}

// postForm issues a form-encoded request through the pipeline and interprets
// the envelope the same way postJSON does.
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, fallback string) (envelope, error) {
	header := http.Header{"Content-Type": []string{formContentType}}
	resp, err := c.Do(ctx, http.MethodPost, path, formBody(fields), header)
	if err != nil {
		return envelope{}, err
	}
	defer resp.Body.Close()

	return interpretEnvelope(resp, fallback)
}

// interpretEnvelope decodes the response envelope and converts rejections
// into coded errors carrying the server-provided reason.
func interpretEnvelope(resp *http.Response, fallback string) (envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, errors.Wrap(errors.ErrCodeAPINetwork, "failed to read response", err)
	}

	var env envelope
	// Tolerate non-JSON bodies; the envelope stays zero and the status decides.
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return env, errors.New(errors.ErrCodeAPIRejected, env.reason(fmt.Sprintf("%s (status %d)", fallback, resp.StatusCode)))
	}
	if !env.OK {
		return env, errors.New(errors.ErrCodeAPIRejected, env.reason(fallback))
	}
	return env, nil
}

// responseError builds a coded error from a non-2xx response body
func responseError(resp *http.Response, fallback string) error {
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return errors.New(errors.ErrCodeAPIRejected, env.reason(fmt.Sprintf("%s (status %d)", fallback, resp.StatusCode)))
}

func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return errors.Wrap(errors.ErrCodeAPIDecode, "failed to decode response", err)
	}
	return nil
}
