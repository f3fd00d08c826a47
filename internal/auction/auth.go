package auction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cricbid/auctionctl/internal/errors"
)

// Login authenticates with email and password. On success both tokens are
// stored; on rejection the server-provided reason is surfaced.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := formBody(map[string]string{"email": email, "password": password})
	header := http.Header{"Content-Type": []string{formContentType}}

	// Login bypasses Do: there is no session yet and a 401 here means bad
	// credentials, not an expired token.
	resp, err := c.send(ctx, http.MethodPost, "/auth/login", body, header, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPINetwork, "failed to read login response", err)
	}

	var lr loginResponse
	_ = json.Unmarshal(raw, &lr)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !lr.OK {
		reason := lr.Detail
		if reason == "" {
			reason = "Login failed"
		}
		return errors.New(errors.ErrCodeLoginFailed, reason)
	}

	return c.creds.SetTokens(lr.AccessToken, lr.RefreshToken)
}

// RegisterAccount creates a new bidder account
func (c *Client) RegisterAccount(ctx context.Context, email, password, name string) error {
	fields := map[string]string{"email": email, "password": password}
	if name != "" {
		fields["name"] = name
	}
	body := formBody(fields)
	header := http.Header{"Content-Type": []string{formContentType}}

	resp, err := c.send(ctx, http.MethodPost, "/auth/register", body, header, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := interpretEnvelope(resp, "Registration failed"); err != nil {
		return err
	}
	return nil
}

// Me returns the current user through the authenticated pipeline.
// A 401 that survives the pipeline's refresh-and-retry comes back as a
// session-expired error.
func (c *Client) Me(ctx context.Context) (*User, error) {
	resp, err := c.Do(ctx, http.MethodGet, "/me", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errors.New(errors.ErrCodeSessionExpired, "session expired").
			WithSuggestion("run 'auctionctl auth login' to sign in again")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp, "whoami failed")
	}

	var mr meResponse
	if err := decodeJSON(resp.Body, &mr); err != nil {
		return nil, err
	}
	if mr.User == nil {
		return nil, errors.New(errors.ErrCodeSessionExpired, "no user in whoami response")
	}
	return mr.User, nil
}

// Logout clears the stored token pair. Purely client-side: the platform has
// no logout endpoint and tokens simply age out server-side.
func (c *Client) Logout() error {
	return c.creds.Clear()
}

// HasSession reports whether any credential (access or refresh) is stored
func (c *Client) HasSession() bool {
	return c.creds.Access() != "" || c.creds.Refresh() != ""
}
