package auction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricbid/auctionctl/internal/credentials"
	"github.com/cricbid/auctionctl/internal/errors"
	"github.com/cricbid/auctionctl/internal/version"
)

func newTestClient(t *testing.T, handler http.Handler, creds credentials.Store) *Client {
	t.Helper()
	server := newTestServer(t, handler)
	return NewClient(server.URL, creds)
}

func TestDo_AttachesBearerExactly(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("tok-abc", "ref-xyz"))

	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})

	client := newTestClient(t, handler, creds)
	resp, err := client.Do(context.Background(), http.MethodGet, "/me", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok-abc", gotAuth)
}

func TestDo_NoTokenNoAuthHeader(t *testing.T) {
	var sawAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	})

	client := newTestClient(t, handler, credentials.NewMemStore())
	resp, err := client.Do(context.Background(), http.MethodGet, "/teams", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.False(t, sawAuth, "no Authorization header expected without a token")
}

func TestDo_PreservesCallerHeaders(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("tok-abc", ""))

	var gotContentType, gotRequestID, gotUserAgent string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotUserAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	})

	client := newTestClient(t, handler, creds)
	header := http.Header{"Content-Type": []string{"application/json"}}
	resp, err := client.Do(context.Background(), http.MethodPost, "/auction/bid", []byte(`{}`), header)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID, "a request id is attached to every call")
	assert.Equal(t, "auctionctl/"+version.Version, gotUserAgent)
}

func TestDo_RefreshAndRetryOn401(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("stale", "ref-1"))

	var meCalls, refreshCalls atomic.Int32
	var retryAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if meCalls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		retryAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ref-1", r.FormValue("refresh_token"))
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "access_token": "fresh"})
	})

	client := newTestClient(t, mux, creds)
	resp, err := client.Do(context.Background(), http.MethodGet, "/me", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), meCalls.Load(), "exactly one retry")
	assert.Equal(t, int32(1), refreshCalls.Load(), "exactly one refresh call")
	assert.Equal(t, "Bearer fresh", retryAuth, "retry carries the new access token")
	assert.Equal(t, "fresh", creds.Access())
	assert.Equal(t, "ref-1", creds.Refresh(), "refresh token unchanged")
}

func TestDo_RefreshFailureClearsTokensAndReturnsOriginal401(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("stale", "ref-dead"))

	var meCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		meCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid or expired refresh token"}`, http.StatusUnauthorized)
	})

	client := newTestClient(t, mux, creds)
	resp, err := client.Do(context.Background(), http.MethodGet, "/me", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "original 401 comes back to the caller")
	assert.Equal(t, int32(1), meCalls.Load(), "no retry after failed refresh")
	assert.Empty(t, creds.Access())
	assert.Empty(t, creds.Refresh())
}

func TestDo_401WithoutRefreshTokenPassesThrough(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("stale", ""))

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})

	client := newTestClient(t, mux, creds)
	resp, err := client.Do(context.Background(), http.MethodGet, "/me", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), refreshCalls.Load(), "no refresh attempted without a refresh token")
}

func TestDo_RetriedResponseNotRechecked(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("stale", "ref-1"))

	var meCalls, refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		// Rejects even the refreshed token; must not loop.
		meCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "access_token": "fresh"})
	})

	client := newTestClient(t, mux, creds)
	resp, err := client.Do(context.Background(), http.MethodGet, "/me", nil, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "second 401 is returned unconditionally")
	assert.Equal(t, int32(2), meCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load(), "at most one refresh per call")
}

func TestDo_ReplaysBodyOnRetry(t *testing.T) {
	creds := credentials.NewMemStore()
	require.NoError(t, creds.SetTokens("stale", "ref-1"))

	var calls atomic.Int32
	var secondBody string
	mux := http.NewServeMux()
	mux.HandleFunc("/auction/bid", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		secondBody = string(raw)
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "access_token": "fresh"})
	})

	client := newTestClient(t, mux, creds)
	body := []byte(`{"player_id":"P9"}`)
	resp, err := client.Do(context.Background(), http.MethodPost, "/auction/bid", body, nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, `{"player_id":"P9"}`, secondBody, "retry replays the original body")
}

func TestDo_NetworkFailurePropagates(t *testing.T) {
	// Closed port: the dial fails and the error surfaces to the caller.
	client := NewClient("http://127.0.0.1:1", credentials.NewMemStore())
	_, err := client.Do(context.Background(), http.MethodGet, "/teams", nil, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAPINetwork, errors.CodeOf(err))
}

func TestEnvelopeReasonPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  envelope
		want string
	}{
		{"detail wins", envelope{Detail: "Insufficient budget", Message: "ignored"}, "Insufficient budget"},
		{"message fallback", envelope{Message: "Auction stopped"}, "Auction stopped"},
		{"generic fallback", envelope{}, "Bid failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.env.reason("Bid failed"))
		})
	}
}
