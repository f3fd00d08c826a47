package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeLoginFailed, "test error message")

	if err.Code != ErrCodeLoginFailed {
		t.Errorf("expected code %s, got %s", ErrCodeLoginFailed, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeConfigRead, "failed to read config", cause)

	if err.Code != ErrCodeConfigRead {
		t.Errorf("expected code %s, got %s", ErrCodeConfigRead, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *AuctionError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeBidRejected, "Insufficient budget"),
			wantCode: "BID-003",
			wantMsg:  "Insufficient budget",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeAPINetwork, "request failed", fmt.Errorf("connection refused")),
			wantCode: "API-003",
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message %s, got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeNotLoggedIn, "Please login first").
		WithSuggestion("run 'auctionctl auth login'").
		WithSuggestions("check your account email", "contact an admin")

	if len(err.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(err.Suggestions))
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "Suggestions:") {
		t.Errorf("error string should list suggestions, got: %s", errStr)
	}
	if !strings.Contains(errStr, "auctionctl auth login") {
		t.Errorf("error string should contain the first suggestion, got: %s", errStr)
	}
}

func TestHasCode(t *testing.T) {
	err := New(ErrCodeSessionExpired, "session expired")

	if !HasCode(err, ErrCodeSessionExpired) {
		t.Error("HasCode should match the error's own code")
	}
	if HasCode(err, ErrCodeBidRejected) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), ErrCodeSessionExpired) {
		t.Error("HasCode should not match a plain error")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !HasCode(wrapped, ErrCodeSessionExpired) {
		t.Error("HasCode should see through error wrapping")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodeBidNoTeam, "Select a team first")); got != ErrCodeBidNoTeam {
		t.Errorf("expected %s, got %s", ErrCodeBidNoTeam, got)
	}

	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %s", got)
	}

	if got := CodeOf(nil); got != "" {
		t.Errorf("expected empty code for nil error, got %s", got)
	}
}
