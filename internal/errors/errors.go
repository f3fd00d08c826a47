package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeNotLoggedIn      ErrorCode = "AUTH-001"
	ErrCodeLoginFailed      ErrorCode = "AUTH-002"
	ErrCodeSessionExpired   ErrorCode = "AUTH-003"
	ErrCodeAdminRequired    ErrorCode = "AUTH-004"
	ErrCodeCredentialsStore ErrorCode = "AUTH-005"

	// API errors (API-001 to API-099)
	ErrCodeAPIRejected ErrorCode = "API-001"
	ErrCodeAPIDecode   ErrorCode = "API-002"
	ErrCodeAPINetwork  ErrorCode = "API-003"

	// Bid errors (BID-001 to BID-099)
	ErrCodeBidInvalidAmount ErrorCode = "BID-001"
	ErrCodeBidNoTeam        ErrorCode = "BID-002"
	ErrCodeBidRejected      ErrorCode = "BID-003"

	// Registration errors (REG-001 to REG-099)
	ErrCodeRegistrationInvalid ErrorCode = "REG-001"

	// Config errors (CFG-001 to CFG-099)
	ErrCodeConfigRead    ErrorCode = "CFG-001"
	ErrCodeConfigInvalid ErrorCode = "CFG-002"
)

// AuctionError represents an enhanced error with code, suggestions, and a cause
type AuctionError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *AuctionError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *AuctionError) Unwrap() error {
	return e.Cause
}

// New creates a new AuctionError
func New(code ErrorCode, message string) *AuctionError {
	return &AuctionError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AuctionError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *AuctionError {
	return &AuctionError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *AuctionError) WithSuggestion(suggestion string) *AuctionError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *AuctionError) WithSuggestions(suggestions ...string) *AuctionError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// HasCode reports whether err is an AuctionError carrying the given code
func HasCode(err error, code ErrorCode) bool {
	var ae *AuctionError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// CodeOf returns the error code of err, or "" when err is not an AuctionError
func CodeOf(err error) ErrorCode {
	var ae *AuctionError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
