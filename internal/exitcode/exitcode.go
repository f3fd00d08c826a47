package exitcode

import (
	"os"
	"strings"

	apperrors "github.com/cricbid/auctionctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// BidRejected indicates the server refused a bid or sold action
	BidRejected = 3

	// AuthError indicates an authentication or authorization failure
	AuthError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// Interrupted indicates the run was cancelled by the operator
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeBidRejected, apperrors.ErrCodeBidInvalidAmount, apperrors.ErrCodeBidNoTeam:
		return BidRejected
	case apperrors.ErrCodeNotLoggedIn, apperrors.ErrCodeLoginFailed,
		apperrors.ErrCodeSessionExpired, apperrors.ErrCodeAdminRequired:
		return AuthError
	case apperrors.ErrCodeAPINetwork:
		return NetworkError
	}

	errMsg := strings.ToLower(err.Error())

	// Authentication errors
	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "not logged in") {
		return AuthError
	}
	if strings.Contains(errMsg, "token") || strings.Contains(errMsg, "credentials") {
		return AuthError
	}

	// Network errors
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unreachable") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}

	// Usage errors
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case BidRejected:
		return "Bid rejected"
	case AuthError:
		return "Authentication error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
