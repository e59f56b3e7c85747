package exitcode

import (
	"os"
	"strings"

	"github.com/teamupapp/teamup/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// NotFound indicates the requested resource does not exist
	NotFound = 7

	// Interrupted indicates the operation was cancelled by the user
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

// DetermineExitCode maps an error to a process exit code using its error code
// category, falling back to message inspection for plain errors.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch code := errors.CodeOf(err); code {
	case errors.ErrCodeAuthInvalidCredentials,
		errors.ErrCodeAuthTokenExpired,
		errors.ErrCodeAuthNotLoggedIn,
		errors.ErrCodeAuthLoginRequired,
		errors.ErrCodeAPIUnauthorized,
		errors.ErrCodeProjectNotPermitted:
		return AuthError
	case errors.ErrCodeAPINetwork:
		return NetworkError
	case errors.ErrCodeAPINotFound:
		return NotFound
	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigRead:
		return UsageError
	}

	// Plain cobra usage errors carry no code.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "accepts") && strings.Contains(msg, "arg") {
		return UsageError
	}

	return GeneralError
}
