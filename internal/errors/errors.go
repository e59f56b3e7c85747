package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthTokenExpired       ErrorCode = "AUTH-002"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-003"
	ErrCodeAuthLoginRequired      ErrorCode = "AUTH-004"
	ErrCodeAuthRegisterFailed     ErrorCode = "AUTH-005"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionNotInitialized ErrorCode = "SESSION-001"
	ErrCodeSessionStoreRead      ErrorCode = "SESSION-002"
	ErrCodeSessionStoreWrite     ErrorCode = "SESSION-003"

	// API errors (API-001 to API-099)
	ErrCodeAPINetwork      ErrorCode = "API-001"
	ErrCodeAPIUnauthorized ErrorCode = "API-002"
	ErrCodeAPIValidation   ErrorCode = "API-003"
	ErrCodeAPIServer       ErrorCode = "API-004"
	ErrCodeAPIDecode       ErrorCode = "API-005"
	ErrCodeAPINotFound     ErrorCode = "API-006"

	// Project errors (PROJECT-001 to PROJECT-099)
	ErrCodeProjectNotPermitted   ErrorCode = "PROJECT-001"
	ErrCodeProjectNotConfirmed   ErrorCode = "PROJECT-002"
	ErrCodeProjectActionInFlight ErrorCode = "PROJECT-003"
	ErrCodeProjectInvalidID      ErrorCode = "PROJECT-004"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigRead    ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
)

// TeamupError represents an enhanced error with code, suggestions, and a cause
type TeamupError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *TeamupError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  * %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *TeamupError) Unwrap() error {
	return e.Cause
}

// New creates a new TeamupError
func New(code ErrorCode, message string) *TeamupError {
	return &TeamupError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new TeamupError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *TeamupError {
	return &TeamupError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *TeamupError) WithSuggestion(suggestion string) *TeamupError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *TeamupError) WithSuggestions(suggestions ...string) *TeamupError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf extracts the error code from err, walking the wrap chain.
// Returns an empty code when no TeamupError is present.
func CodeOf(err error) ErrorCode {
	var te *TeamupError
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// MessageOf returns the bare message of a TeamupError without the code prefix
// or suggestions, falling back to err.Error() for plain errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var te *TeamupError
	if stderrors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}
