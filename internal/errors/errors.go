// Package errors provides unified error handling across the muse system.
//
// It standardizes error representation for the three interfaces (TUI, CLI,
// HTTP) around a small taxonomy: validation failures are recoverable by the
// user editing a field, configuration failures need the credential fixed
// outside the app, service failures come from the generation call, and
// empty-result failures are successful calls that produced nothing usable.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Configuration errors
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeMissingAPIKey ErrorCode = "MISSING_API_KEY"
	ErrCodeInvalidAPIKey ErrorCode = "INVALID_API_KEY"

	// Generation service errors
	ErrCodeService     ErrorCode = "SERVICE_ERROR"
	ErrCodeEmptyResult ErrorCode = "EMPTY_RESULT"
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Network errors
	ErrCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"

	// Export errors
	ErrCodeExportFailure ErrorCode = "EXPORT_FAILURE"

	// Catch-all
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryValidation    ErrorCategory = "validation"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryService       ErrorCategory = "service"
	CategoryNetwork       ErrorCategory = "network"
	CategoryExport        ErrorCategory = "export"
	CategorySystem        ErrorCategory = "system"
)

// AppError represents a standardized application error
type AppError struct {
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   string        `json:"details,omitempty"`
	Severity  ErrorSeverity `json:"severity"`
	Category  ErrorCategory `json:"category"`
	Cause     error         `json:"-"`
	Timestamp time.Time     `json:"timestamp"`
	Retryable bool          `json:"retryable"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns whether the error is retryable
func (e *AppError) IsRetryable() bool {
	return e.Retryable
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  severity,
		Category:  category,
		Timestamp: time.Now(),
		Retryable: isRetryable(code),
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:      code,
		Message:   message,
		Severity:  severity,
		Category:  category,
		Cause:     err,
		Timestamp: time.Now(),
		Retryable: isRetryable(code),
	}
}

// categorizeError determines the category and severity based on error code
func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField:
		return CategoryValidation, SeverityWarning

	case ErrCodeConfiguration, ErrCodeMissingAPIKey, ErrCodeInvalidAPIKey:
		return CategoryConfiguration, SeverityError

	case ErrCodeService, ErrCodeRateLimited:
		return CategoryService, SeverityError
	case ErrCodeEmptyResult:
		return CategoryService, SeverityWarning

	case ErrCodeNotFound:
		return CategoryService, SeverityInfo

	case ErrCodeNetworkFailure:
		return CategoryNetwork, SeverityError

	case ErrCodeExportFailure:
		return CategoryExport, SeverityWarning

	default:
		return CategorySystem, SeverityError
	}
}

// isRetryable determines if an error is retryable based on its code. The app
// never retries automatically; this is advisory for the user-facing message.
func isRetryable(code ErrorCode) bool {
	switch code {
	case ErrCodeNetworkFailure, ErrCodeRateLimited, ErrCodeEmptyResult:
		return true
	default:
		return false
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternalError, "Internal error occurred")
}

// HasCode reports whether err carries the given application error code.
func HasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsConfiguration reports whether err is a credential/configuration failure.
func IsConfiguration(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category == CategoryConfiguration
	}
	return false
}

// Common error constructors for frequently used errors

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message)
}

func ConfigurationError(message string) *AppError {
	return NewAppError(ErrCodeConfiguration, message)
}

func MissingAPIKeyError() *AppError {
	return NewAppError(ErrCodeMissingAPIKey,
		"No API key configured. Set the GEMINI_API_KEY environment variable.")
}

func InvalidAPIKeyError() *AppError {
	return NewAppError(ErrCodeInvalidAPIKey,
		"Invalid or missing API key. Check that your key is valid and has not expired.")
}

func ServiceError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeService, fmt.Sprintf("Generation service failed: %s", operation))
}

func EmptyResultError() *AppError {
	return NewAppError(ErrCodeEmptyResult,
		"The generated content was empty. Try adjusting your inputs or try again.")
}

func NotFoundError(resource string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func NetworkError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeNetworkFailure, fmt.Sprintf("Network operation failed: %s", operation))
}

func ExportError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeExportFailure, fmt.Sprintf("Export failed: %s", operation))
}
