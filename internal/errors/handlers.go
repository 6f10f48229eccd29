package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// HTTPStatus maps an application error code to an HTTP status code.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConfiguration, ErrCodeMissingAPIKey, ErrCodeInvalidAPIKey:
		return http.StatusBadGateway
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeService, ErrCodeNetworkFailure, ErrCodeEmptyResult:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP writes an error as a JSON response with the mapped status code.
func WriteHTTP(w http.ResponseWriter, err error) {
	appErr := GetAppError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(appErr.Code))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		},
	})
}

// FormatCLI formats an error for terminal output.
func FormatCLI(err error) string {
	appErr := GetAppError(err)

	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s", appErr.Message)
	if appErr.Details != "" {
		fmt.Fprintf(&b, "\n  %s", appErr.Details)
	}
	if appErr.IsRetryable() {
		b.WriteString("\n  This may be temporary; try again.")
	}
	return b.String()
}

// UserMessage returns the message suitable for an in-app banner. Raw
// transport errors never reach the presentation layer; wrapped causes are
// folded into the details only when the message alone is not actionable.
func UserMessage(err error) string {
	appErr := GetAppError(err)
	return appErr.Message
}
