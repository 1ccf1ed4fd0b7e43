package github

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes API errors for better handling
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError wraps GitHub API failures with a category and the underlying
// cause. The provisioning flow treats every category the same way (print and
// move on), but diagnostics and tests can still tell them apart.
type APIError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface. The underlying cause is always
// included so the printed message carries it.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is and errors.As support
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a structured API error
func NewAPIError(errType ErrorType, statusCode int, message string, err error) *APIError {
	return &APIError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ClassifyError determines the error type from an HTTP status code and
// attaches a user-facing message.
func ClassifyError(statusCode int, err error) *APIError {
	switch statusCode {
	case http.StatusUnauthorized:
		return NewAPIError(ErrorTypeAuth, statusCode,
			"Invalid or expired token. Please re-authenticate.", err)
	case http.StatusForbidden:
		return NewAPIError(ErrorTypePermission, statusCode,
			"Insufficient permissions for this operation.", err)
	case http.StatusNotFound:
		return NewAPIError(ErrorTypeNotFound, statusCode,
			"Resource not found. Check the repository name and username.", err)
	case http.StatusUnprocessableEntity:
		return NewAPIError(ErrorTypeValidation, statusCode,
			"GitHub rejected the request. The repository may already exist or the name may be invalid.", err)
	case http.StatusTooManyRequests:
		return NewAPIError(ErrorTypeRateLimit, statusCode,
			"GitHub API rate limit exceeded. Please wait.", err)
	case 0:
		return NewAPIError(ErrorTypeNetwork, 0,
			"Could not reach the GitHub API.", err)
	default:
		if statusCode >= 500 {
			return NewAPIError(ErrorTypeNetwork, statusCode,
				"GitHub API temporary error.", err)
		}
		return NewAPIError(ErrorTypeUnknown, statusCode,
			"Unexpected error occurred.", err)
	}
}

// IsAuthError checks if error is authentication-related
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeAuth
	}
	return false
}

// IsValidationError checks if GitHub rejected the request body, which is how
// a duplicate repository name surfaces.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeValidation
	}
	return false
}
