package github

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantType   ErrorType
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantType: ErrorTypeAuth},
		{name: "forbidden", statusCode: http.StatusForbidden, wantType: ErrorTypePermission},
		{name: "not found", statusCode: http.StatusNotFound, wantType: ErrorTypeNotFound},
		{name: "unprocessable entity", statusCode: http.StatusUnprocessableEntity, wantType: ErrorTypeValidation},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, wantType: ErrorTypeRateLimit},
		{name: "server error", statusCode: http.StatusBadGateway, wantType: ErrorTypeNetwork},
		{name: "no response", statusCode: 0, wantType: ErrorTypeNetwork},
		{name: "teapot", statusCode: http.StatusTeapot, wantType: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := ClassifyError(tt.statusCode, errors.New("underlying"))
			if apiErr.Type != tt.wantType {
				t.Errorf("ClassifyError(%d).Type = %v, want %v", tt.statusCode, apiErr.Type, tt.wantType)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("ClassifyError(%d).StatusCode = %d", tt.statusCode, apiErr.StatusCode)
			}
		})
	}
}

func TestAPIError_CarriesCause(t *testing.T) {
	cause := errors.New("422 name already exists on this account")
	apiErr := ClassifyError(http.StatusUnprocessableEntity, cause)

	if !strings.Contains(apiErr.Error(), cause.Error()) {
		t.Errorf("Error() = %q, want it to contain %q", apiErr.Error(), cause.Error())
	}
	if !errors.Is(apiErr, cause) {
		t.Error("errors.Is() = false, want true for the underlying cause")
	}
}

func TestErrorPredicates(t *testing.T) {
	authErr := ClassifyError(http.StatusUnauthorized, errors.New("bad credentials"))
	validationErr := ClassifyError(http.StatusUnprocessableEntity, errors.New("name taken"))

	if !IsAuthError(authErr) {
		t.Error("IsAuthError() = false for 401 error")
	}
	if IsAuthError(validationErr) {
		t.Error("IsAuthError() = true for 422 error")
	}
	if !IsValidationError(validationErr) {
		t.Error("IsValidationError() = false for 422 error")
	}
	if IsValidationError(nil) {
		t.Error("IsValidationError(nil) = true")
	}
	if IsAuthError(errors.New("plain")) {
		t.Error("IsAuthError() = true for plain error")
	}
}
