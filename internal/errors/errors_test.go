package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestProvisionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ProvisionError
		expected string
	}{
		{
			name: "error without wrapped error",
			err: &ProvisionError{
				Type:    ErrorTypeGitHub,
				Message: "repository creation failed",
			},
			expected: "github: repository creation failed",
		},
		{
			name: "error with wrapped error",
			err: &ProvisionError{
				Type:    ErrorTypeVault,
				Message: "vault connection failed",
				Err:     errors.New("connection refused"),
			},
			expected: "vault: vault connection failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProvisionError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(ErrorTypeNetwork, "request failed", inner)

	if !errors.Is(err, inner) {
		t.Errorf("errors.Is() = false, want true for wrapped error")
	}

	if New(ErrorTypeInput, "bad input").Unwrap() != nil {
		t.Error("Unwrap() != nil for error without cause")
	}
}

func TestProvisionError_UserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *ProvisionError
		expected string
	}{
		{
			name:     "error without hint",
			err:      New(ErrorTypeGitHub, "repository creation failed"),
			expected: "repository creation failed",
		},
		{
			name: "error with hint",
			err: WithHint(
				New(ErrorTypeConfig, "bad visibility"),
				"Use 'public' or 'private'",
			),
			expected: "bad visibility\n\nSuggestion: Use 'public' or 'private'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.UserFriendlyMessage()
			if got != tt.expected {
				t.Errorf("UserFriendlyMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommonConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ProvisionError
		wantType ErrorType
		wantHint string
	}{
		{
			name:     "token not found",
			err:      TokenNotFound(),
			wantType: ErrorTypeGitHub,
			wantHint: "GITHUB_TOKEN",
		},
		{
			name:     "github auth failed",
			err:      GitHubAuthFailed(errors.New("401")),
			wantType: ErrorTypeGitHub,
			wantHint: "repo",
		},
		{
			name:     "vault unreachable",
			err:      VaultUnreachable("http://127.0.0.1:8200", errors.New("dial tcp")),
			wantType: ErrorTypeVault,
			wantHint: "VAULT_ADDR",
		},
		{
			name:     "invalid configuration",
			err:      InvalidConfiguration("GHPROVISION_VAULT_MOUNT", "must not be empty"),
			wantType: ErrorTypeConfig,
			wantHint: "GHPROVISION_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", tt.err.Type, tt.wantType)
			}
			if !strings.Contains(tt.err.Hint, tt.wantHint) {
				t.Errorf("Hint = %q, want it to contain %q", tt.err.Hint, tt.wantHint)
			}
		})
	}
}
