package errors

import (
	"fmt"
)

// Error types for better error handling
type ErrorType string

const (
	ErrorTypeGitHub  ErrorType = "github"
	ErrorTypeVault   ErrorType = "vault"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeNetwork ErrorType = "network"
)

// ProvisionError represents a structured error with context
type ProvisionError struct {
	Type    ErrorType
	Message string
	Hint    string
	Err     error
}

func (e *ProvisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// UserFriendlyMessage returns a user-friendly error message with hint
func (e *ProvisionError) UserFriendlyMessage() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n\nSuggestion: " + e.Hint
	}
	return msg
}

// New creates a new ProvisionError
func New(errType ErrorType, message string) *ProvisionError {
	return &ProvisionError{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps an existing error with context
func Wrap(errType ErrorType, message string, err error) *ProvisionError {
	return &ProvisionError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// WithHint adds a hint to an error
func WithHint(err *ProvisionError, hint string) *ProvisionError {
	err.Hint = hint
	return err
}

// Common error constructors

func TokenNotFound() *ProvisionError {
	return WithHint(
		New(ErrorTypeGitHub, "no GitHub token found"),
		"Set GITHUB_TOKEN, run 'gh auth login', store the PAT in Vault at secret/ghprovision/github, or run 'git config --global github.token YOUR_TOKEN'",
	)
}

func GitHubAuthFailed(err error) *ProvisionError {
	return WithHint(
		Wrap(ErrorTypeGitHub, "GitHub authentication failed", err),
		"Check that your token is valid and has the 'repo' scope. Run 'ghprovision auth' for diagnostics.",
	)
}

func VaultUnreachable(addr string, err error) *ProvisionError {
	return WithHint(
		Wrap(ErrorTypeVault, fmt.Sprintf("Vault unreachable at %s", addr), err),
		"Check that Vault is running and VAULT_ADDR/VAULT_TOKEN are correct, or supply the token via GITHUB_TOKEN instead.",
	)
}

func InvalidConfiguration(key, reason string) *ProvisionError {
	return WithHint(
		New(ErrorTypeConfig, fmt.Sprintf("Invalid configuration for '%s': %s", key, reason)),
		"Check the GHPROVISION_* environment variables.",
	)
}

func InputAborted(err error) *ProvisionError {
	return Wrap(ErrorTypeInput, "input closed before the prompt was answered", err)
}
