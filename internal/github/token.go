package github

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lcgerke/ghprovision/internal/config"
	"github.com/lcgerke/ghprovision/internal/errors"
	"github.com/lcgerke/ghprovision/internal/vault"
)

// TokenSource represents where the token was found
type TokenSource string

const (
	SourceEnvVar    TokenSource = "GITHUB_TOKEN"
	SourceVault     TokenSource = "vault"
	SourceGhConfig  TokenSource = "~/.config/gh/hosts.yml"
	SourceGitConfig TokenSource = "git config github.token"
)

// TokenInfo contains token and its source
type TokenInfo struct {
	Token  string
	Source TokenSource
}

// ResolveToken finds a GitHub token from the configured sources.
// Priority: GITHUB_TOKEN env var > GH_TOKEN env var > Vault > gh CLI config
// > git config. Vault is only consulted when VAULT_ADDR is set.
func ResolveToken(ctx context.Context, cfg *config.Config) (*TokenInfo, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return &TokenInfo{Token: token, Source: SourceEnvVar}, nil
	}

	if token := os.Getenv("GH_TOKEN"); token != "" {
		return &TokenInfo{Token: token, Source: SourceEnvVar}, nil
	}

	if os.Getenv("VAULT_ADDR") != "" {
		if token, err := readVaultToken(ctx, cfg); err == nil && token != "" {
			return &TokenInfo{Token: token, Source: SourceVault}, nil
		}
	}

	if token, err := readGhConfigToken(); err == nil && token != "" {
		return &TokenInfo{Token: token, Source: SourceGhConfig}, nil
	}

	if token, err := readGitConfigToken(); err == nil && token != "" {
		return &TokenInfo{Token: token, Source: SourceGitConfig}, nil
	}

	return nil, errors.TokenNotFound()
}

// readVaultToken reads the PAT from Vault. PATs are never cached.
func readVaultToken(ctx context.Context, cfg *config.Config) (string, error) {
	client, err := vault.NewClient(ctx, cfg.VaultMount)
	if err != nil {
		return "", err
	}

	if !client.IsReachable() {
		return "", errors.VaultUnreachable(client.Address(), nil)
	}

	return client.GetPAT(cfg.VaultSecretPath)
}

// readGhConfigToken reads the oauth token from the gh CLI config
func readGhConfigToken() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(home, ".config", "gh", "hosts.yml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return "", err
	}

	var hosts map[string]map[string]string
	if err := yaml.Unmarshal(data, &hosts); err != nil {
		return "", err
	}

	if ghConfig, ok := hosts["github.com"]; ok {
		if token, ok := ghConfig["oauth_token"]; ok {
			return token, nil
		}
	}

	return "", errors.New(errors.ErrorTypeGitHub, "no token in gh config")
}

// readGitConfigToken reads github.token from the global git config
func readGitConfigToken() (string, error) {
	cmd := exec.Command("git", "config", "--global", "github.token")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", errors.New(errors.ErrorTypeGitHub, "git config github.token is empty")
	}

	return token, nil
}
