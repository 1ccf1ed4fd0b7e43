// Package vault retrieves the GitHub PAT from HashiCorp Vault. PATs are read
// live on every run and never cached locally.
package vault

import (
	"context"
	"fmt"
	"time"

	vault "github.com/hashicorp/vault/api"
)

const tokenKey = "token"

// Client wraps the Vault API client.
type Client struct {
	client *vault.Client
	mount  string
	ctx    context.Context
}

// NewClient creates a new Vault client. Configuration comes from the standard
// environment variables (VAULT_ADDR, VAULT_TOKEN).
func NewClient(ctx context.Context, mount string) (*Client, error) {
	config := vault.DefaultConfig()
	if config == nil {
		return nil, fmt.Errorf("failed to create default vault config")
	}

	client, err := vault.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	return &Client{
		client: client,
		mount:  mount,
		ctx:    ctx,
	}, nil
}

// Address returns the Vault server address in use.
func (c *Client) Address() string {
	return c.client.Address()
}

// IsReachable checks if the Vault server answers a health probe.
func (c *Client) IsReachable() bool {
	ctx, cancel := context.WithTimeout(c.ctx, 2*time.Second)
	defer cancel()

	_, err := c.client.Sys().HealthWithContext(ctx)
	return err == nil
}

// GetPAT reads the GitHub personal access token from the KV v2 secret at the
// given path.
func (c *Client) GetPAT(path string) (string, error) {
	secret, err := c.client.KVv2(c.mount).Get(c.ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret at %s/%s: %w", c.mount, path, err)
	}

	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("no data found at %s/%s", c.mount, path)
	}

	token, ok := secret.Data[tokenKey].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("secret at %s/%s has no '%s' key", c.mount, path, tokenKey)
	}

	return token, nil
}
