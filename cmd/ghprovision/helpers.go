package main

import (
	"context"
	"os"

	"github.com/lcgerke/ghprovision/internal/config"
	ghclient "github.com/lcgerke/ghprovision/internal/github"
	"github.com/lcgerke/ghprovision/internal/ui"
)

// setupOutput builds the Output honoring flags and environment settings
func setupOutput(cfg *config.Config) *ui.Output {
	out := ui.NewOutput(os.Stdout)
	if noColor || cfg.NoColor {
		out.SetColorEnabled(false)
	}
	if quiet || cfg.Quiet {
		out.SetQuiet(true)
	}
	return out
}

// newGitHubClient resolves a token and builds an authenticated API client
func newGitHubClient(ctx context.Context, cfg *config.Config) (*ghclient.Client, *ghclient.TokenInfo, error) {
	info, err := ghclient.ResolveToken(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return ghclient.NewClient(ctx, info.Token), info, nil
}
