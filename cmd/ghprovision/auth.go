package main

import (
	"fmt"

	"github.com/lcgerke/ghprovision/internal/config"
	ghclient "github.com/lcgerke/ghprovision/internal/github"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check GitHub authentication status",
	Long: `Diagnose GitHub API authentication.

This command checks:
  - Token availability from each source (env, Vault, gh CLI, git config)
  - Token validity against the GitHub API
  - Which account the token belongs to`,
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println("🔍 Checking authentication...")

	info, err := ghclient.ResolveToken(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ No token found\n")
		fmt.Println()
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	fmt.Printf("✓ Token found\n")
	fmt.Printf("  Source: %s\n", info.Source)

	client := ghclient.NewClient(ctx, info.Token)

	fmt.Println()
	fmt.Println("🔍 Validating token...")

	login, err := client.GetAuthenticatedUser()
	if err != nil {
		fmt.Printf("❌ Token validation failed\n")
		fmt.Println()
		fmt.Printf("Error: %v\n", err)
		fmt.Println()
		fmt.Println("Your token may be expired or lack required permissions.")
		fmt.Println("Required scopes: repo (full control of private repositories)")
		return nil
	}

	fmt.Printf("✓ Token is valid\n")
	fmt.Printf("  Authenticated as: %s\n", login)

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("✅ GitHub authentication is working correctly")

	return nil
}
