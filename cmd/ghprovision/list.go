package main

import (
	"fmt"

	"github.com/lcgerke/ghprovision/internal/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the authenticated user's repositories",
	Long:  "Lists the repositories on the authenticated account, most recently updated first.",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := setupOutput(cfg)

	client, _, err := newGitHubClient(ctx, cfg)
	if err != nil {
		return err
	}

	repos, err := client.ListRepositories()
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repos) == 0 {
		out.Info("No repositories found.")
		out.Info("Create one with: ghprovision create")
		return nil
	}

	out.Header("Repositories")
	out.Blank()

	for _, repo := range repos {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}
		fmt.Printf("📁 %s/%s\n", repo.Owner, repo.Name)
		fmt.Printf("   Visibility: %s\n", visibility)
		fmt.Printf("   URL:        %s\n", repo.HTMLURL)
		fmt.Println()
	}

	out.Separator()
	out.Infof("Total: %d repositories", len(repos))

	return nil
}
