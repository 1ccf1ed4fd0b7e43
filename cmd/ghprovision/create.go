package main

import (
	"os"

	"github.com/lcgerke/ghprovision/internal/config"
	"github.com/lcgerke/ghprovision/internal/prompt"
	"github.com/lcgerke/ghprovision/internal/provision"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a repository and optionally invite a collaborator",
	Long: `Runs the interactive provisioning flow. Prompts, in order:

  1. Repository name
  2. Description (optional)
  3. Private? (yes/no)
  4. Invite someone? (yes/no)
  5. GitHub username (only when inviting)

Only an exact "yes" (any case) counts as yes. Collaborators are always
invited with push permission. Failures from GitHub are printed and the
flow ends; a failed invitation leaves the created repository in place.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	provisioner := provision.New(client, prompt.NewReader(os.Stdin, os.Stdout), out)
	return provisioner.Run()
}
