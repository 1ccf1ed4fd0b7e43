package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	noColor bool
	quiet   bool

	// Root command. Running ghprovision with no subcommand starts the
	// interactive provisioning flow.
	rootCmd = &cobra.Command{
		Use:   "ghprovision",
		Short: "Interactively provision GitHub repositories",
		Long: `ghprovision creates GitHub repositories interactively: it prompts for a
name, description and visibility, creates the repository on the
authenticated account, and optionally invites a collaborator with push
access.

The GitHub token is resolved from GITHUB_TOKEN, GH_TOKEN, Vault, the gh
CLI config, or git config, in that order. Tokens are never stored in
source or on disk by this tool.`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
