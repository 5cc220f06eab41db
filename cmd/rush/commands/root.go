// Package commands implements the CLI commands for the rush tool.
package commands

import (
	"context"

	"github.com/Josmithr/rushstack/internal/app"
	"github.com/Josmithr/rushstack/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for rush.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rush",
		Short:         "A package manager for monorepos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("repo", "r", ".", "Path to the repository root")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// repoRoot returns the value of the persistent repo flag.
func repoRoot(cmd *cobra.Command) string {
	root, err := cmd.Flags().GetString("repo")
	if err != nil || root == "" {
		return "."
	}
	return root
}
