package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the repo state matches the current inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variants, err := cmd.Flags().GetStringSlice("variant")
			if err != nil {
				return err
			}
			return c.app.Check(cmd.Context(), repoRoot(cmd), variants)
		},
	}

	cmd.Flags().StringSlice("variant", nil, "Variant to check (repeatable; all variants when omitted)")
	return cmd
}
