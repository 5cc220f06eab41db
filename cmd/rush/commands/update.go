package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Reconcile and persist the repo state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := cmd.Flags().GetString("variant")
			if err != nil {
				return err
			}
			_, err = c.app.Update(cmd.Context(), repoRoot(cmd), variant)
			return err
		},
	}

	cmd.Flags().String("variant", "", "Variant to update (default variant when omitted)")
	return cmd
}
