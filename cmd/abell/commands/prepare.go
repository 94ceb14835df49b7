package commands

import (
	"github.com/josebatistam/Astroinformatics-II/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Build the derived bundle, or restore it from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rebuild, _ := cmd.Flags().GetBool("rebuild")

			return c.app.Prepare(cmd.Context(), app.PrepareOptions{
				Settings: settings(cmd),
				Rebuild:  rebuild,
			})
		},
	}
	cmd.Flags().BoolP("rebuild", "r", false, "Ignore the cache artifact and rebuild it from the catalog")
	return cmd
}
