package commands

import (
	"github.com/josebatistam/Astroinformatics-II/internal/app"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the catalog figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			return c.app.Plot(cmd.Context(), app.PlotOptions{
				Settings: settings(cmd),
				Format:   domain.Format(format),
				OutDir:   out,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "", "Output format: pdf or summary (default from configuration)")
	cmd.Flags().StringP("out", "o", "", "Output directory for rendered plots (default from configuration)")
	return cmd
}
