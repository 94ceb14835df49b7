package commands

import (
	"github.com/josebatistam/Astroinformatics-II/internal/app"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newLumdistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumdist <table>",
		Short: "Compute luminosity distances for a table of ra, dec and redshift",
		Long: "Reads a whitespace-separated table with one header line and rows of ra, dec and z,\n" +
			"and prints the luminosity distance of every row in Mpc, numbered from 1.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h0, _ := cmd.Flags().GetFloat64("h0")
			omegaM, _ := cmd.Flags().GetFloat64("omega-m")
			omegaV, _ := cmd.Flags().GetFloat64("omega-lambda")
			timings, _ := cmd.Flags().GetBool("timings")

			return c.app.Distances(cmd.Context(), app.DistanceOptions{
				Input:     args[0],
				Cosmology: domain.Cosmology{H0: h0, OmegaM: omegaM, OmegaV: omegaV},
				Out:       cmd.OutOrStdout(),
				Timings:   timings,
			})
		},
	}
	def := domain.DefaultCosmology
	cmd.Flags().Float64("h0", def.H0, "Hubble constant in km/s/Mpc")
	cmd.Flags().Float64("omega-m", def.OmegaM, "Matter density parameter")
	cmd.Flags().Float64("omega-lambda", def.OmegaV, "Vacuum energy density parameter")
	return cmd
}
