// Package commands implements the CLI commands for abell.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/josebatistam/Astroinformatics-II/internal/app"
	"github.com/josebatistam/Astroinformatics-II/internal/build"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for abell.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Prepare(ctx context.Context, opts app.PrepareOptions) error
	Plot(ctx context.Context, opts app.PlotOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Distances(ctx context.Context, opts app.DistanceOptions) error
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "abell",
		Short:         "Prepare and plot the Abell galaxy cluster catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	flags.String("catalog", "", "Path to the source catalog (overrides the configuration)")
	flags.String("cache", "", "Path to the cache artifact (overrides the configuration)")
	flags.Bool("timings", false, "Print the duration of each stage")
	flags.Bool("json", false, "Emit logs as JSON")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
			a.SetJSONLogs(true)
		}
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newPlotCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newLumdistCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// settings reads the persistent flags shared by every command.
func settings(cmd *cobra.Command) app.Settings {
	configPath, _ := cmd.Flags().GetString("config")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	cachePath, _ := cmd.Flags().GetString("cache")
	timings, _ := cmd.Flags().GetBool("timings")

	return app.Settings{
		ConfigPath:  configPath,
		CatalogPath: catalogPath,
		CachePath:   cachePath,
		Timings:     timings,
	}
}
