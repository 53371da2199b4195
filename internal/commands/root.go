package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/simonhull/plume/internal/output"
)

// RootCmd creates and returns the root command for the plume CLI
func RootCmd(app *App) *cobra.Command {
	var verbose, quiet bool

	cmd := &cobra.Command{
		Use:   "plume",
		Short: "Companion tools for a statically generated blog",
		Long: `plume bundles the small utilities that live next to a static blog:

• Print Pascal's triangle (the demo behind the binomial-coefficients post)
• Inspect and validate the site settings in plume.yml
• Invalidate the CDN cache after publishing`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.init(verbose, quiet)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and command output")
	cmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default: ./plume.yml)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(TriangleCmd(app))
	cmd.AddCommand(SiteCmd(app))
	cmd.AddCommand(CDNCmd(app))

	return cmd
}

// Execute runs plume with the process arguments and returns the exit code.
func Execute(version string) int {
	app := NewApp(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd(app).ExecuteContext(ctx); err != nil {
		p := app.printer
		if p == nil {
			p = output.New(app.Stderr)
		}
		p.Error(err.Error())
		return 1
	}
	return 0
}
