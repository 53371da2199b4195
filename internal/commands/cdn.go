package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/plume/internal/cdn"
	"github.com/simonhull/plume/internal/input"
	"github.com/simonhull/plume/internal/logger"
	"github.com/simonhull/plume/internal/spin"
)

// CDNCmd returns the cdn command with invalidate/status subcommands
func CDNCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdn",
		Short: "Manage the CDN cache",
		Long:  "Invalidate cached content on the CloudFront distribution serving the site",
	}

	cmd.AddCommand(cdnInvalidateCmd(app))
	cmd.AddCommand(cdnStatusCmd(app))

	return cmd
}

// cdnInvalidateCmd creates an invalidation
func cdnInvalidateCmd(app *App) *cobra.Command {
	var (
		distribution string
		paths        []string
		callerRef    string
		wait         bool
		yes          bool
	)

	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Invalidate cached paths",
		Long: `Create a CloudFront invalidation so visitors get the freshly published site.

The distribution and paths default to cdn.distribution_id and cdn.paths in
plume.yml ("/*" when unset). AWS credentials come from the usual SDK chain
(environment, shared config, instance role).

Example:
  plume cdn invalidate --yes
  plume cdn invalidate --path /index.html --path /feeds/* --wait`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("distribution") {
				distribution = loaded.CDN.DistributionID
			}
			if !cmd.Flags().Changed("path") {
				paths = loaded.CDN.Paths
			}
			if distribution == "" {
				return fmt.Errorf("%w (set cdn.distribution_id or pass --distribution)", cdn.ErrMissingDistribution)
			}
			if len(paths) == 0 {
				paths = cdn.DefaultPaths
			}

			if !yes {
				prompt := input.NewPrompter(app.Stdin, app.Stderr)
				question := fmt.Sprintf("Invalidate %s on %s?", strings.Join(paths, " "), distribution)
				if !prompt.Confirm(question, false) {
					app.printer.Warn("Invalidation cancelled")
					return nil
				}
			}

			inv, err := app.NewInvalidator(loaded.CDN, app.log)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var created cdn.Invalidation
			err = spin.Run(ctx, app.Stderr, "Creating invalidation", func(ctx context.Context) error {
				var err error
				created, err = inv.Invalidate(ctx, cdn.Request{
					DistributionID:  distribution,
					Paths:           paths,
					CallerReference: callerRef,
				})
				return err
			})
			if err != nil {
				return err
			}

			app.printer.Success("Invalidation created successfully with Id: " + created.ID)
			app.printer.Verbose("caller reference: " + created.CallerReference)
			fmt.Fprintln(app.Stdout, created.ID)

			if !wait {
				return nil
			}

			err = spin.Run(ctx, app.Stderr, "Waiting for invalidation "+created.ID, func(ctx context.Context) error {
				return inv.Wait(ctx, distribution, created.ID)
			})
			if err != nil {
				return err
			}
			app.printer.Success("Invalidation " + created.ID + " completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&distribution, "distribution", "d", "", "Distribution ID (default: cdn.distribution_id)")
	cmd.Flags().StringSliceVarP(&paths, "path", "p", nil, "Path to invalidate, repeatable (default: cdn.paths)")
	cmd.Flags().StringVar(&callerRef, "caller-reference", "", "Idempotency token (default: random UUID)")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the invalidation completes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// cdnStatusCmd reports the state of an invalidation
func cdnStatusCmd(app *App) *cobra.Command {
	var distribution string

	cmd := &cobra.Command{
		Use:   "status [invalidation-id]",
		Short: "Show the status of an invalidation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("distribution") {
				distribution = loaded.CDN.DistributionID
			}

			inv, err := app.NewInvalidator(loaded.CDN, app.log)
			if err != nil {
				return err
			}

			got, err := inv.Status(cmd.Context(), distribution, args[0])
			if err != nil {
				return err
			}

			app.log.Debug("invalidation status", logger.F("id", got.ID), logger.F("status", got.Status))
			fmt.Fprintf(app.Stdout, "%s\t%s\n", got.ID, got.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&distribution, "distribution", "d", "", "Distribution ID (default: cdn.distribution_id)")

	return cmd
}
