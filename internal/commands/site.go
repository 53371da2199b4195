package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simonhull/plume/internal/config"
)

// SiteCmd returns the site command with show/check/init subcommands
func SiteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Inspect and validate site settings",
		Long:  "Show, validate, and scaffold the plume.yml settings handed to the static-site builder",
	}

	cmd.AddCommand(siteShowCmd(app))
	cmd.AddCommand(siteCheckCmd(app))
	cmd.AddCommand(siteInitCmd(app))

	return cmd
}

// siteShowCmd prints the effective settings
func siteShowCmd(app *App) *cobra.Command {
	var publish bool
	var encoding string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long: `Print the settings after defaults, plume.yml, and PLUME_* environment
overrides are merged.

With --publish the production overlay is applied: absolute URLs, feeds
enabled, and a clean output directory.

Example:
  plume site show --publish --output toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config()
			if err != nil {
				return err
			}

			cfg := loaded.Config
			if publish {
				cfg = cfg.ForPublish()
			}

			data, err := config.Marshal(cfg, config.Encoding(encoding))
			if err != nil {
				return err
			}
			_, err = app.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "Apply the publish overlay")
	cmd.Flags().StringVarP(&encoding, "output", "o", string(config.EncodingYAML), "Output syntax: yaml or toml")

	return cmd
}

// siteCheckCmd validates the settings
func siteCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config()
			if err != nil {
				return err
			}

			name := loaded.Source
			if name == "" {
				name = "default settings"
			}

			err = config.Validate(loaded.Config)
			var verrs config.ValidationErrors
			if errors.As(err, &verrs) {
				for _, e := range verrs {
					app.printer.Error(e.Error())
				}
				return fmt.Errorf("%s has %d problem(s)", name, len(verrs))
			}
			if err != nil {
				return err
			}

			app.printer.Success(name + " is valid")
			return nil
		},
	}
}

// siteInitCmd writes a default config file
func siteInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default plume.yml",
		Long: `Write the default settings to plume.yml, or to the given path.
A .toml extension writes TOML instead of YAML.

Example:
  plume site init
  plume site init plume.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(app.Dir, config.FileName+".yml")
			if len(args) == 1 {
				path = args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(app.Dir, path)
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			app.printer.Success("Created " + path)
			app.printer.Info("Next steps:")
			app.printer.Step("Set site.author, site.name and site.url")
			app.printer.Step("Set cdn.distribution_id to enable `plume cdn invalidate`")
			app.printer.Step("plume site check")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
