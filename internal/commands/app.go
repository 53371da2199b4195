package commands

import (
	"context"
	"io"
	"os"

	"github.com/simonhull/plume/internal/cdn"
	"github.com/simonhull/plume/internal/config"
	"github.com/simonhull/plume/internal/logger"
	"github.com/simonhull/plume/internal/output"
)

// Invalidator is the CDN client the cdn commands drive.
type Invalidator interface {
	Invalidate(ctx context.Context, req cdn.Request) (cdn.Invalidation, error)
	Status(ctx context.Context, distributionID, id string) (cdn.Invalidation, error)
	Wait(ctx context.Context, distributionID, id string) error
}

// App carries the streams and collaborators shared by every command.
type App struct {
	Version string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Dir is where plume.yml is looked for and where `site init` writes.
	Dir string

	// NewInvalidator builds the CDN client. Tests replace it with a fake.
	NewInvalidator func(cfg config.CDN, log logger.Logger) (Invalidator, error)

	configPath string
	printer    *output.Printer
	log        logger.Logger
	loaded     *config.Loaded
}

// NewApp returns an App wired to the process streams, working directory and
// the AWS-backed invalidator.
func NewApp(version string) *App {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return &App{
		Version: version,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Dir:     dir,
		NewInvalidator: func(cfg config.CDN, log logger.Logger) (Invalidator, error) {
			return cdn.New(cdn.Options{Region: cfg.Region, Logger: log})
		},
	}
}

// init sets up output and logging from the global flags. It is called once
// per invocation, before any subcommand runs.
func (a *App) init(verbose, quiet bool) {
	a.printer = output.New(a.Stderr)
	a.printer.SetVerbose(verbose)
	a.printer.SetQuiet(quiet)

	level := logger.LevelWarn
	switch {
	case quiet:
		level = logger.LevelSilent
	case verbose:
		level = logger.LevelDebug
	}
	a.log = logger.New(level, a.Stderr)
	a.loaded = nil
}

// Config loads plume.yml on first use.
func (a *App) Config() (*config.Loaded, error) {
	if a.loaded != nil {
		return a.loaded, nil
	}

	loaded, err := config.Load(a.Dir, a.configPath)
	if err != nil {
		return nil, err
	}

	if loaded.Source == "" {
		a.log.Debug("no config file found, using defaults", logger.F("dir", a.Dir))
	} else {
		a.log.Debug("config loaded", logger.F("source", loaded.Source))
	}
	a.loaded = loaded
	return loaded, nil
}
