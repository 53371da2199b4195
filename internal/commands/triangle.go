package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simonhull/plume/internal/logger"
	"github.com/simonhull/plume/internal/pascal"
	"github.com/simonhull/plume/internal/render"
)

const (
	strategyRecurrence = "recurrence"
	strategyFactorial  = "factorial"
)

// TriangleCmd prints rows of Pascal's triangle
func TriangleCmd(app *App) *cobra.Command {
	var (
		rows     int
		format   string
		exact    bool
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "triangle [rows]",
		Short: "Print rows of Pascal's triangle",
		Long: `Print the first N rows of Pascal's triangle, one row per line.

Row i lists the binomial coefficients C(i, 0) through C(i, i). N defaults to
triangle.rows from plume.yml, or 12.

Rows are computed with 64-bit integers, which hold up to 68 rows. Use --exact
for arbitrary precision.

Examples:
  plume triangle 5
  plume triangle --rows 100 --exact
  plume triangle 12 --format pretty
  plume triangle 8 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.Config()
			if err != nil {
				return err
			}
			defaults := loaded.Triangle

			n := defaults.Rows
			switch {
			case len(args) == 1:
				n, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%w: row count %q is not an integer", pascal.ErrInvalidArgument, args[0])
				}
			case cmd.Flags().Changed("rows"):
				n = rows
			}

			if !cmd.Flags().Changed("format") {
				format = defaults.Format
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("exact") {
				exact = defaults.Exact
			}

			app.log.Debug("generating triangle",
				logger.F("rows", n), logger.F("strategy", strategy), logger.F("exact", exact))

			src, err := generate(n, strategy, exact)
			if err != nil {
				if errors.Is(err, pascal.ErrOverflow) {
					return fmt.Errorf("%w (use --exact for arbitrary precision)", err)
				}
				return err
			}

			r := render.Renderer{Format: f, Width: terminalWidth(app.Stdout)}
			return r.Render(app.Stdout, src)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "Number of rows to print")
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "Output format: text, pretty, json, yaml")
	cmd.Flags().BoolVar(&exact, "exact", false, "Use arbitrary-precision integers")
	cmd.Flags().StringVar(&strategy, "strategy", strategyRecurrence, "Coefficient strategy: recurrence or factorial")

	return cmd
}

// generate builds the triangle for the chosen strategy. The factorial
// strategy is always exact.
func generate(n int, strategy string, exact bool) (render.Source, error) {
	switch strategy {
	case strategyRecurrence, "":
		if exact {
			return pascal.GenerateExact(n)
		}
		return pascal.Generate(n)
	case strategyFactorial:
		return pascal.GenerateFactorial(n)
	default:
		return nil, fmt.Errorf("unknown strategy %q (use %s or %s)", strategy, strategyRecurrence, strategyFactorial)
	}
}
