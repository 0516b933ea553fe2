package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"polyspiral/render"
	"polyspiral/spiral"
)

var spiralFlags = []cli.Flag{
	cli.StringFlag{Name: "config", EnvVar: "POLYSPIRAL_CONFIG", Usage: "JSON config file; flags override it"},
	cli.IntFlag{Name: "sides", Value: 4, EnvVar: "POLYSPIRAL_SIDES", Usage: "Number of polygon sides, at least 3"},
	cli.Float64Flag{Name: "angle", Value: DefaultConfig().Angle, EnvVar: "POLYSPIRAL_ANGLE", Usage: "Rotation per step, in radians"},
	cli.Float64Flag{Name: "threshold", Value: spiral.DefaultThreshold, EnvVar: "POLYSPIRAL_THRESHOLD", Usage: "Stop once the working edge is this short"},
	cli.IntFlag{Name: "max-iterations", Value: spiral.DefaultMaxIterations, EnvVar: "POLYSPIRAL_MAX_ITERATIONS", Usage: "Upper bound on appended lines"},
	cli.BoolFlag{Name: "verbose", EnvVar: "POLYSPIRAL_VERBOSE", Usage: "Enable info logging"},
	cli.BoolFlag{Name: "debug", EnvVar: "POLYSPIRAL_DEBUG", Usage: "Enable debug logging"},
}

var drawFlags = append([]cli.Flag{
	cli.StringFlag{Name: "format, f", Value: render.FormatSVG, EnvVar: "POLYSPIRAL_FORMAT", Usage: "Output format: svg, png or term"},
	cli.StringFlag{Name: "output, o", Value: "-", EnvVar: "POLYSPIRAL_OUTPUT", Usage: "Output file, - for stdout"},
	cli.IntFlag{Name: "width", Value: render.DefaultPNGSize, EnvVar: "POLYSPIRAL_WIDTH", Usage: "PNG width in pixels"},
	cli.IntFlag{Name: "height", Value: render.DefaultPNGSize, EnvVar: "POLYSPIRAL_HEIGHT", Usage: "PNG height in pixels"},
	cli.Float64Flag{Name: "line-width", EnvVar: "POLYSPIRAL_LINE_WIDTH", Usage: "Stroke width; 0 uses the format's default"},
	cli.StringFlag{Name: "stroke", Value: "black", EnvVar: "POLYSPIRAL_STROKE", Usage: "Stroke colour"},
	cli.StringFlag{Name: "background", Value: "white", EnvVar: "POLYSPIRAL_BACKGROUND", Usage: "PNG background colour"},
}, spiralFlags...)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(app.ErrWriter, chalk.Red.Color("polyspiral: "+err.Error()))
		os.Exit(1)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "polyspiral"
	app.Usage = "Draw rotating-polygon spirals"
	app.Description = "Starts from a regular polygon and keeps rotating and intersecting its edges until they are shorter than the threshold."
	app.ErrWriter = os.Stderr
	app.Flags = drawFlags
	app.Action = drawAction

	app.Commands = []cli.Command{
		{
			Name:    "draw",
			Aliases: []string{"d"},
			Usage:   "Generate a spiral and render it",
			Flags:   drawFlags,
			Action:  drawAction,
		},
		{
			Name:    "lines",
			Aliases: []string{"l"},
			Usage:   "Print every line of the spiral, one per row",
			Flags:   spiralFlags,
			Action: func(c *cli.Context) error {
				cfg, err := configFromContext(c)
				if err != nil {
					return err
				}
				return printLines(cfg, c.App.Writer)
			},
		},
	}

	return app
}

func drawAction(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	return draw(cfg, c.App.Writer, c.App.ErrWriter)
}

// configFromContext layers explicitly set flags over the config file over
// the defaults.
func configFromContext(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if filename := c.String("config"); filename != "" {
		var err error
		if cfg, err = LoadConfig(filename, cfg); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("sides") {
		cfg.Sides = c.Int("sides")
	}
	if c.IsSet("angle") {
		cfg.Angle = c.Float64("angle")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.IsSet("max-iterations") {
		cfg.MaxIterations = c.Int("max-iterations")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("line-width") {
		cfg.LineWidth = c.Float64("line-width")
	}
	if c.IsSet("stroke") {
		cfg.Stroke = c.String("stroke")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	cfg.Verbose = cfg.Verbose || c.Bool("verbose")
	cfg.Debug = cfg.Debug || c.Bool("debug")

	setupLogging(cfg, c.App.ErrWriter)
	return cfg, cfg.Validate()
}

func setupLogging(cfg Config, w io.Writer) {
	switch {
	case cfg.Debug:
		spiral.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	case cfg.Verbose:
		spiral.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
	default:
		spiral.SetLogger(nil)
	}
}

func generate(cfg Config) (spiral.Result, error) {
	p, err := spiral.NewPolygon(cfg.Sides)
	if err != nil {
		return spiral.Result{}, errors.Wrap(err, "could not create polygon")
	}
	r, err := spiral.Generate(p, cfg.Angle,
		spiral.WithThreshold(cfg.Threshold),
		spiral.WithMaxIterations(cfg.MaxIterations))
	if err != nil {
		return spiral.Result{}, errors.Wrap(err, "could not generate spiral")
	}
	return r, nil
}

// draw generates the spiral and renders it to cfg.Output, printing a one
// line summary to summary.
func draw(cfg Config, stdout, summary io.Writer) (err error) {
	r, err := generate(cfg)
	if err != nil {
		return err
	}

	out := stdout
	if cfg.Output != "-" && cfg.Format != render.FormatTerminal {
		f, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return errors.Wrapf(ferr, "could not create output (%s)", cfg.Output)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "could not close output (%s)", cfg.Output)
			}
		}()
		out = f
	}

	renderer, err := render.New(cfg.Format, out, cfg.renderConfig())
	if err != nil {
		return err
	}
	if err := renderer.Render(r.Drawing); err != nil {
		return errors.Wrapf(err, "could not render %s", cfg.Format)
	}

	printSummary(summary, cfg, r)
	return nil
}

func printSummary(w io.Writer, cfg Config, r spiral.Result) {
	if r.Converged {
		fmt.Fprintln(w, chalk.Green.Color(fmt.Sprintf(
			"%d sides, %d lines, converged after %d steps", cfg.Sides, len(r.Drawing), r.Iterations)))
		return
	}
	fmt.Fprintln(w, chalk.Yellow.Color(fmt.Sprintf(
		"%d sides, %d lines, stopped after %d steps (edge %.4f > %g)",
		cfg.Sides, len(r.Drawing), r.Iterations, r.FinalEdge.Length(), cfg.Threshold)))
}

// printLines writes every line of the drawing in the form read back by
// geometry.ParseLine.
func printLines(cfg Config, w io.Writer) error {
	r, err := generate(cfg)
	if err != nil {
		return err
	}
	for _, l := range r.Drawing {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.Wrap(err, "could not write lines")
		}
	}
	return nil
}
