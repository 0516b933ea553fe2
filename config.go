package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"polyspiral/render"
	"polyspiral/spiral"
)

// Config holds everything a run needs. A JSON config file fills it first;
// command line flags and their environment variables override the file.
type Config struct {
	Sides         int     `json:"sides"`
	Angle         float64 `json:"angle"`
	Threshold     float64 `json:"threshold"`
	MaxIterations int     `json:"max_iterations"`

	Format     string  `json:"format"`
	Output     string  `json:"output"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	LineWidth  float64 `json:"line_width"`
	Stroke     string  `json:"stroke"`
	Background string  `json:"background"`

	Verbose bool `json:"verbose"`
	Debug   bool `json:"debug"`
}

// DefaultConfig draws the demonstration square spiral as SVG on stdout.
func DefaultConfig() Config {
	return Config{
		Sides:         4,
		Angle:         math.Pi / 75,
		Threshold:     spiral.DefaultThreshold,
		MaxIterations: spiral.DefaultMaxIterations,
		Format:        render.FormatSVG,
		Output:        "-",
		Width:         render.DefaultPNGSize,
		Height:        render.DefaultPNGSize,
		Stroke:        "black",
		Background:    "white",
	}
}

// LoadConfig reads a JSON config file over base. Keys missing from the
// file keep their value from base; unknown keys are an error.
func LoadConfig(filename string, base Config) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return base, errors.Wrapf(err, "could not open config (%s)", filename)
	}
	defer f.Close()

	cfg := base
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return base, errors.Wrapf(err, "could not parse config (%s)", filename)
	}
	return cfg, nil
}

// Validate checks the settings the spiral and render packages do not
// check themselves.
func (c Config) Validate() error {
	if math.IsNaN(c.Angle) || math.IsInf(c.Angle, 0) {
		return errors.New("angle must be a finite number of radians")
	}
	if c.Threshold < 0 {
		return errors.New("threshold must not be negative")
	}
	if c.MaxIterations < 0 {
		return errors.New("max-iterations must not be negative")
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New("width and height must not be negative")
	}
	if c.LineWidth < 0 {
		return errors.New("line-width must not be negative")
	}
	if c.Output == "" {
		return errors.New("output must be a file name or - for stdout")
	}
	for _, f := range render.Formats {
		if c.Format == f {
			return nil
		}
	}
	return errors.Errorf("unknown format %q", c.Format)
}

func (c Config) renderConfig() render.Config {
	return render.Config{
		Width:      c.Width,
		Height:     c.Height,
		LineWidth:  c.LineWidth,
		Stroke:     c.Stroke,
		Background: c.Background,
	}
}
