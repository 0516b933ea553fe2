package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"polyspiral/spiral"
)

// Tunable constants for SVG output, in drawing units.
const (
	DefaultSVGStyle  = "stroke-linecap: round; stroke-linejoin: round; fill: none"
	DefaultSVGWidth  = 0.005
	DefaultSVGMargin = 0.1
)

// SVG writes the drawing as a single SVG path. The viewBox is the
// drawing's bounding box plus Margin, so the image keeps its aspect ratio.
type SVG struct {
	W         io.Writer
	Stroke    string  // CSS colour, default black
	LineWidth float64 // in drawing units, default DefaultSVGWidth
	Margin    float64 // in drawing units, default DefaultSVGMargin
}

func (r *SVG) Render(d spiral.Drawing) error {
	pts := Polyline(d)
	if len(pts) == 0 {
		return ErrEmptyDrawing
	}

	stroke := r.Stroke
	if stroke == "" {
		stroke = "black"
	}
	width := r.LineWidth
	if width <= 0 {
		width = DefaultSVGWidth
	}
	margin := r.Margin
	if margin <= 0 {
		margin = DefaultSVGMargin
	}

	// SVG y grows downwards; flip so the drawing is not mirrored.
	b := Bounds(pts)
	viewBox := geom.Rect{
		Min: geom.Coord{X: b.Min.X - margin, Y: -b.Max.Y - margin},
		Max: geom.Coord{X: b.Max.X + margin, Y: -b.Min.Y + margin},
	}

	svg := newSVGWriter(r.W)
	svg.Start(viewBox)
	svg.StartPath(flip(pts[0].Coord()), DefaultSVGStyle, fmt.Sprintf("stroke: %s; stroke-width: %g", stroke, width))
	for _, p := range pts[1:] {
		svg.PathLineTo(flip(p.Coord()))
	}
	svg.EndPath()
	svg.End()
	if svg.err != nil {
		return errors.Wrap(svg.err, "render: write svg")
	}

	spiral.Logger().Info("render: svg written", "points", len(pts))
	return nil
}

func flip(c geom.Coord) geom.Coord {
	// +0 keeps y=0 from printing as -0.000000
	return geom.Coord{X: c.X, Y: -c.Y + 0}
}

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
type svgWriter struct {
	w   io.Writer
	err error
}

func newSVGWriter(w io.Writer) *svgWriter {
	return &svgWriter{w: w}
}

// printf records the first write error and drops everything after it.
func (svg *svgWriter) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, a...)
}

// extraparams turns name=value strings into attributes and anything else
// into a style attribute. Not quoting aware.
func extraparams(s []string) string {
	var ep strings.Builder
	for _, p := range s {
		if strings.Index(p, "=") > 0 {
			ep.WriteString(p + " ")
		} else if len(p) > 0 {
			ep.WriteString(fmt.Sprintf("style='%s' ", p))
		}
	}
	return ep.String()
}

func (svg *svgWriter) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

func (svg *svgWriter) End() {
	svg.printf("</svg>\n")
}

// StartPath opens a path at p. Multiple style strings are joined into one
// style attribute.
func (svg *svgWriter) StartPath(p geom.Coord, styles ...string) {
	svg.printf("<path %sd='M%f,%f", extraparams([]string{strings.Join(styles, "; ")}), p.X, p.Y)
}

func (svg *svgWriter) EndPath() {
	svg.printf("'/>\n")
}

func (svg *svgWriter) PathLineTo(p geom.Coord) {
	svg.printf("\n  L%f,%f", p.X, p.Y)
}
