// Package render turns a spiral drawing into something to look at. Every
// renderer draws the same thing: one connected polyline through the
// endpoints of the drawing's lines in order, at equal aspect ratio and
// without axes.
package render

import (
	"io"
	"strings"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"

	"polyspiral/geometry"
	"polyspiral/spiral"
)

// ErrEmptyDrawing is returned when there is nothing to draw.
var ErrEmptyDrawing = errors.New("render: empty drawing")

// Renderer draws a drawing to its destination.
type Renderer interface {
	Render(d spiral.Drawing) error
}

// Output formats understood by New.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatTerminal = "term"
)

// Formats lists the names accepted by New.
var Formats = []string{FormatSVG, FormatPNG, FormatTerminal}

// Config carries the settings shared by the renderers. Zero fields take
// each renderer's defaults.
type Config struct {
	Width, Height int
	LineWidth     float64
	Stroke        string
	Background    string
}

// New returns the renderer for format writing to w. The terminal renderer
// draws on the controlling terminal and ignores w.
func New(format string, w io.Writer, cfg Config) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatSVG:
		return &SVG{W: w, Stroke: cfg.Stroke, LineWidth: cfg.LineWidth}, nil
	case FormatPNG:
		return &PNG{
			W:          w,
			Width:      cfg.Width,
			Height:     cfg.Height,
			LineWidth:  cfg.LineWidth,
			Stroke:     cfg.Stroke,
			Background: cfg.Background,
		}, nil
	case FormatTerminal, "terminal":
		return &Terminal{Wait: true}, nil
	}
	return nil, errors.Errorf("render: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// Polyline returns the start and end of every line, in order.
func Polyline(lines []geometry.Line) []geometry.Point {
	pts := make([]geometry.Point, 0, 2*len(lines))
	for _, l := range lines {
		pts = append(pts, l.Start, l.End)
	}
	return pts
}

// Bounds returns the smallest rectangle containing every point.
func Bounds(pts []geometry.Point) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: pts[0].Coord(), Max: pts[0].Coord()}
	for _, p := range pts[1:] {
		r.ExpandToContainCoord(p.Coord())
	}
	return r
}

// fit maps drawing coordinates into a width x height box with the given
// margin, keeping the aspect ratio, centring the drawing and flipping y so
// that up in the drawing is up on screen. xAspect stretches x relative to y
// for devices whose pixels are not square.
type fit struct {
	bounds     geom.Rect
	scale      float64
	xAspect    float64
	offX, offY float64
}

func newFit(bounds geom.Rect, width, height, margin, xAspect float64) fit {
	bw, bh := bounds.Width(), bounds.Height()
	availW, availH := width-2*margin, height-2*margin

	scale := 1.0
	switch {
	case bw > 0 && bh > 0:
		scale = min(availW/(bw*xAspect), availH/bh)
	case bw > 0:
		scale = availW / (bw * xAspect)
	case bh > 0:
		scale = availH / bh
	}

	return fit{
		bounds:  bounds,
		scale:   scale,
		xAspect: xAspect,
		offX:    (width - bw*xAspect*scale) / 2,
		offY:    (height - bh*scale) / 2,
	}
}

func (f fit) apply(p geometry.Point) (x, y float64) {
	x = f.offX + (p.X-f.bounds.Min.X)*f.xAspect*f.scale
	y = f.offY + (f.bounds.Max.Y-p.Y)*f.scale
	return x, y
}
