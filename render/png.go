package render

import (
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"polyspiral/spiral"
)

const (
	DefaultPNGSize      = 800
	DefaultPNGLineWidth = 1.0
	DefaultPNGMargin    = 20.0
)

// PNG rasterises the drawing with gg and encodes it as PNG.
type PNG struct {
	W             io.Writer
	Width, Height int     // pixels, default DefaultPNGSize
	LineWidth     float64 // pixels, default DefaultPNGLineWidth
	Margin        float64 // pixels, default DefaultPNGMargin
	// Colours are SVG colour names ("black", "steelblue") or #rrggbb.
	Stroke, Background string
}

func (r *PNG) Render(d spiral.Drawing) (err error) {
	pts := Polyline(d)
	if len(pts) == 0 {
		return ErrEmptyDrawing
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultPNGSize
	}
	if height <= 0 {
		height = DefaultPNGSize
	}
	lineWidth := r.LineWidth
	if lineWidth <= 0 {
		lineWidth = DefaultPNGLineWidth
	}
	margin := r.Margin
	if margin <= 0 {
		margin = DefaultPNGMargin
	}
	stroke, err := lookupColor(r.Stroke, colornames.Black)
	if err != nil {
		return err
	}
	background, err := lookupColor(r.Background, colornames.White)
	if err != nil {
		return err
	}

	dc := gg.NewContext(width, height)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "render: close png context")
		}
	}()

	dc.ClearWithColor(gg.FromColor(background))

	f := newFit(Bounds(pts), float64(width), float64(height), margin, 1)
	dc.MoveTo(f.apply(pts[0]))
	for _, p := range pts[1:] {
		dc.LineTo(f.apply(p))
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(err, "render: stroke spiral")
	}

	if err := dc.EncodePNG(r.W); err != nil {
		return errors.Wrap(err, "render: encode png")
	}
	spiral.Logger().Info("render: png written", "points", len(pts), "width", width, "height", height)
	return nil
}

// lookupColor resolves a colour name or #rrggbb value; empty means def.
func lookupColor(name string, def color.RGBA) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return def, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) && isHex(name[1:]) {
		return gg.Hex(name).Color(), nil
	}
	return nil, errors.Errorf("render: unknown colour %q", name)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
