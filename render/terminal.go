package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"polyspiral/geometry"
	"polyspiral/spiral"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

const plotRune = '•'

// Terminal previews the drawing on a character grid.
type Terminal struct {
	// Screen to draw on; nil opens the controlling terminal.
	Screen tcell.Screen
	// Wait blocks until a key is pressed before restoring the terminal.
	Wait  bool
	Style tcell.Style
}

// Render initialises the screen, draws, optionally waits for a key and
// finalises the screen again, on every return path.
func (r *Terminal) Render(d spiral.Drawing) error {
	if len(d) == 0 {
		return ErrEmptyDrawing
	}

	s := r.Screen
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return errors.Wrap(err, "render: open terminal")
		}
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "render: init terminal")
	}
	defer s.Fini()

	r.Draw(s, d)
	for r.Wait {
		switch s.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.Sync()
			r.Draw(s, d)
		}
	}
	return nil
}

// Draw plots the drawing on an initialised screen, with a caption on the
// bottom row, and shows it.
func (r *Terminal) Draw(s tcell.Screen, d spiral.Drawing) {
	s.Clear()
	w, h := s.Size()
	pts := Polyline(d)
	if len(pts) == 0 || w < 1 || h < 2 {
		s.Show()
		return
	}

	f := newFit(Bounds(pts), float64(w-1), float64(h-2), 0, cellAspect)
	cell := func(p geometry.Point) (int, int) {
		x, y := f.apply(p)
		return int(x + 0.5), int(y + 0.5)
	}

	x0, y0 := cell(pts[0])
	for _, p := range pts[1:] {
		x1, y1 := cell(p)
		plotLine(x0, y0, x1, y1, func(x, y int) {
			s.SetContent(x, y, plotRune, nil, r.Style)
		})
		x0, y0 = x1, y1
	}

	caption := fmt.Sprintf("%d lines, press any key", len(d))
	for i, c := range []rune(caption) {
		if i >= w {
			break
		}
		s.SetContent(i, h-1, c, nil, r.Style)
	}
	s.Show()
	spiral.Logger().Debug("render: terminal drawn", "points", len(pts), "cols", w, "rows", h)
}

// plotLine calls plot for every cell on the Bresenham line between the two
// cells, both ends included.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
