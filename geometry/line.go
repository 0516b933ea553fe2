package geometry

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Line is a directed segment from Start to End.
type Line struct {
	Start, End Point
}

// NewLine builds a line from two operands. A Scalar s stands for
// Point{s, s}, which keeps diagonal test fixtures short: NewLine(Scalar(1),
// Scalar(2)) is the line from (1, 1) to (2, 2).
func NewLine(start, end Operand) (Line, error) {
	s, err := vector("new line", start)
	if err != nil {
		return Line{}, err
	}
	e, err := vector("new line", end)
	if err != nil {
		return Line{}, err
	}
	return Line{s, e}, nil
}

// Add translates both endpoints by o. Adding two lines is undefined.
func (l Line) Add(o Operand) (Line, error) {
	if _, ok := o.(Line); ok {
		return Line{}, errorf(UndefinedOperation, "line add", "cannot add two lines")
	}
	v, err := vector("line add", o)
	if err != nil {
		return Line{}, err
	}
	return Line{l.Start.Plus(v), l.End.Plus(v)}, nil
}

// Rotate rotates l anticlockwise about its start. Start is kept as is.
func (l Line) Rotate(angle float64) Line {
	return Line{l.Start, l.Start.Plus(l.End.Minus(l.Start).Rotate(angle))}
}

// Slope returns the gradient of l, or Vertical when both endpoints share x.
func (l Line) Slope() Slope {
	dx := l.End.X - l.Start.X
	if dx == 0 {
		return Vertical()
	}
	return Finite((l.End.Y - l.Start.Y) / dx)
}

// Intercept returns the y-axis intercept. ok is false for vertical lines.
func (l Line) Intercept() (b float64, ok bool) {
	m, ok := l.Slope().Value()
	if !ok {
		return 0, false
	}
	return l.Start.Y - m*l.Start.X, true
}

func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

// Reversed returns the line from End to Start.
func (l Line) Reversed() Line {
	return Line{l.End, l.Start}
}

// String renders l as Line(Point(x=1, y=1), Point(x=3, y=4)). ParseLine
// reads the same form back.
func (l Line) String() string {
	return "Line(" + l.Start.String() + ", " + l.End.String() + ")"
}

var linePattern = regexp.MustCompile(
	`^Line\(\s*Point\(x=([^,\s]+),\s*y=([^)\s]+)\),\s*Point\(x=([^,\s]+),\s*y=([^)\s]+)\)\s*\)$`)

// ParseLine parses the output of Line.String.
func ParseLine(s string) (Line, error) {
	m := linePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Line{}, errorf(InvalidArgument, "parse line", "malformed line %q", s)
	}
	var c [4]float64
	for i := range c {
		f, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Line{}, errorf(InvalidArgument, "parse line", "bad coordinate %q", m[i+1])
		}
		c[i] = f
	}
	return Line{Point{c[0], c[1]}, Point{c[2], c[3]}}, nil
}

// Slope is either a finite gradient or the vertical marker. The zero value
// is the finite slope 0.
type Slope struct {
	m        float64
	vertical bool
}

func Finite(m float64) Slope {
	return Slope{m: m}
}

func Vertical() Slope {
	return Slope{vertical: true}
}

func (s Slope) IsVertical() bool {
	return s.vertical
}

// Value returns the gradient; ok is false for a vertical slope.
func (s Slope) Value() (m float64, ok bool) {
	return s.m, !s.vertical
}

// Float returns the gradient with +Inf standing in for vertical.
func (s Slope) Float() float64 {
	if s.vertical {
		return math.Inf(1)
	}
	return s.m
}

func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return formatFloat(s.m)
}
