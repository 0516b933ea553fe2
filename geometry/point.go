// Package geometry is the 2-D kernel behind the spiral drawings: value-type
// points and directed lines, rotation, and slope-intercept line
// intersection.
//
// Every operation returns a new value. Arithmetic that takes an Operand
// reports an UndefinedOperation error for operands it cannot combine
// instead of coercing them.
package geometry

import (
	"math"
	"strconv"

	"github.com/jbeda/geom"
)

// Decimals is the number of decimal places kept by Rotate.
const Decimals = 8

var roundScale = math.Pow(10, Decimals)

// Origin is the zero point.
var Origin = Point{}

// Point is a coordinate in the plane. Equality is exact.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// PointFromCoord converts a geom.Coord.
func PointFromCoord(c geom.Coord) Point {
	return Point{c.X, c.Y}
}

func (p Point) Coord() geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

func (p Point) Plus(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Minus(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Times(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Add returns p + o.
func (p Point) Add(o Operand) (Point, error) {
	q, err := vector("point add", o)
	if err != nil {
		return Point{}, err
	}
	return p.Plus(q), nil
}

// Sub returns p - o.
func (p Point) Sub(o Operand) (Point, error) {
	q, err := vector("point subtract", o)
	if err != nil {
		return Point{}, err
	}
	return p.Minus(q), nil
}

// SubFrom returns o - p.
func (p Point) SubFrom(o Operand) (Point, error) {
	q, err := vector("point subtract", o)
	if err != nil {
		return Point{}, err
	}
	return q.Minus(p), nil
}

// Mul returns the component-wise product of p and o.
func (p Point) Mul(o Operand) (Point, error) {
	q, err := vector("point multiply", o)
	if err != nil {
		return Point{}, err
	}
	return Point{p.X * q.X, p.Y * q.Y}, nil
}

// Rotate rotates p anticlockwise about the origin by angle radians. Both
// coordinates are rounded to Decimals places so that repeated rotations
// do not accumulate noise.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		round(p.X*cos - p.Y*sin),
		round(p.X*sin + p.Y*cos),
	}
}

// RotateAround rotates p anticlockwise about center.
func (p Point) RotateAround(angle float64, center Point) Point {
	return center.Plus(p.Minus(center).Rotate(angle))
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// String renders p as Point(x=1, y=2).
func (p Point) String() string {
	return "Point(x=" + formatFloat(p.X) + ", y=" + formatFloat(p.Y) + ")"
}

func round(f float64) float64 {
	r := math.Round(f*roundScale) / roundScale
	if r == 0 {
		// drop negative zero
		return 0
	}
	return r
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
