package spiral

import (
	"math"
	"strconv"

	"polyspiral/geometry"
)

// Default placement of generated polygons: a circle of radius 2 about the
// origin, first vertex straight up.
const (
	DefaultRadius = 2.0
	DefaultOffset = -3 * math.Pi / 2
)

// Polygon is a closed chain of at least three lines: each line ends where
// the next starts and the last ends where the first starts.
type Polygon []geometry.Line

// NewPolygon returns the regular polygon with the given number of sides,
// inscribed in the default circle.
func NewPolygon(sides int) (Polygon, error) {
	return NewPolygonWith(sides, DefaultRadius, DefaultOffset)
}

// NewPolygonWith places sides vertices evenly on a circle of the given
// radius about the origin, the first at angle offset, and joins them in
// anticlockwise order. Line i runs from vertex i-1 to vertex i, so line 0
// closes the polygon.
func NewPolygonWith(sides int, radius, offset float64) (Polygon, error) {
	if sides < 3 {
		return nil, &geometry.Error{
			Kind: geometry.InvalidArgument,
			Op:   "new polygon",
			Msg:  "a polygon must have at least 3 lines",
		}
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, &geometry.Error{
			Kind: geometry.InvalidArgument,
			Op:   "new polygon",
			Msg:  "radius must be a positive number",
		}
	}

	start := geometry.Pt(radius, 0)
	step := 2 * math.Pi / float64(sides)
	vertices := make([]geometry.Point, sides)
	for i := range vertices {
		vertices[i] = start.RotateAround(offset+float64(i)*step, geometry.Origin)
	}

	p := make(Polygon, sides)
	for i := range p {
		prev := (i - 1 + sides) % sides
		p[i] = geometry.Line{Start: vertices[prev], End: vertices[i]}
	}
	return p, nil
}

// Validate reports an InvalidArgument error unless p is a closed chain of
// at least three lines.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return &geometry.Error{Kind: geometry.InvalidArgument, Op: "polygon", Msg: "a polygon must have at least 3 lines"}
	}
	for i, l := range p {
		next := p[(i+1)%len(p)]
		if l.End != next.Start {
			return &geometry.Error{
				Kind: geometry.InvalidArgument,
				Op:   "polygon",
				Msg:  "line " + strconv.Itoa(i) + " does not end where the next line starts",
			}
		}
	}
	return nil
}

// Vertices returns the start of every line.
func (p Polygon) Vertices() []geometry.Point {
	vs := make([]geometry.Point, len(p))
	for i, l := range p {
		vs[i] = l.Start
	}
	return vs
}

// Perimeter is the summed length of all lines.
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for _, l := range p {
		total += l.Length()
	}
	return total
}

// Area is the shoelace area of the polygon.
func (p Polygon) Area() float64 {
	area := 0.0
	for _, l := range p {
		area += l.Start.X*l.End.Y - l.End.X*l.Start.Y
	}
	return math.Abs(area) / 2
}
