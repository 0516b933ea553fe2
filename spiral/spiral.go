// Package spiral builds regular polygons and grows them into rotating
// polygon spirals.
//
// Starting on the first edge, each step rotates the remaining part of the
// current edge about the cursor by a small angle and intersects it with
// the line that follows the current one in the drawing. The segment from
// the cursor to the intersection is appended and becomes the new cursor.
// On the first lap the following line is a polygon edge; after that it is
// the segment appended one lap earlier, which pulls the path inwards until
// the edges are shorter than the threshold.
package spiral

import (
	"math"

	"polyspiral/geometry"
)

const (
	DefaultThreshold     = 0.01
	DefaultMaxIterations = 1000
)

// Drawing is the ordered list of lines to render: the polygon edges
// followed by every appended segment.
type Drawing []geometry.Line

// Result is the output of Generate.
type Result struct {
	Drawing    Drawing
	Iterations int
	// FinalEdge is the working edge when the loop stopped; its length is
	// what the threshold is tested against.
	FinalEdge geometry.Line
	// Converged is false when MaxIterations stopped the loop before the
	// working edge dropped to the threshold.
	Converged bool
}

// Appended returns the lines added after the first sides lines.
func (d Drawing) Appended(sides int) Drawing {
	if sides >= len(d) {
		return nil
	}
	return d[sides:]
}

type options struct {
	threshold     float64
	maxIterations int
}

// Option configures Generate.
type Option func(*options)

// WithThreshold sets the edge length at or below which generation stops.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithMaxIterations bounds the number of appended lines.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// Generate grows p into a spiral, rotating by angle radians at every step.
// p is not modified. Errors from p's validation or from the intersection
// solver are returned unchanged. Hitting the iteration bound is not an
// error; see Result.Converged.
func Generate(p Polygon, angle float64, opts ...Option) (Result, error) {
	o := options{threshold: DefaultThreshold, maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Result{}, &geometry.Error{Kind: geometry.InvalidArgument, Op: "generate", Msg: "angle must be finite"}
	}
	if math.IsNaN(o.threshold) || o.threshold < 0 {
		return Result{}, &geometry.Error{Kind: geometry.InvalidArgument, Op: "generate", Msg: "threshold must not be negative"}
	}
	if o.maxIterations < 0 {
		return Result{}, &geometry.Error{Kind: geometry.InvalidArgument, Op: "generate", Msg: "max iterations must not be negative"}
	}

	log := Logger()
	sides := len(p)

	drawing := make(Drawing, sides, sides+min(o.maxIterations, 4096))
	copy(drawing, p)

	edge := drawing[0]
	cursor := edge.Start
	i := 0
	for edge.Length() > o.threshold && i < o.maxIterations {
		edge = geometry.Line{Start: cursor, End: edge.End}
		// drawing grows by one line per step, so i+1 is always in range
		next := drawing[i+1]

		var err error
		cursor, err = geometry.Intersect(edge.Rotate(angle), next)
		if err != nil {
			log.Debug("spiral: intersection failed", "step", i, "edge", edge, "next", next, "err", err)
			return Result{}, err
		}
		drawing = append(drawing, geometry.Line{Start: edge.Start, End: cursor})

		i++
		edge = next
		if i%sides == 0 {
			log.Debug("spiral: lap", "lap", i/sides, "edge_length", edge.Length())
		}
	}

	r := Result{
		Drawing:    drawing,
		Iterations: i,
		FinalEdge:  edge,
		Converged:  edge.Length() <= o.threshold,
	}
	log.Info("spiral: generated",
		"sides", sides,
		"angle", angle,
		"lines", len(drawing),
		"iterations", r.Iterations,
		"converged", r.Converged)
	return r, nil
}
