package geometry

// Intersect returns the point where the infinite extensions of l1 and l2
// cross. Lines with equal slopes, including two vertical lines, fail with
// a GeometricDegeneracy error.
//
// The solver works on slope-intercept form, so precision degrades as a
// line approaches vertical without reaching it.
func Intersect(l1, l2 Line) (Point, error) {
	s1, s2 := l1.Slope(), l2.Slope()
	if s1 == s2 {
		return Point{}, errorf(GeometricDegeneracy, "intersect", "lines are parallel: %v and %v", l1, l2)
	}

	if s1.IsVertical() {
		return onLine(l2, l1.Start.X), nil
	}
	if s2.IsVertical() {
		return onLine(l1, l2.Start.X), nil
	}

	m1, _ := s1.Value()
	m2, _ := s2.Value()
	b1, _ := l1.Intercept()
	b2, _ := l2.Intercept()

	x := (b2 - b1) / (m1 - m2)
	return Point{x, b1 + m1*x}, nil
}

// onLine evaluates the non-vertical line l at x.
func onLine(l Line, x float64) Point {
	m, _ := l.Slope().Value()
	b, _ := l.Intercept()
	return Point{x, b + m*x}
}
