package spiral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyspiral/geometry"
)

func TestNewPolygonTooFewSides(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		p, err := NewPolygon(n)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, geometry.ErrInvalidArgument, "%d sides", n)
		assert.Contains(t, err.Error(), "a polygon must have at least 3 lines")
	}
}

func TestNewPolygonIsClosed(t *testing.T) {
	for n := 3; n <= 12; n++ {
		p, err := NewPolygon(n)
		require.NoError(t, err)
		require.Len(t, p, n)
		assert.NoError(t, p.Validate())

		for i, l := range p {
			next := p[(i+1)%n]
			assert.Equal(t, l.End, next.Start, "%d sides, line %d", n, i)
			assert.InDelta(t, p[0].Length(), l.Length(), 1e-7, "%d sides, line %d", n, i)
		}
		assert.Equal(t, p[n-1].End, p[0].Start)
	}
}

func TestNewPolygonVerticesOnCircle(t *testing.T) {
	p, err := NewPolygon(7)
	require.NoError(t, err)
	for _, v := range p.Vertices() {
		assert.InDelta(t, DefaultRadius, v.DistanceTo(geometry.Origin), 1e-7)
	}
	// first vertex sits at the top of the circle
	assert.Equal(t, geometry.Pt(0, 2), p[0].End)
}

func TestNewPolygonSquare(t *testing.T) {
	p, err := NewPolygon(4)
	require.NoError(t, err)

	expected := Polygon{
		{Start: geometry.Pt(2, 0), End: geometry.Pt(0, 2)},
		{Start: geometry.Pt(0, 2), End: geometry.Pt(-2, 0)},
		{Start: geometry.Pt(-2, 0), End: geometry.Pt(0, -2)},
		{Start: geometry.Pt(0, -2), End: geometry.Pt(2, 0)},
	}
	assert.Equal(t, expected, p)

	for i, l := range p {
		next := p[(i+1)%len(p)]
		assert.InDelta(t, l.Length(), next.Length(), 1e-9)

		a := l.End.Minus(l.Start)
		b := next.End.Minus(next.Start)
		assert.InDelta(t, 0, a.X*b.X+a.Y*b.Y, 1e-9, "lines %d and %d meet at a right angle", i, i+1)
	}
	assert.InDelta(t, 8, p.Area(), 1e-9)
	assert.InDelta(t, 8*math.Sqrt2, p.Perimeter(), 1e-9)
}

func TestNewPolygonWith(t *testing.T) {
	p, err := NewPolygonWith(3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(1, 0), p[1].Start)

	_, err = NewPolygonWith(3, 0, 0)
	assert.ErrorIs(t, err, geometry.ErrInvalidArgument)
	_, err = NewPolygonWith(3, math.NaN(), 0)
	assert.ErrorIs(t, err, geometry.ErrInvalidArgument)
}

func TestPolygonValidate(t *testing.T) {
	assert.ErrorIs(t, Polygon{}.Validate(), geometry.ErrInvalidArgument)

	open := Polygon{
		{Start: geometry.Pt(0, 0), End: geometry.Pt(1, 0)},
		{Start: geometry.Pt(1, 0), End: geometry.Pt(0, 1)},
		{Start: geometry.Pt(0, 1), End: geometry.Pt(0, 0.5)},
	}
	err := open.Validate()
	assert.ErrorIs(t, err, geometry.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "line 2")
}
