package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, start, end Operand) Line {
	t.Helper()
	l, err := NewLine(start, end)
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	l := mustLine(t, Scalar(1), Scalar(2))
	assert.Equal(t, Pt(1, 1), l.Start)
	assert.Equal(t, Pt(2, 2), l.End)

	l = mustLine(t, Pt(1, 2), Pt(3, 4))
	assert.Equal(t, Line{Pt(1, 2), Pt(3, 4)}, l)

	l = mustLine(t, Scalar(1), Pt(3, 4))
	assert.Equal(t, Line{Pt(1, 1), Pt(3, 4)}, l)
	assert.Equal(t, mustLine(t, Pt(1, 1), Pt(3, 4)), l)
}

func TestNewLineRejectsLines(t *testing.T) {
	_, err := NewLine(Line{}, Scalar(1))
	assert.ErrorIs(t, err, ErrUndefinedOperation)

	_, err = NewLine(Scalar(1), nil)
	assert.ErrorIs(t, err, ErrUndefinedOperation)
}

func TestLineAdd(t *testing.T) {
	cases := []struct {
		Name     string
		Line     Line
		Other    Operand
		Expected Line
	}{
		{"scalar", mustLine(t, Scalar(1), Scalar(2)), Scalar(3), mustLine(t, Scalar(4), Scalar(5))},
		{"point", mustLine(t, Scalar(1), Scalar(2)), Pt(3, 4), Line{Pt(4, 5), Pt(5, 6)}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := tc.Line.Add(tc.Other)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestLineAddRebinding(t *testing.T) {
	actual := mustLine(t, Scalar(0), Scalar(0))
	for _, o := range []Operand{Pt(1, 2), Scalar(3)} {
		var err error
		actual, err = actual.Add(o)
		require.NoError(t, err)
	}
	assert.Equal(t, Line{Pt(4, 5), Pt(4, 5)}, actual)
}

func TestLineAddTwoLines(t *testing.T) {
	_, err := mustLine(t, Scalar(1), Scalar(2)).Add(mustLine(t, Scalar(3), Scalar(4)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUndefinedOperation)
	assert.Contains(t, err.Error(), "cannot add two lines")

	_, err = mustLine(t, Scalar(1), Scalar(2)).Add(nil)
	assert.ErrorIs(t, err, ErrUndefinedOperation)
}

func TestLineTranslatePreservesLengthAndSlope(t *testing.T) {
	lines := []Line{
		{Pt(0, 0), Pt(3, 4)},
		{Pt(-1, 2), Pt(5, -1)},
		{Pt(2, 0), Pt(2, 7)},
	}
	for _, l := range lines {
		moved, err := l.Add(Pt(4, -8))
		require.NoError(t, err)
		assert.InDelta(t, l.Length(), moved.Length(), 1e-12)
		if l.Slope().IsVertical() {
			assert.True(t, moved.Slope().IsVertical())
			continue
		}
		m, _ := l.Slope().Value()
		movedM, ok := moved.Slope().Value()
		require.True(t, ok)
		assert.InDelta(t, m, movedM, 1e-12)
	}
}

func TestLineRotate(t *testing.T) {
	cases := []struct {
		Degrees  float64
		Expected Line
	}{
		{0, mustLine(t, Scalar(1), Scalar(2))},
		{90, mustLine(t, Scalar(1), Pt(0, 2))},
		{180, mustLine(t, Scalar(1), Pt(0, 0))},
		{270, mustLine(t, Scalar(1), Pt(2, 0))},
		{360, mustLine(t, Scalar(1), Scalar(2))},
	}

	l := mustLine(t, Scalar(1), Scalar(2))
	for _, tc := range cases {
		assert.Equal(t, tc.Expected, l.Rotate(radians(tc.Degrees)), "%v degrees", tc.Degrees)
	}
}

func TestLineRotateKeepsStart(t *testing.T) {
	l := Line{Pt(-1.5, 3), Pt(2, 0.25)}
	for _, angle := range []float64{0.1, math.Pi / 75, 1, math.Pi, 5} {
		r := l.Rotate(angle)
		assert.Equal(t, l.Start, r.Start)
		assert.InDelta(t, l.Length(), r.Length(), 1e-7)
	}
	assert.NotEqual(t, l.End, l.Rotate(1).End)
}

func TestLineSlope(t *testing.T) {
	s := Line{Pt(0, 1), Pt(2, 5)}.Slope()
	m, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, 2.0, m)
	assert.False(t, s.IsVertical())

	v := Line{Pt(3, 1), Pt(3, -4)}.Slope()
	assert.True(t, v.IsVertical())
	_, ok = v.Value()
	assert.False(t, ok)
	assert.True(t, math.IsInf(v.Float(), 1))
	assert.Equal(t, Vertical(), v)
	assert.Equal(t, "vertical", v.String())
}

func TestLineIntercept(t *testing.T) {
	b, ok := Line{Pt(1, 3), Pt(2, 5)}.Intercept()
	require.True(t, ok)
	assert.Equal(t, 1.0, b)

	_, ok = Line{Pt(1, 3), Pt(1, 5)}.Intercept()
	assert.False(t, ok)
}

func TestLineLength(t *testing.T) {
	assert.Equal(t, 5.0, Line{Pt(0, 0), Pt(3, 4)}.Length())
	assert.Equal(t, 0.0, Line{Pt(1, 1), Pt(1, 1)}.Length())
}

func TestLineString(t *testing.T) {
	l := mustLine(t, Scalar(1), Pt(3, 4))
	assert.Equal(t, "Line(Point(x=1, y=1), Point(x=3, y=4))", l.String())
}

func TestParseLineRoundTrip(t *testing.T) {
	lines := []Line{
		mustLine(t, Scalar(1), Pt(3, 4)),
		{Pt(-0.70710678, 1e-9), Pt(1.0/3, -2.5)},
		{Pt(2, 0), Pt(0, 2)},
	}
	for _, l := range lines {
		parsed, err := ParseLine(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, s := range []string{"", "Line(1, 2)", "Line(Point(x=a, y=1), Point(x=1, y=1))", "Point(x=1, y=1)"} {
		_, err := ParseLine(s)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%q", s)
	}
}
