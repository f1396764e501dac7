package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/facet/api/schemas"
)

func TestRectContains(t *testing.T) {
	t.Parallel()
	r := schemas.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	testCases := []struct {
		name  string
		point schemas.Point
		want  bool
	}{
		{name: "interior", point: schemas.Point{X: 50, Y: 40}, want: true},
		{name: "top-left corner is inclusive", point: schemas.Point{X: 10, Y: 20}, want: true},
		{name: "right edge is exclusive", point: schemas.Point{X: 110, Y: 40}, want: false},
		{name: "bottom edge is exclusive", point: schemas.Point{X: 50, Y: 70}, want: false},
		{name: "just inside far corner", point: schemas.Point{X: 109.999, Y: 69.999}, want: true},
		{name: "left of rect", point: schemas.Point{X: 9, Y: 40}, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, r.Contains(tc.point))
		})
	}
}

func TestRectIntersect(t *testing.T) {
	t.Parallel()

	a := schemas.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	t.Run("partial overlap", func(t *testing.T) {
		t.Parallel()
		b := schemas.Rect{X: 50, Y: 50, Width: 100, Height: 100}
		assert.Equal(t, schemas.Rect{X: 50, Y: 50, Width: 50, Height: 50}, a.Intersect(b))
		assert.True(t, a.Intersects(b))
	})

	t.Run("touching edges do not overlap", func(t *testing.T) {
		t.Parallel()
		b := schemas.Rect{X: 100, Y: 0, Width: 100, Height: 100}
		assert.Equal(t, schemas.Rect{}, a.Intersect(b))
		assert.False(t, a.Intersects(b))
	})

	t.Run("disjoint", func(t *testing.T) {
		t.Parallel()
		b := schemas.Rect{X: 500, Y: 500, Width: 10, Height: 10}
		assert.False(t, a.Intersects(b))
	})
}

func TestRectUnion(t *testing.T) {
	t.Parallel()

	a := schemas.Rect{X: 0, Y: 0, Width: 2560, Height: 1440}
	b := schemas.Rect{X: 2560, Y: 0, Width: 1920, Height: 1080}

	assert.Equal(t, schemas.Rect{X: 0, Y: 0, Width: 4480, Height: 1440}, a.Union(b))

	// Empty rectangles contribute nothing.
	assert.Equal(t, a, a.Union(schemas.Rect{}))
	assert.Equal(t, a, schemas.Rect{}.Union(a))
}

func TestRectExpandedBy(t *testing.T) {
	t.Parallel()

	r := schemas.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	e := schemas.Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}

	assert.Equal(t, schemas.Rect{X: 6, Y: 9, Width: 106, Height: 104}, r.ExpandedBy(e))
	assert.Equal(t, 6.0, e.Horizontal())
	assert.Equal(t, 4.0, e.Vertical())
}

func TestRectTranslate(t *testing.T) {
	t.Parallel()

	r := schemas.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, schemas.Rect{X: 15, Y: 15, Width: 30, Height: 40}, r.Translate(5, -5))
}

func TestRectClampPoint(t *testing.T) {
	t.Parallel()

	r := schemas.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	t.Run("interior point is unchanged", func(t *testing.T) {
		t.Parallel()
		p := schemas.Point{X: 50, Y: 50}
		assert.Equal(t, p, r.ClampPoint(p))
	})

	t.Run("clamped point is always contained", func(t *testing.T) {
		t.Parallel()
		for _, p := range []schemas.Point{
			{X: -10, Y: -10},
			{X: 500, Y: 50},
			{X: 100, Y: 100},
			{X: 50, Y: 1e9},
		} {
			clamped := r.ClampPoint(p)
			assert.True(t, r.Contains(clamped), "clamping %+v produced %+v outside the rect", p, clamped)
		}
	})
}
