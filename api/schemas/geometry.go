// File: api/schemas/geometry.go
package schemas

import "math"

// -- Geometry Primitives --
//
// These value types are shared by the layout engine, the display composer,
// and the CLI wire formats. All coordinates are in pixels; all types are
// plain values that are safe to copy and compare.

// Point represents an (X, Y) coordinate in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edges holds per-side lengths in pixels, in CSS order.
type Edges struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Horizontal returns the combined left and right edge lengths.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the combined top and bottom edge lengths.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// Rect is an axis-aligned rectangle. X and Y locate the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies inside the rectangle.
// The top and left edges are inclusive; the bottom and right edges are
// exclusive, so adjacent rectangles never both claim a shared border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ExpandedBy returns a new rectangle grown outward by the edge sizes.
// Negative edges shrink the rectangle.
func (r Rect) ExpandedBy(e Edges) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Translate returns a new rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of two rectangles, or the zero Rect when
// they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects reports whether the two rectangles overlap. Touching edges do
// not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle containing both rectangles. An empty
// rectangle contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// ClampPoint constrains a point to the rectangle. Window managers use this
// to keep a window origin inside the composed desktop bounds.
func (r Rect) ClampPoint(p Point) Point {
	if r.IsEmpty() {
		return Point{X: r.X, Y: r.Y}
	}
	if p.X < r.X {
		p.X = r.X
	} else if p.X >= r.Right() {
		p.X = math.Nextafter(r.Right(), r.X)
	}
	if p.Y < r.Y {
		p.Y = r.Y
	} else if p.Y >= r.Bottom() {
		p.Y = math.Nextafter(r.Bottom(), r.Y)
	}
	return p
}
