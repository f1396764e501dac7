// Package geometry resolves mixed-unit, constraint-based box specifications
// into absolute pixel rectangles.
//
// The package is the numeric core of the toolkit: every call is a pure,
// synchronous transform over small value records. A BoxSpec arrives from the
// component layer, the parent's dimensions and the two scalar context values
// (theme base size, inherited size) arrive from the layout tree walk, and a
// resolved rectangle comes back. Nothing here touches shared mutable state,
// so any number of goroutines may resolve boxes concurrently.
//
// Content measurement is explicitly out of scope: a FitContent size resolves
// to a deferred marker, never a concrete length, and the caller is expected
// to run a follow-up measurement pass.
package geometry
