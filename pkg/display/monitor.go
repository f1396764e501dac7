// File: pkg/display/monitor.go
package display

import (
	"errors"
	"fmt"
	"math"

	"github.com/xkilldash9x/facet/api/schemas"
)

// ErrInvalidMonitor is returned when a monitor descriptor carries a
// nonsensical geometry: negative or non-finite resolution, a non-positive
// scale factor, or a non-finite position.
var ErrInvalidMonitor = errors.New("invalid monitor descriptor")

// Monitor is one physical display placed in virtual-space coordinates.
type Monitor struct {
	// ID is unique and stable across topology snapshots.
	ID   string
	Name string

	// Width and Height are the pixel resolution.
	Width  float64
	Height float64

	// X and Y position the monitor in virtual-space pixels.
	X float64
	Y float64

	// ScaleFactor converts between physical and logical pixels. Always
	// positive.
	ScaleFactor float64

	Primary     bool
	RefreshRate int
}

// Bounds returns the monitor's rectangle in virtual-space coordinates.
func (m Monitor) Bounds() schemas.Rect {
	return schemas.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// LocalBounds returns the monitor's rectangle with its own origin at (0,0),
// the shape it takes inside a separate (per-monitor) space.
func (m Monitor) LocalBounds() schemas.Rect {
	return schemas.Rect{Width: m.Width, Height: m.Height}
}

// ToLogical converts a physical-pixel point to logical pixels by dividing
// out the scale factor.
func (m Monitor) ToLogical(p schemas.Point) schemas.Point {
	return schemas.Point{X: p.X / m.ScaleFactor, Y: p.Y / m.ScaleFactor}
}

// ToPhysical converts a logical-pixel point back to physical pixels.
func (m Monitor) ToPhysical(p schemas.Point) schemas.Point {
	return schemas.Point{X: p.X * m.ScaleFactor, Y: p.Y * m.ScaleFactor}
}

func (m Monitor) validate() error {
	for _, ref := range []struct {
		name string
		v    float64
	}{
		{"width", m.Width},
		{"height", m.Height},
		{"x", m.X},
		{"y", m.Y},
		{"scale factor", m.ScaleFactor},
	} {
		if math.IsNaN(ref.v) || math.IsInf(ref.v, 0) {
			return fmt.Errorf("%w: %s of %q is not finite", ErrInvalidMonitor, ref.name, m.ID)
		}
	}
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("%w: %q has negative resolution %gx%g",
			ErrInvalidMonitor, m.ID, m.Width, m.Height)
	}
	if m.ScaleFactor <= 0 {
		return fmt.Errorf("%w: %q has non-positive scale factor %g",
			ErrInvalidMonitor, m.ID, m.ScaleFactor)
	}
	return nil
}

// MonitorFromSchema converts a wire descriptor into a Monitor. A zero scale
// factor is treated as the common default of 1.0; everything else is
// validated strictly.
func MonitorFromSchema(d schemas.MonitorDescriptor) (Monitor, error) {
	m := Monitor{
		ID:          d.ID,
		Name:        d.Name,
		Width:       d.Width,
		Height:      d.Height,
		X:           d.X,
		Y:           d.Y,
		ScaleFactor: d.ScaleFactor,
		Primary:     d.Primary,
		RefreshRate: d.RefreshRate,
	}
	if m.ScaleFactor == 0 {
		m.ScaleFactor = 1.0
	}
	if err := m.validate(); err != nil {
		return Monitor{}, err
	}
	return m, nil
}
