// File: pkg/geometry/unit.go
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/xkilldash9x/facet/api/schemas"
)

// ErrInvalidUnit is returned when a unit scalar or a resolution context
// value is non-finite, or negative where a negative value has no meaning.
var ErrInvalidUnit = errors.New("invalid unit")

// UnitKind identifies the basis a scalar length is expressed in.
type UnitKind uint8

const (
	// Pixels is an absolute length.
	Pixels UnitKind = iota
	// Em is a multiplier of the theme-wide base size.
	Em
	// Rem is a multiplier of the size inherited from an ancestor context.
	Rem
	// Percent is a 0-100 fraction of the parent's corresponding dimension.
	Percent
)

func (k UnitKind) String() string {
	switch k {
	case Pixels:
		return "px"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Percent:
		return "percent"
	default:
		return fmt.Sprintf("unit(%d)", uint8(k))
	}
}

// Unit is a scalar length with a kind attached. Exactly one kind is active.
type Unit struct {
	Value float64
	Kind  UnitKind
}

// Px returns an absolute pixel length.
func Px(v float64) Unit { return Unit{Value: v, Kind: Pixels} }

// EmUnit returns a multiplier of the theme base size.
func EmUnit(v float64) Unit { return Unit{Value: v, Kind: Em} }

// RemUnit returns a multiplier of the inherited size.
func RemUnit(v float64) Unit { return Unit{Value: v, Kind: Rem} }

// Pct returns a percentage (0-100 scale) of the parent dimension.
func Pct(v float64) Unit { return Unit{Value: v, Kind: Percent} }

func (u Unit) String() string {
	return fmt.Sprintf("%g%s", u.Value, u.Kind)
}

// Context carries the three reference values a unit may resolve against.
// All values are pixels and must be finite and non-negative.
type Context struct {
	// ParentDimension is the parent's length along the axis being
	// resolved.
	ParentDimension float64
	// BaseSize is the theme-wide reference length used by Em units.
	BaseSize float64
	// InheritedSize is the ancestor-provided reference length used by Rem
	// units.
	InheritedSize float64
}

func (c Context) validate() error {
	for _, ref := range []struct {
		name string
		v    float64
	}{
		{"parent dimension", c.ParentDimension},
		{"base size", c.BaseSize},
		{"inherited size", c.InheritedSize},
	} {
		if math.IsNaN(ref.v) || math.IsInf(ref.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidUnit, ref.name)
		}
		if ref.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidUnit, ref.name, ref.v)
		}
	}
	return nil
}

// Resolve converts the unit to pixels within the given context.
//
// Pixels and Percent scalars must be non-negative; Em and Rem multipliers
// may be negative because they are also used to express offsets. Callers
// that require a non-negative *size* must check the result themselves (the
// size resolver does).
func (u Unit) Resolve(ctx Context) (float64, error) {
	if math.IsNaN(u.Value) || math.IsInf(u.Value, 0) {
		return 0, fmt.Errorf("%w: %s scalar is not finite", ErrInvalidUnit, u.Kind)
	}
	if err := ctx.validate(); err != nil {
		return 0, err
	}

	switch u.Kind {
	case Pixels:
		if u.Value < 0 {
			return 0, fmt.Errorf("%w: negative pixel length %g", ErrInvalidUnit, u.Value)
		}
		return u.Value, nil
	case Em:
		return u.Value * ctx.BaseSize, nil
	case Rem:
		return u.Value * ctx.InheritedSize, nil
	case Percent:
		if u.Value < 0 {
			return 0, fmt.Errorf("%w: negative percentage %g", ErrInvalidUnit, u.Value)
		}
		return u.Value / 100.0 * ctx.ParentDimension, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit kind %d", ErrInvalidUnit, u.Kind)
	}
}

// UnitFromSchema converts a wire-form length into a Unit.
func UnitFromSchema(l schemas.Length) (Unit, error) {
	switch l.Unit {
	case schemas.UnitPixels:
		return Px(l.Value), nil
	case schemas.UnitEm:
		return EmUnit(l.Value), nil
	case schemas.UnitRem:
		return RemUnit(l.Value), nil
	case schemas.UnitPercent:
		return Pct(l.Value), nil
	default:
		return Unit{}, fmt.Errorf("%w: unknown unit %q", ErrInvalidUnit, l.Unit)
	}
}
