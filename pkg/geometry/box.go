// File: pkg/geometry/box.go
package geometry

import (
	"github.com/xkilldash9x/facet/api/schemas"
)

// PositionMode selects which parent box the edge offsets are measured
// against. It does not change any arithmetic in this package; the caller
// decides whether the parent dimensions it supplies are the content box
// (Relative) or the full box (Absolute).
type PositionMode uint8

const (
	// Relative measures offsets from the parent's content box.
	Relative PositionMode = iota
	// Absolute measures offsets from the parent's full box, ignoring the
	// parent's own padding.
	Absolute
)

func (m PositionMode) String() string {
	if m == Absolute {
		return "absolute"
	}
	return "relative"
}

// BoxSpec is the complete positioning, sizing, and constraint description
// for one visual element. Nil fields are absent. A BoxSpec is immutable
// input to a single resolution call and carries no resolved state.
type BoxSpec struct {
	Left   *Unit
	Right  *Unit
	Top    *Unit
	Bottom *Unit

	Width  *Size
	Height *Size

	MinWidth  *Unit
	MaxWidth  *Unit
	MinHeight *Unit
	MaxHeight *Unit

	Position PositionMode
}

// BoxSpecFromSchema converts the wire form of a box specification into the
// resolver's representation.
func BoxSpecFromSchema(s schemas.BoxSpec) (BoxSpec, error) {
	var (
		spec BoxSpec
		err  error
	)

	convertUnit := func(l *schemas.Length) (*Unit, error) {
		if l == nil {
			return nil, nil
		}
		u, err := UnitFromSchema(*l)
		if err != nil {
			return nil, err
		}
		return &u, nil
	}
	convertSize := func(z *schemas.SizeSpec) (*Size, error) {
		if z == nil {
			return nil, nil
		}
		sz, err := SizeFromSchema(*z)
		if err != nil {
			return nil, err
		}
		return &sz, nil
	}

	if spec.Left, err = convertUnit(s.Left); err != nil {
		return BoxSpec{}, err
	}
	if spec.Right, err = convertUnit(s.Right); err != nil {
		return BoxSpec{}, err
	}
	if spec.Top, err = convertUnit(s.Top); err != nil {
		return BoxSpec{}, err
	}
	if spec.Bottom, err = convertUnit(s.Bottom); err != nil {
		return BoxSpec{}, err
	}
	if spec.Width, err = convertSize(s.Width); err != nil {
		return BoxSpec{}, err
	}
	if spec.Height, err = convertSize(s.Height); err != nil {
		return BoxSpec{}, err
	}
	if spec.MinWidth, err = convertUnit(s.MinWidth); err != nil {
		return BoxSpec{}, err
	}
	if spec.MaxWidth, err = convertUnit(s.MaxWidth); err != nil {
		return BoxSpec{}, err
	}
	if spec.MinHeight, err = convertUnit(s.MinHeight); err != nil {
		return BoxSpec{}, err
	}
	if spec.MaxHeight, err = convertUnit(s.MaxHeight); err != nil {
		return BoxSpec{}, err
	}

	if s.Position == schemas.PositionAbsolute {
		spec.Position = Absolute
	}
	return spec, nil
}
