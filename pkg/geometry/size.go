// File: pkg/geometry/size.go
package geometry

import (
	"fmt"

	"github.com/xkilldash9x/facet/api/schemas"
)

// SizeMode names how a dimension is determined.
type SizeMode uint8

const (
	// Fixed resolves an attached Unit against the parent dimension.
	Fixed SizeMode = iota
	// Fill consumes the space remaining after the edge offsets.
	Fill
	// FitContent defers the dimension to a later content measurement
	// pass. The resolver never produces a concrete length for it.
	FitContent
)

func (m SizeMode) String() string {
	switch m {
	case Fixed:
		return "fixed"
	case Fill:
		return "fill"
	case FitContent:
		return "fit_content"
	default:
		return fmt.Sprintf("size_mode(%d)", uint8(m))
	}
}

// Size is a dimension request: a mode plus, for Fixed, a length.
type Size struct {
	Mode   SizeMode
	Length Unit
}

// FixedSize returns a Size that resolves the given unit.
func FixedSize(u Unit) Size { return Size{Mode: Fixed, Length: u} }

// FillSize returns a Size that consumes the remaining space on its axis.
func FillSize() Size { return Size{Mode: Fill} }

// FitContentSize returns a Size deferred to content measurement.
func FitContentSize() Size { return Size{Mode: FitContent} }

// ResolvedSize is the outcome of resolving a Size. Deferred distinguishes
// "not yet known" from "definitely zero": a FitContent request sets it and
// leaves Value at 0 for callers that cannot tolerate an unknown.
type ResolvedSize struct {
	Value    float64
	Deferred bool
}

// resolveSize converts a size request to pixels. startOffset and endOffset
// are the already-resolved edge offsets for the axis; they only participate
// in Fill. A Fixed size that resolves negative (a negative Em or Rem
// multiplier) is a hard error rather than a silently clamped length.
func resolveSize(s Size, ctx Context, startOffset, endOffset float64) (ResolvedSize, error) {
	switch s.Mode {
	case Fixed:
		v, err := s.Length.Resolve(ctx)
		if err != nil {
			return ResolvedSize{}, err
		}
		if v < 0 {
			return ResolvedSize{}, fmt.Errorf("%w: %s resolved to negative size %g",
				ErrInvalidUnit, s.Length, v)
		}
		return ResolvedSize{Value: v}, nil
	case Fill:
		v := ctx.ParentDimension - startOffset - endOffset
		if v < 0 {
			v = 0
		}
		return ResolvedSize{Value: v}, nil
	case FitContent:
		return ResolvedSize{Deferred: true}, nil
	default:
		return ResolvedSize{}, fmt.Errorf("%w: unknown size mode %d", ErrInvalidUnit, s.Mode)
	}
}

// SizeFromSchema converts a wire-form size spec into a Size.
func SizeFromSchema(s schemas.SizeSpec) (Size, error) {
	switch s.Mode {
	case schemas.SizeFixed:
		if s.Length == nil {
			return Size{}, fmt.Errorf("%w: fixed size missing length", ErrInvalidUnit)
		}
		u, err := UnitFromSchema(*s.Length)
		if err != nil {
			return Size{}, err
		}
		return FixedSize(u), nil
	case schemas.SizeFill:
		return FillSize(), nil
	case schemas.SizeFitContent:
		return FitContentSize(), nil
	default:
		return Size{}, fmt.Errorf("%w: unknown size mode %q", ErrInvalidUnit, s.Mode)
	}
}
