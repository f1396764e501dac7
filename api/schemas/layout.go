// File: api/schemas/layout.go
package schemas

// -- Layout Schemas --
//
// Wire representation of a box specification as it appears in themes and
// component definitions. The geometry package converts these into its
// internal tagged types before resolution.

// LengthUnit names the basis a scalar length is expressed in.
type LengthUnit string

const (
	// UnitPixels is an absolute length in pixels.
	UnitPixels LengthUnit = "px"
	// UnitEm is a multiplier of the theme-wide base size.
	UnitEm LengthUnit = "em"
	// UnitRem is a multiplier of the size inherited from an ancestor
	// context.
	UnitRem LengthUnit = "rem"
	// UnitPercent is a 0-100 fraction of the parent's corresponding
	// dimension.
	UnitPercent LengthUnit = "percent"
)

// Length is a scalar with a unit attached.
type Length struct {
	Value float64    `json:"value"`
	Unit  LengthUnit `json:"unit"`
}

// SizeMode names how a dimension is determined.
type SizeMode string

const (
	// SizeFixed resolves a Length against the available space.
	SizeFixed SizeMode = "fixed"
	// SizeFill consumes the remaining space along the axis.
	SizeFill SizeMode = "fill"
	// SizeFitContent defers to a later content measurement pass.
	SizeFitContent SizeMode = "fit_content"
)

// SizeSpec is a dimension request: a mode plus, for SizeFixed, a length.
type SizeSpec struct {
	Mode   SizeMode `json:"mode"`
	Length *Length  `json:"length,omitempty"`
}

// PositionMode selects which parent box the edge offsets are measured
// against.
type PositionMode string

const (
	// PositionRelative measures offsets from the parent's content box.
	PositionRelative PositionMode = "relative"
	// PositionAbsolute measures offsets from the parent's full box,
	// ignoring the parent's own padding.
	PositionAbsolute PositionMode = "absolute"
)

// BoxSpec is the complete positioning, sizing, and constraint description
// attached to one visual element. Absent fields are nil.
type BoxSpec struct {
	Left   *Length `json:"left,omitempty"`
	Right  *Length `json:"right,omitempty"`
	Top    *Length `json:"top,omitempty"`
	Bottom *Length `json:"bottom,omitempty"`

	Width  *SizeSpec `json:"width,omitempty"`
	Height *SizeSpec `json:"height,omitempty"`

	MinWidth  *Length `json:"min_width,omitempty"`
	MaxWidth  *Length `json:"max_width,omitempty"`
	MinHeight *Length `json:"min_height,omitempty"`
	MaxHeight *Length `json:"max_height,omitempty"`

	Position PositionMode `json:"position,omitempty"`
}
