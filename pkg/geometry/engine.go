// File: pkg/geometry/engine.go
package geometry

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/facet/api/schemas"
)

// Engine resolves box specifications into absolute rectangles. It holds no
// mutable state, only the logger, so a single Engine may be shared freely
// across goroutines.
type Engine struct {
	logger *zap.Logger
}

// NewEngine returns an Engine. A nil logger disables warning output.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger.With(zap.String("component", "geometry"))}
}

// Resolution is the outcome of one CalculateBounds call. Rect is always
// renderable (finite, non-negative dimensions). DeferredWidth and
// DeferredHeight mark axes whose size came from a FitContent request and
// still needs a content measurement pass; the corresponding dimension is 0
// until that pass runs. Warnings record conditions recovered locally.
type Resolution struct {
	Rect           schemas.Rect
	DeferredWidth  bool
	DeferredHeight bool
	Warnings       []Warning
}

// axisInput gathers everything needed to resolve one axis independently.
type axisInput struct {
	name            string
	start, end      *Unit
	size            *Size
	minBound        *Unit
	maxBound        *Unit
	parentDimension float64
}

type axisResult struct {
	origin   float64
	length   float64
	deferred bool
	conflict bool
}

// CalculateBounds resolves spec against the parent dimensions and the two
// scalar context values. The call is pure and idempotent: identical inputs
// always produce an identical Resolution.
//
// The position mode of the spec does not alter the arithmetic here. For
// Relative specs the caller passes the parent's content-box dimensions; for
// Absolute specs it passes the full-box dimensions.
func (e *Engine) CalculateBounds(spec BoxSpec, parentWidth, parentHeight, baseSize, inheritedSize float64) (Resolution, error) {
	horizontal := axisInput{
		name:            "x",
		start:           spec.Left,
		end:             spec.Right,
		size:            spec.Width,
		minBound:        spec.MinWidth,
		maxBound:        spec.MaxWidth,
		parentDimension: parentWidth,
	}
	vertical := axisInput{
		name:            "y",
		start:           spec.Top,
		end:             spec.Bottom,
		size:            spec.Height,
		minBound:        spec.MinHeight,
		maxBound:        spec.MaxHeight,
		parentDimension: parentHeight,
	}

	h, err := e.resolveAxis(horizontal, baseSize, inheritedSize)
	if err != nil {
		return Resolution{}, fmt.Errorf("horizontal axis: %w", err)
	}
	v, err := e.resolveAxis(vertical, baseSize, inheritedSize)
	if err != nil {
		return Resolution{}, fmt.Errorf("vertical axis: %w", err)
	}

	res := Resolution{
		Rect: schemas.Rect{
			X:      h.origin,
			Y:      v.origin,
			Width:  h.length,
			Height: v.length,
		},
		DeferredWidth:  h.deferred,
		DeferredHeight: v.deferred,
	}
	if h.conflict {
		res.Warnings = append(res.Warnings, e.conflictWarning("width"))
	}
	if v.conflict {
		res.Warnings = append(res.Warnings, e.conflictWarning("height"))
	}
	return res, nil
}

func (e *Engine) conflictWarning(axis string) Warning {
	w := Warning{
		Code:    WarnConstraintConflict,
		Axis:    axis,
		Message: "minimum constraint exceeds maximum; minimum wins",
	}
	e.logger.Warn("Constraint conflict during layout resolution",
		zap.String("axis", axis))
	return w
}

// resolveAxis runs the per-axis algorithm: offsets, then size (explicit
// size first, edge-implied size as the fallback), then constraint clamping.
func (e *Engine) resolveAxis(in axisInput, baseSize, inheritedSize float64) (axisResult, error) {
	ctx := Context{
		ParentDimension: in.parentDimension,
		BaseSize:        baseSize,
		InheritedSize:   inheritedSize,
	}

	startOffset, err := resolveOffset(in.start, ctx)
	if err != nil {
		return axisResult{}, fmt.Errorf("start offset: %w", err)
	}
	endOffset, err := resolveOffset(in.end, ctx)
	if err != nil {
		return axisResult{}, fmt.Errorf("end offset: %w", err)
	}

	var (
		length   float64
		deferred bool
	)
	switch {
	case in.size != nil:
		// An explicit size always wins over edge-implied sizing; the
		// two are never combined.
		rs, err := resolveSize(*in.size, ctx, startOffset, endOffset)
		if err != nil {
			return axisResult{}, fmt.Errorf("size: %w", err)
		}
		length, deferred = rs.Value, rs.Deferred
	case in.start != nil || in.end != nil:
		// With both edges pinned the dimension is whatever remains
		// between them. A single edge extends to the parent's far edge,
		// which is the same formula with the missing offset at 0.
		length = in.parentDimension - startOffset - endOffset
		if length < 0 {
			length = 0
		}
	default:
		// Neither a size nor any edge: the dimension is zero.
		length = 0
	}

	minV, err := resolveConstraint(in.minBound, ctx, negInf)
	if err != nil {
		return axisResult{}, fmt.Errorf("min constraint: %w", err)
	}
	maxV, err := resolveConstraint(in.maxBound, ctx, posInf)
	if err != nil {
		return axisResult{}, fmt.Errorf("max constraint: %w", err)
	}

	length, conflict := clampLength(length, minV, maxV)

	return axisResult{
		origin:   startOffset,
		length:   length,
		deferred: deferred,
		conflict: conflict,
	}, nil
}

// resolveOffset resolves an optional edge offset, defaulting to 0. Offsets
// may be negative (a negative Em or Rem multiplier nudges an element
// outward), unlike sizes.
func resolveOffset(u *Unit, ctx Context) (float64, error) {
	if u == nil {
		return 0, nil
	}
	return u.Resolve(ctx)
}

// resolveConstraint resolves an optional min/max bound. A bound that lands
// negative is nonsensical for a size constraint and fails loudly.
func resolveConstraint(u *Unit, ctx Context, fallback float64) (float64, error) {
	v, err := resolveBound(u, ctx, fallback)
	if err != nil {
		return 0, err
	}
	if u != nil && v < 0 {
		return 0, fmt.Errorf("%w: constraint %s resolved to negative bound %g",
			ErrInvalidUnit, u, v)
	}
	return v, nil
}

// ResolveAll resolves many independent box specifications concurrently.
// Each spec is taken by value and resolved against the same parent and
// context, so the calls share no state. The first error cancels the batch.
func (e *Engine) ResolveAll(ctx context.Context, specs []BoxSpec, parentWidth, parentHeight, baseSize, inheritedSize float64) ([]Resolution, error) {
	results := make([]Resolution, len(specs))

	g, _ := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			res, err := e.CalculateBounds(spec, parentWidth, parentHeight, baseSize, inheritedSize)
			if err != nil {
				return fmt.Errorf("spec %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
