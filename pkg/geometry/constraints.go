// File: pkg/geometry/constraints.go
package geometry

import (
	"fmt"
	"math"
)

// Warning codes surfaced on a Resolution. Warnings describe conditions that
// were recovered locally: layout must always produce a renderable
// rectangle, so inconsistent constraints degrade instead of failing.
const (
	// WarnConstraintConflict reports a minimum bound larger than the
	// maximum bound. The minimum wins and the maximum is ignored.
	WarnConstraintConflict = "constraint_conflict"
)

// Warning records a recovered layout anomaly.
type Warning struct {
	Code    string
	Axis    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s[%s]: %s", w.Code, w.Axis, w.Message)
}

// clampLength applies a two-sided clamp. Absent bounds arrive as -Inf/+Inf.
// When minV > maxV the minimum wins, the inconsistent maximum is ignored,
// and conflict is reported so the caller can surface it.
func clampLength(v, minV, maxV float64) (result float64, conflict bool) {
	if minV > maxV {
		if v < minV {
			v = minV
		}
		return v, true
	}
	if v < minV {
		v = minV
	}
	if v > maxV {
		v = maxV
	}
	return v, false
}

// resolveBound resolves an optional constraint bound, substituting fallback
// when the bound is absent.
func resolveBound(u *Unit, ctx Context, fallback float64) (float64, error) {
	if u == nil {
		return fallback, nil
	}
	v, err := u.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	return v, nil
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
