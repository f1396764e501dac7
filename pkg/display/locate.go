// File: pkg/display/locate.go
package display

import (
	"github.com/xkilldash9x/facet/api/schemas"
)

// Location identifies which monitor (and which composed space) owns a
// point.
type Location struct {
	MonitorID string
	Space     string
}

// Locate maps a point in this space's coordinates to the monitor that
// contains it. Containment is half-open: the top/left edge belongs to a
// monitor, the bottom/right edge does not, so adjacent monitors never
// both own a shared border.
//
// Overlapping monitors are a misconfiguration; the tie-break is
// deterministic: a primary monitor wins, then the lowest id. A point
// inside the space's aggregate bounds but in a gap between monitors is not
// located anywhere.
func (s Space) Locate(p schemas.Point) (string, bool) {
	var (
		best  SpaceMonitor
		found bool
	)
	for _, sm := range s.Monitors {
		if !sm.Frame.Contains(p) {
			continue
		}
		if !found || preferMonitor(sm, best) {
			best = sm
			found = true
		}
	}
	if !found {
		return "", false
	}
	return best.ID, true
}

// Locate searches every composed space in order and returns the first
// containing monitor. Under Unified there is a single space and the result
// is unambiguous; under Separate or Mixed, space-local coordinates can
// legitimately repeat, so callers that know the target space should query
// it directly via Space.
func (v *VirtualSpace) Locate(p schemas.Point) (Location, bool) {
	for _, s := range v.Spaces {
		if id, ok := s.Locate(p); ok {
			return Location{MonitorID: id, Space: s.Name}, true
		}
	}
	return Location{}, false
}

// preferMonitor reports whether a should be chosen over b when both
// contain the queried point: primary first, then lowest id.
func preferMonitor(a, b SpaceMonitor) bool {
	if a.Primary != b.Primary {
		return a.Primary
	}
	return a.ID < b.ID
}
