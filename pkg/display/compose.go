// File: pkg/display/compose.go
package display

import (
	"fmt"

	"github.com/xkilldash9x/facet/api/schemas"
)

// SpaceMonitor is a monitor placed inside one composed space. Frame is the
// monitor's rectangle in that space's own coordinates: the virtual-space
// rectangle inside a unified space, the local rectangle inside a separate
// singleton space.
type SpaceMonitor struct {
	Monitor
	Frame schemas.Rect
}

// Space is one addressable coordinate space: a unified span of several
// monitors, or a single monitor with a local origin.
type Space struct {
	// Name identifies the space: the group name for an explicit group,
	// the monitor id for a singleton, "unified" for the global space.
	Name string
	// Bounds is the aggregate bounding rectangle of the space.
	Bounds schemas.Rect
	// Monitors are individually queryable within the space.
	Monitors []SpaceMonitor
}

// VirtualSpace is the composed, immutable result of one topology snapshot.
// It is never mutated after Compose returns; a topology change produces a
// fresh VirtualSpace.
type VirtualSpace struct {
	Mode   Mode
	Spaces []Space
}

const unifiedSpaceName = "unified"

// Compose merges the configuration's monitors into virtual spaces
// according to its composition mode.
func Compose(cfg Config) (*VirtualSpace, error) {
	if len(cfg.Monitors) == 0 {
		return nil, ErrEmptyRegistry
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vs := &VirtualSpace{Mode: cfg.Mode}

	switch cfg.Mode {
	case Unified:
		vs.Spaces = []Space{unifiedSpace(unifiedSpaceName, cfg.Monitors)}

	case Separate:
		for _, m := range cfg.Monitors {
			vs.Spaces = append(vs.Spaces, singletonSpace(m))
		}

	case Mixed:
		grouped := make(map[string]struct{})
		for _, g := range cfg.Groups {
			members := make([]Monitor, 0, len(g.Monitors))
			for _, id := range g.Monitors {
				m, ok := cfg.monitorByID(id)
				if !ok {
					// Validate already rejected this; guard anyway.
					return nil, fmt.Errorf("%w: group %q references %q", ErrUnknownMonitor, g.Name, id)
				}
				members = append(members, m)
				grouped[id] = struct{}{}
			}
			if len(members) == 0 {
				continue
			}
			vs.Spaces = append(vs.Spaces, unifiedSpace(g.Name, members))
		}
		for _, m := range cfg.Monitors {
			if _, ok := grouped[m.ID]; !ok {
				vs.Spaces = append(vs.Spaces, singletonSpace(m))
			}
		}

	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrInvalidTopology, cfg.Mode)
	}

	return vs, nil
}

// unifiedSpace spans the given monitors in shared virtual coordinates. Each
// monitor stays individually queryable at its own position.
func unifiedSpace(name string, monitors []Monitor) Space {
	bounds := monitors[0].Bounds()
	placed := make([]SpaceMonitor, 0, len(monitors))
	for _, m := range monitors {
		frame := m.Bounds()
		bounds = bounds.Union(frame)
		placed = append(placed, SpaceMonitor{Monitor: m, Frame: frame})
	}
	return Space{Name: name, Bounds: bounds, Monitors: placed}
}

// singletonSpace hosts one monitor with a local (0,0) origin.
func singletonSpace(m Monitor) Space {
	frame := m.LocalBounds()
	return Space{
		Name:     m.ID,
		Bounds:   frame,
		Monitors: []SpaceMonitor{{Monitor: m, Frame: frame}},
	}
}

// Bounds returns the union of all space bounds: the aggregate rectangle a
// window manager clamps movement against.
func (v *VirtualSpace) Bounds() schemas.Rect {
	var bounds schemas.Rect
	for _, s := range v.Spaces {
		bounds = bounds.Union(s.Bounds)
	}
	return bounds
}

// Space returns the named space.
func (v *VirtualSpace) Space(name string) (Space, bool) {
	for _, s := range v.Spaces {
		if s.Name == name {
			return s, true
		}
	}
	return Space{}, false
}

// MonitorByID returns the monitor with the given id, searching all spaces.
func (v *VirtualSpace) MonitorByID(id string) (Monitor, bool) {
	for _, s := range v.Spaces {
		for _, sm := range s.Monitors {
			if sm.ID == id {
				return sm.Monitor, true
			}
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor. When registration let several
// monitors claim primary, the first in composition order wins; when none
// did, the first monitor overall is returned.
func (v *VirtualSpace) Primary() (Monitor, bool) {
	var first *Monitor
	for _, s := range v.Spaces {
		for _, sm := range s.Monitors {
			if sm.Primary {
				return sm.Monitor, true
			}
			if first == nil {
				m := sm.Monitor
				first = &m
			}
		}
	}
	if first != nil {
		return *first, true
	}
	return Monitor{}, false
}
