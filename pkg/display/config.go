// File: pkg/display/config.go
package display

import (
	"errors"
	"fmt"

	"github.com/xkilldash9x/facet/api/schemas"
)

var (
	// ErrEmptyRegistry is returned when a virtual space is requested from
	// a configuration with no monitors.
	ErrEmptyRegistry = errors.New("monitor registry is empty")

	// ErrUnknownMonitor is returned when a group references a monitor id
	// that is not present in the configuration. The error is fatal to the
	// composition call: silently dropping a monitor would silently shrink
	// the usable desktop.
	ErrUnknownMonitor = errors.New("unknown monitor id")

	// ErrInvalidTopology is returned when the configuration itself is
	// inconsistent: duplicate monitor ids, or a monitor claimed by more
	// than one group.
	ErrInvalidTopology = errors.New("invalid monitor topology")
)

// Mode selects how monitors are merged into virtual spaces.
type Mode uint8

const (
	// Unified merges every monitor into a single shared coordinate space.
	Unified Mode = iota
	// Separate gives each monitor its own space with a local (0,0) origin.
	Separate
	// Mixed composes explicit groups as unified sub-spaces and leaves
	// ungrouped monitors as separate singletons.
	Mixed
)

func (m Mode) String() string {
	switch m {
	case Unified:
		return "unified"
	case Separate:
		return "separate"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Group names a set of monitor ids composed into one shared space under
// Mixed mode.
type Group struct {
	Name     string
	Monitors []string
}

// Config is an immutable topology snapshot handed to Compose. The monitor
// order is preserved; it drives the deterministic ordering of composed
// spaces.
type Config struct {
	Mode     Mode
	Monitors []Monitor
	Groups   []Group
}

// Validate checks the structural invariants: at least implicit consistency
// of ids, every group reference resolvable, and no monitor claimed twice.
// An empty configuration is legal here; composition is where emptiness
// becomes fatal.
func (c Config) Validate() error {
	byID := make(map[string]struct{}, len(c.Monitors))
	for _, m := range c.Monitors {
		if err := m.validate(); err != nil {
			return err
		}
		if _, dup := byID[m.ID]; dup {
			return fmt.Errorf("%w: duplicate monitor id %q", ErrInvalidTopology, m.ID)
		}
		byID[m.ID] = struct{}{}
	}

	grouped := make(map[string]string)
	for _, g := range c.Groups {
		for _, id := range g.Monitors {
			if _, ok := byID[id]; !ok {
				return fmt.Errorf("%w: group %q references %q", ErrUnknownMonitor, g.Name, id)
			}
			if owner, claimed := grouped[id]; claimed {
				return fmt.Errorf("%w: monitor %q is in groups %q and %q",
					ErrInvalidTopology, id, owner, g.Name)
			}
			grouped[id] = g.Name
		}
	}
	return nil
}

// PrimaryCount returns how many monitors are flagged primary. Registration
// is expected to keep this at one; the locator stays deterministic even
// when it is not.
func (c Config) PrimaryCount() int {
	n := 0
	for _, m := range c.Monitors {
		if m.Primary {
			n++
		}
	}
	return n
}

func (c Config) monitorByID(id string) (Monitor, bool) {
	for _, m := range c.Monitors {
		if m.ID == id {
			return m, true
		}
	}
	return Monitor{}, false
}

func modeFromSchema(m schemas.CompositionMode) (Mode, error) {
	switch m {
	case schemas.CompositionUnified, "":
		return Unified, nil
	case schemas.CompositionSeparate:
		return Separate, nil
	case schemas.CompositionMixed:
		return Mixed, nil
	default:
		return Unified, fmt.Errorf("%w: unknown composition mode %q", ErrInvalidTopology, m)
	}
}
