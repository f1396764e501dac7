// File: pkg/display/registry.go
package display

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/facet/api/schemas"
)

// Registry owns the long-lived display state. Every topology change
// (monitor plug/unplug, resolution change) produces a freshly composed
// VirtualSpace that is published with a single atomic pointer swap, so
// concurrent readers always observe either the old snapshot or the new one,
// never a half-updated registry. The registry itself is the only writer.
type Registry struct {
	logger  *zap.Logger
	current atomic.Pointer[VirtualSpace]
}

// NewRegistry returns an empty Registry. A nil logger disables warnings.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger.With(zap.String("component", "display"))}
}

// Update converts a topology snapshot, composes it, and publishes the
// result. On error the previous snapshot stays in place untouched.
func (r *Registry) Update(topology schemas.MonitorTopology) (*VirtualSpace, error) {
	cfg, err := r.configFromTopology(topology)
	if err != nil {
		return nil, fmt.Errorf("registering monitor topology: %w", err)
	}

	vs, err := Compose(cfg)
	if err != nil {
		return nil, fmt.Errorf("composing virtual space: %w", err)
	}

	r.current.Store(vs)
	r.logger.Info("Published display topology",
		zap.String("mode", cfg.Mode.String()),
		zap.Int("monitors", len(cfg.Monitors)),
		zap.Int("spaces", len(vs.Spaces)))
	return vs, nil
}

// Current returns the last published snapshot, or nil when no topology has
// been registered yet. The returned value is immutable.
func (r *Registry) Current() *VirtualSpace {
	return r.current.Load()
}

// Locate maps a point against the current snapshot.
func (r *Registry) Locate(p schemas.Point) (Location, bool) {
	vs := r.current.Load()
	if vs == nil {
		return Location{}, false
	}
	return vs.Locate(p)
}

// configFromTopology builds a validated Config from the wire form,
// assigning ids to monitors that arrived without one.
func (r *Registry) configFromTopology(t schemas.MonitorTopology) (Config, error) {
	mode, err := modeFromSchema(t.Mode)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Mode: mode}
	for _, d := range t.Monitors {
		m, err := MonitorFromSchema(d)
		if err != nil {
			return Config{}, err
		}
		if m.ID == "" {
			m.ID = uuid.New().String()
			r.logger.Debug("Assigned monitor id",
				zap.String("name", m.Name),
				zap.String("id", m.ID))
		}
		cfg.Monitors = append(cfg.Monitors, m)
	}
	for _, g := range t.Groups {
		cfg.Groups = append(cfg.Groups, Group{Name: g.Name, Monitors: g.Monitors})
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	// Primary uniqueness is a registration concern. The locator tie-break
	// stays deterministic either way, so this only warns.
	if n := cfg.PrimaryCount(); n > 1 {
		r.logger.Warn("Multiple monitors flagged primary",
			zap.Int("count", n))
	}
	return cfg, nil
}
