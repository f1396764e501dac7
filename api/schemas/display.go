// File: api/schemas/display.go
package schemas

// -- Display Topology Schemas --
//
// Wire representation of a monitor topology. Platform detection (or a user
// supplied file) produces one of these per topology change; the display
// package converts it into an immutable composition snapshot.

// CompositionMode selects how physical monitors are merged into virtual
// coordinate spaces.
type CompositionMode string

const (
	// CompositionUnified merges every monitor into a single shared space.
	CompositionUnified CompositionMode = "unified"
	// CompositionSeparate gives each monitor its own local space with
	// origin (0, 0).
	CompositionSeparate CompositionMode = "separate"
	// CompositionMixed merges explicit groups of monitors; ungrouped
	// monitors behave as separate singleton spaces.
	CompositionMixed CompositionMode = "mixed"
)

// MonitorDescriptor describes one physical display.
type MonitorDescriptor struct {
	// ID is a stable, unique identifier. Leave empty to have the registry
	// assign one.
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ScaleFactor float64 `json:"scale_factor"`
	Primary     bool    `json:"primary"`
	RefreshRate int     `json:"refresh_rate,omitempty"`
}

// MonitorGroup names a set of monitors composed into one shared space under
// CompositionMixed.
type MonitorGroup struct {
	Name     string   `json:"name"`
	Monitors []string `json:"monitors"`
}

// MonitorTopology is the full topology snapshot: every attached monitor
// plus the requested composition mode.
type MonitorTopology struct {
	Mode     CompositionMode     `json:"mode"`
	Monitors []MonitorDescriptor `json:"monitors"`
	// Groups is only consulted when Mode is CompositionMixed.
	Groups []MonitorGroup `json:"groups,omitempty"`
}
