// File: pkg/display/locate_test.go
package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/facet/api/schemas"
	"github.com/xkilldash9x/facet/pkg/display"
)

func TestLocateUnified(t *testing.T) {
	t.Parallel()

	vs, err := display.Compose(twoMonitorConfig(display.Unified))
	require.NoError(t, err)

	testCases := []struct {
		name      string
		point     schemas.Point
		wantID    string
		wantFound bool
	}{
		{
			name:      "inside the primary",
			point:     schemas.Point{X: 100, Y: 100},
			wantID:    "monitor-a",
			wantFound: true,
		},
		{
			name:      "inside the secondary",
			point:     schemas.Point{X: 3000, Y: 500},
			wantID:    "monitor-b",
			wantFound: true,
		},
		{
			name: "in the gap below the shorter secondary",
			// Inside the aggregate bounds, but no monitor covers it.
			point:     schemas.Point{X: 5000, Y: 1300},
			wantFound: false,
		},
		{
			name:      "outside the aggregate bounds",
			point:     schemas.Point{X: -10, Y: 50},
			wantFound: false,
		},
		{
			name: "shared border belongs to the right monitor",
			// x=2560 is the exclusive right edge of monitor-a and the
			// inclusive left edge of monitor-b.
			point:     schemas.Point{X: 2560, Y: 10},
			wantID:    "monitor-b",
			wantFound: true,
		},
		{
			name:      "bottom edge is exclusive",
			point:     schemas.Point{X: 100, Y: 1440},
			wantFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			loc, found := vs.Locate(tc.point)
			assert.Equal(t, tc.wantFound, found)
			if tc.wantFound {
				assert.Equal(t, tc.wantID, loc.MonitorID)
				assert.Equal(t, "unified", loc.Space)
			}
		})
	}
}

func TestLocateOverlapTieBreak(t *testing.T) {
	t.Parallel()

	t.Run("primary wins over non-primary", func(t *testing.T) {
		t.Parallel()
		vs, err := display.Compose(display.Config{
			Mode: display.Unified,
			Monitors: []display.Monitor{
				{ID: "z-overlay", Width: 1920, Height: 1080, ScaleFactor: 1, Primary: true},
				{ID: "a-base", Width: 1920, Height: 1080, ScaleFactor: 1},
			},
		})
		require.NoError(t, err)

		loc, found := vs.Locate(schemas.Point{X: 500, Y: 500})
		require.True(t, found)
		assert.Equal(t, "z-overlay", loc.MonitorID)
	})

	t.Run("lowest id wins among equals", func(t *testing.T) {
		t.Parallel()
		vs, err := display.Compose(display.Config{
			Mode: display.Unified,
			Monitors: []display.Monitor{
				{ID: "bravo", Width: 1920, Height: 1080, ScaleFactor: 1},
				{ID: "alpha", Width: 1920, Height: 1080, ScaleFactor: 1},
			},
		})
		require.NoError(t, err)

		loc, found := vs.Locate(schemas.Point{X: 500, Y: 500})
		require.True(t, found)
		assert.Equal(t, "alpha", loc.MonitorID)
	})
}

func TestLocateSeparateSpaces(t *testing.T) {
	t.Parallel()

	vs, err := display.Compose(twoMonitorConfig(display.Separate))
	require.NoError(t, err)

	// Local coordinates repeat across separate spaces; the cross-space
	// locator returns the first match in composition order.
	loc, found := vs.Locate(schemas.Point{X: 100, Y: 100})
	require.True(t, found)
	assert.Equal(t, "monitor-a", loc.MonitorID)
	assert.Equal(t, "monitor-a", loc.Space)

	// Querying a specific space resolves the ambiguity.
	side, ok := vs.Space("monitor-b")
	require.True(t, ok)
	id, found := side.Locate(schemas.Point{X: 100, Y: 100})
	require.True(t, found)
	assert.Equal(t, "monitor-b", id)

	// A point valid only in the larger monitor's local space.
	_, found = side.Locate(schemas.Point{X: 2000, Y: 100})
	assert.False(t, found)
}
