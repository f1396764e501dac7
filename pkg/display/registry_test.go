// File: pkg/display/registry_test.go
package display_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/facet/api/schemas"
	"github.com/xkilldash9x/facet/pkg/display"
)

func twoMonitorTopology(mode schemas.CompositionMode) schemas.MonitorTopology {
	return schemas.MonitorTopology{
		Mode: mode,
		Monitors: []schemas.MonitorDescriptor{
			{ID: "monitor-a", Name: "Main", Width: 2560, Height: 1440, Primary: true},
			{ID: "monitor-b", Name: "Side", Width: 1920, Height: 1080, X: 2560},
		},
	}
}

func TestRegistryUpdate(t *testing.T) {
	t.Parallel()

	reg := display.NewRegistry(zap.NewNop())
	assert.Nil(t, reg.Current())

	vs, err := reg.Update(twoMonitorTopology(schemas.CompositionUnified))
	require.NoError(t, err)
	require.NotNil(t, vs)
	assert.Same(t, vs, reg.Current())
	assert.Equal(t, schemas.Rect{Width: 4480, Height: 1440}, vs.Bounds())

	loc, found := reg.Locate(schemas.Point{X: 3000, Y: 500})
	require.True(t, found)
	assert.Equal(t, "monitor-b", loc.MonitorID)
}

func TestRegistryUpdateAssignsMissingIDs(t *testing.T) {
	t.Parallel()

	reg := display.NewRegistry(nil)
	vs, err := reg.Update(schemas.MonitorTopology{
		Monitors: []schemas.MonitorDescriptor{
			{Name: "Unnamed", Width: 1920, Height: 1080},
		},
	})
	require.NoError(t, err)

	require.Len(t, vs.Spaces, 1)
	require.Len(t, vs.Spaces[0].Monitors, 1)
	assert.NotEmpty(t, vs.Spaces[0].Monitors[0].ID)
}

func TestRegistryRejectsBadTopology(t *testing.T) {
	t.Parallel()

	reg := display.NewRegistry(zap.NewNop())
	good, err := reg.Update(twoMonitorTopology(schemas.CompositionSeparate))
	require.NoError(t, err)

	testCases := []struct {
		name     string
		topology schemas.MonitorTopology
		wantErr  error
	}{
		{
			name:     "empty topology",
			topology: schemas.MonitorTopology{},
			wantErr:  display.ErrEmptyRegistry,
		},
		{
			name: "unknown composition mode",
			topology: schemas.MonitorTopology{
				Mode: "tiled",
				Monitors: []schemas.MonitorDescriptor{
					{ID: "m", Width: 800, Height: 600},
				},
			},
			wantErr: display.ErrInvalidTopology,
		},
		{
			name: "invalid monitor geometry",
			topology: schemas.MonitorTopology{
				Monitors: []schemas.MonitorDescriptor{
					{ID: "m", Width: -800, Height: 600},
				},
			},
			wantErr: display.ErrInvalidMonitor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.Update(tc.topology)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)

			// A failed update must not disturb the published snapshot.
			assert.Same(t, good, reg.Current())
		})
	}
}

// TestRegistryConcurrentAccess hammers the registry with interleaved updates
// and reads. The race detector is the real assertion here; readers must only
// ever observe a complete snapshot.
func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := display.NewRegistry(zap.NewNop())
	_, err := reg.Update(twoMonitorTopology(schemas.CompositionUnified))
	require.NoError(t, err)

	const iterations = 200
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			mode := schemas.CompositionUnified
			if i%2 == 1 {
				mode = schemas.CompositionSeparate
			}
			_, err := reg.Update(twoMonitorTopology(mode))
			assert.NoError(t, err)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				vs := reg.Current()
				if assert.NotNil(t, vs) {
					assert.NotEmpty(t, vs.Spaces)
				}
				if _, found := reg.Locate(schemas.Point{X: 100, Y: 100}); !found {
					t.Error("point inside every snapshot was not located")
					return
				}
			}
		}()
	}

	wg.Wait()
}
