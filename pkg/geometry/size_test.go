// File: pkg/geometry/size_test.go
package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/facet/api/schemas"
)

func TestResolveSize_Fixed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		size     Size
		expected float64
	}{
		{"fixed pixels", FixedSize(Px(120)), 120},
		{"fixed percent of parent", FixedSize(Pct(50)), 400},
		{"fixed em", FixedSize(EmUnit(2)), 32},
		{"fixed rem", FixedSize(RemUnit(1)), 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveSize(tc.size, defaultCtx(), 10, 10)
			require.NoError(t, err)
			assert.False(t, got.Deferred)
			assert.InDelta(t, tc.expected, got.Value, 1e-9)
		})
	}
}

func TestResolveSize_FixedNegativeFailsLoudly(t *testing.T) {
	t.Parallel()

	// A negative multiplier is fine as an offset but must never become a
	// size.
	_, err := resolveSize(FixedSize(EmUnit(-2)), defaultCtx(), 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestResolveSize_Fill(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		start, end float64
		expected   float64
	}{
		{"no offsets", 0, 0, 800},
		{"start offset only", 20, 0, 780},
		{"both offsets", 20, 30, 750},
		{"offsets exceed parent clamp to zero", 500, 400, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveSize(FillSize(), defaultCtx(), tc.start, tc.end)
			require.NoError(t, err)
			assert.False(t, got.Deferred)
			assert.InDelta(t, tc.expected, got.Value, 1e-9)
		})
	}
}

func TestResolveSize_FitContentDefers(t *testing.T) {
	t.Parallel()

	got, err := resolveSize(FitContentSize(), defaultCtx(), 0, 0)
	require.NoError(t, err)
	assert.True(t, got.Deferred, "fit-content must defer, never produce a length")
	assert.Zero(t, got.Value)
}

func TestSizeFromSchema(t *testing.T) {
	t.Parallel()

	px := schemas.Length{Value: 10, Unit: schemas.UnitPixels}

	testCases := []struct {
		name     string
		spec     schemas.SizeSpec
		expected Size
		wantErr  bool
	}{
		{"fixed", schemas.SizeSpec{Mode: schemas.SizeFixed, Length: &px}, FixedSize(Px(10)), false},
		{"fill", schemas.SizeSpec{Mode: schemas.SizeFill}, FillSize(), false},
		{"fit content", schemas.SizeSpec{Mode: schemas.SizeFitContent}, FitContentSize(), false},
		{"fixed without length", schemas.SizeSpec{Mode: schemas.SizeFixed}, Size{}, true},
		{"unknown mode", schemas.SizeSpec{Mode: "stretch"}, Size{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SizeFromSchema(tc.spec)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClampLength(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		v, minV, maxV    float64
		expected         float64
		expectedConflict bool
	}{
		{"inside range", 50, 0, 100, 50, false},
		{"below min", -10, 0, 100, 0, false},
		{"above max", 500, 0, 100, 100, false},
		{"min equals max", 50, 80, 80, 80, false},
		{"min wins over max", 50, 200, 100, 200, true},
		{"conflict but value above min", 300, 200, 100, 300, true},
		{"unbounded", 50, negInf, posInf, 50, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, conflict := clampLength(tc.v, tc.minV, tc.maxV)
			assert.InDelta(t, tc.expected, got, 1e-9)
			assert.Equal(t, tc.expectedConflict, conflict)
		})
	}
}
