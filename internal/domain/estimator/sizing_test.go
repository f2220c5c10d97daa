package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

func TestSizeSystemAustin(t *testing.T) {
	kw, panels, err := SizeSystem(1000, 100, 5.5)
	require.NoError(t, err)
	require.Equal(t, 6.06, kw)
	require.Equal(t, 18, panels)
}

func TestSizeSystemZeroUsage(t *testing.T) {
	kw, panels, err := SizeSystem(0, 100, 5.5)
	require.NoError(t, err)
	require.Zero(t, kw)
	require.Zero(t, panels)

	kw, panels, err = SizeSystem(1200, 0, 5.5)
	require.NoError(t, err)
	require.Zero(t, kw)
	require.Zero(t, panels)
}

func TestSizeSystemPanelInvariant(t *testing.T) {
	for _, usage := range []float64{10, 95, 480, 1000, 1730, 2500, 3000} {
		for _, offset := range []int{1, 25, 50, 73, 100} {
			for _, hours := range []float64{2.9, 4.4, 5.5, 6.7} {
				kw, panels, err := SizeSystem(usage, offset, hours)
				require.NoError(t, err)
				require.GreaterOrEqual(t, panels, 0)
				require.Equal(t, int(math.Ceil(kw/PanelRatedKW)), panels, "usage=%v offset=%d hours=%v", usage, offset, hours)
			}
		}
	}
}

func TestSizeSystemInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		usage  float64
		offset int
		hours  float64
	}{
		{"negative usage", -1, 100, 5},
		{"nan usage", math.NaN(), 100, 5},
		{"offset below range", 1000, -1, 5},
		{"offset above range", 1000, 101, 5},
		{"zero hours", 1000, 100, 0},
		{"negative hours", 1000, 100, -2},
		{"infinite hours", 1000, 100, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := SizeSystem(tc.usage, tc.offset, tc.hours)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
		})
	}
}

// Rounding is half away from zero on the shortest decimal form of the float.
func TestRoundPlacesBoundary(t *testing.T) {
	require.Equal(t, 1.01, roundPlaces(1.005, 2))
	require.Equal(t, 2.68, roundPlaces(2.675, 2))
	require.Equal(t, 0.35, roundPlaces(0.345, 2))
	require.Equal(t, 0.34, roundPlaces(0.3449, 2))
	require.Equal(t, 6.06, roundPlaces(1000.0/165.0, 2))
	require.Equal(t, 2174.4, roundPlaces(2174.3970716985345, 2))
}

// A half-cent boundary moves the size across a panel boundary.
func TestPanelCountAtRoundingBoundary(t *testing.T) {
	require.Equal(t, 1, panelCount(roundPlaces(0.3449, 2)))
	require.Equal(t, 2, panelCount(roundPlaces(0.345, 2)))
	require.Equal(t, 0, panelCount(0))
}
