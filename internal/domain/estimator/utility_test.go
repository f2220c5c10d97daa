package estimator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtilitySum(t *testing.T) {
	require.Equal(t, 57270, UtilitySum(0.149, 1000, 100, ProjectionYears))
	// 0.1 * 1200 * 0.5 = 60 in year 0, 61.2 in year 1.
	require.Equal(t, 60, UtilitySum(0.1, 100, 50, 1))
	require.Equal(t, 121, UtilitySum(0.1, 100, 50, 2))
	require.Zero(t, UtilitySum(0.149, 1000, 100, 0))
	require.Zero(t, UtilitySum(0.149, 0, 100, ProjectionYears))
}

func TestUtilitySumMonotonic(t *testing.T) {
	costs := []float64{0, 0.05, 0.1, 0.149, 0.2, 0.25}
	for i := 1; i < len(costs); i++ {
		require.Greater(t, UtilitySum(costs[i], 1000, 100, ProjectionYears), UtilitySum(costs[i-1], 1000, 100, ProjectionYears))
	}

	usages := []float64{0, 10, 500, 1000, 2000, 3000}
	for i := 1; i < len(usages); i++ {
		require.Greater(t, UtilitySum(0.149, usages[i], 100, ProjectionYears), UtilitySum(0.149, usages[i-1], 100, ProjectionYears))
	}

	for offset := 1; offset <= 100; offset++ {
		require.GreaterOrEqual(t, UtilitySum(0.149, 1000, offset, ProjectionYears), UtilitySum(0.149, 1000, offset-1, ProjectionYears))
	}
}
