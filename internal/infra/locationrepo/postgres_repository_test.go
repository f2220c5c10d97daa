package locationrepo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildQueriesUsesTable(t *testing.T) {
	q := buildQueries("solar_locations")
	require.Contains(t, q.find, "FROM solar_locations")
	require.Contains(t, q.find, "WHERE state = $1 AND city = $2")
	require.Equal(t, "SELECT DISTINCT state FROM solar_locations ORDER BY state", q.states)
	require.Equal(t, "SELECT DISTINCT city FROM solar_locations WHERE state = $1 ORDER BY city", q.cities)
}
