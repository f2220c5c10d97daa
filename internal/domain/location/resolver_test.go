package location

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

func TestResolverSolarHours(t *testing.T) {
	repo := &stubRepository{rows: []Record{
		{State: "TX", City: "Austin", YearAvg: 5.5, SummerAvg: 6.5, WinterAvg: 4.4},
	}}
	r := NewResolver(repo)

	cases := []struct {
		period Period
		want   float64
	}{
		{PeriodYear, 5.5},
		{PeriodSummer, 6.5},
		{PeriodWinter, 4.4},
	}
	for _, tc := range cases {
		got, err := r.SolarHours(context.Background(), tc.period, " TX ", "Austin")
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
	require.Equal(t, "TX", repo.lastState)
}

func TestResolverNotFound(t *testing.T) {
	r := NewResolver(&stubRepository{})

	_, err := r.SolarHours(context.Background(), PeriodYear, "TX", "Nowhere")
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestResolverAmbiguousMatch(t *testing.T) {
	r := NewResolver(&stubRepository{rows: []Record{
		{State: "TX", City: "Austin", YearAvg: 5.5},
		{State: "TX", City: "Austin", YearAvg: 5.6},
	}})

	_, err := r.SolarHours(context.Background(), PeriodYear, "TX", "Austin")
	require.ErrorIs(t, err, ErrAmbiguousMatch)
	require.True(t, apperrors.IsCode(err, apperrors.CodeAmbiguousMatch))
}

func TestResolverUnknownPeriod(t *testing.T) {
	r := NewResolver(&stubRepository{rows: []Record{{State: "TX", City: "Austin", YearAvg: 5.5}}})

	_, err := r.SolarHours(context.Background(), Period("Spring Avg."), "TX", "Austin")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestResolverMissingKeys(t *testing.T) {
	r := NewResolver(&stubRepository{})
	_, err := r.Record(context.Background(), "", "Austin")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestResolverRepositoryFailure(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewResolver(&stubRepository{err: boom})

	_, err := r.SolarHours(context.Background(), PeriodYear, "TX", "Austin")
	require.ErrorIs(t, err, boom)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStoreFailure))

	_, err = r.States(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestResolverCities(t *testing.T) {
	r := NewResolver(&stubRepository{cities: map[string][]string{"TX": {"Austin", "Dallas"}}})

	cities, err := r.Cities(context.Background(), "TX")
	require.NoError(t, err)
	require.Equal(t, []string{"Austin", "Dallas"}, cities)

	_, err = r.Cities(context.Background(), "ZZ")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParsePeriod(t *testing.T) {
	for raw, want := range map[string]Period{
		"":            PeriodYear,
		"Year Avg.":   PeriodYear,
		"summer":      PeriodSummer,
		"Winter Avg.": PeriodWinter,
		"WINTER AVG":  PeriodWinter,
	} {
		got, err := ParsePeriod(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}
	_, err := ParsePeriod("monsoon")
	require.Error(t, err)
}

type stubRepository struct {
	rows      []Record
	cities    map[string][]string
	err       error
	lastState string
}

func (s *stubRepository) Find(_ context.Context, state, city string) ([]Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastState = state
	var out []Record
	for _, r := range s.rows {
		if r.State == state && r.City == city {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRepository) States(context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []string{"TX"}, nil
}

func (s *stubRepository) Cities(_ context.Context, state string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cities[state], nil
}
