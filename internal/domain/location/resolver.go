package location

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/yanqian/solar-calculator/pkg/errors"
)

// Resolver maps (period, state, city) to daily solar hours.
type Resolver struct {
	repo Repository
}

// NewResolver wraps a location repository.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Record returns the unique row for state and city.
func (r *Resolver) Record(ctx context.Context, state, city string) (Record, error) {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	if state == "" || city == "" {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, "state and city are required", nil)
	}
	rows, err := r.repo.Find(ctx, state, city)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeStoreFailure, "failed to read location table", err)
	}
	switch len(rows) {
	case 0:
		return Record{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("no solar hours for %s, %s", city, state), ErrNotFound)
	case 1:
		return rows[0], nil
	default:
		return Record{}, apperrors.Wrap(apperrors.CodeAmbiguousMatch, fmt.Sprintf("%d rows for %s, %s", len(rows), city, state), ErrAmbiguousMatch)
	}
}

// SolarHours returns the average daily solar hours for the period at state and city.
func (r *Resolver) SolarHours(ctx context.Context, period Period, state, city string) (float64, error) {
	rec, err := r.Record(ctx, state, city)
	if err != nil {
		return 0, err
	}
	hours, ok := rec.Hours(period)
	if !ok {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown period %q", period), nil)
	}
	return hours, nil
}

// States lists the states available in the table.
func (r *Resolver) States(ctx context.Context) ([]string, error) {
	states, err := r.repo.States(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreFailure, "failed to list states", err)
	}
	return states, nil
}

// Cities lists the cities of state. An unknown state is reported as not found.
func (r *Resolver) Cities(ctx context.Context, state string) ([]string, error) {
	state = strings.TrimSpace(state)
	cities, err := r.repo.Cities(ctx, state)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreFailure, "failed to list cities", err)
	}
	if len(cities) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("no cities for state %q", state), ErrNotFound)
	}
	return cities, nil
}
