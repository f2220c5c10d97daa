package locationrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/solar-calculator/internal/domain/location"
)

// PostgresRepository implements location.Repository using pgx.
//
// Expected schema:
//
//	CREATE TABLE solar_locations (
//	    state      TEXT NOT NULL,
//	    city       TEXT NOT NULL,
//	    year_avg   DOUBLE PRECISION NOT NULL,
//	    summer_avg DOUBLE PRECISION NOT NULL,
//	    winter_avg DOUBLE PRECISION NOT NULL
//	);
type PostgresRepository struct {
	pool    *pgxpool.Pool
	queries postgresQueries
}

type postgresQueries struct {
	find   string
	states string
	cities string
}

// NewPostgresRepository constructs the repository. table must already be validated as an identifier.
func NewPostgresRepository(pool *pgxpool.Pool, table string) *PostgresRepository {
	return &PostgresRepository{pool: pool, queries: buildQueries(table)}
}

func buildQueries(table string) postgresQueries {
	return postgresQueries{
		find: fmt.Sprintf(`
		SELECT state, city, year_avg, summer_avg, winter_avg
		FROM %s
		WHERE state = $1 AND city = $2
	`, table),
		states: fmt.Sprintf(`SELECT DISTINCT state FROM %s ORDER BY state`, table),
		cities: fmt.Sprintf(`SELECT DISTINCT city FROM %s WHERE state = $1 ORDER BY city`, table),
	}
}

// Find returns every row for state and city.
func (r *PostgresRepository) Find(ctx context.Context, state, city string) ([]location.Record, error) {
	rows, err := r.pool.Query(ctx, r.queries.find, state, city)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRecord)
}

// States lists distinct states.
func (r *PostgresRepository) States(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, r.queries.states)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Cities lists the cities of state alphabetically.
func (r *PostgresRepository) Cities(ctx context.Context, state string) ([]string, error) {
	rows, err := r.pool.Query(ctx, r.queries.cities, state)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanRecord(row pgx.CollectableRow) (location.Record, error) {
	var rec location.Record
	err := row.Scan(&rec.State, &rec.City, &rec.YearAvg, &rec.SummerAvg, &rec.WinterAvg)
	return rec, err
}

var _ location.Repository = (*PostgresRepository)(nil)
