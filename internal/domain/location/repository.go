package location

import "context"

// Repository reads the externally supplied solar hours table.
type Repository interface {
	// Find returns every row matching state and city. Uniqueness is enforced by the Resolver.
	Find(ctx context.Context, state, city string) ([]Record, error)
	// States lists distinct states in ascending order.
	States(ctx context.Context) ([]string, error)
	// Cities lists the cities of state in table order.
	Cities(ctx context.Context, state string) ([]string, error)
}
