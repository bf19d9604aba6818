package health

import (
	"context"
	"fmt"
)

// Pinger is the subset of a database pool needed for readiness probing.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Database returns a [Checker] named "database" that pings the roster
// database. Use it when the server runs against Postgres; in-memory
// deployments have no database to probe and should register [Static]
// instead.
func Database(p Pinger) Checker {
	return Checker{
		Name: "database",
		Check: func(ctx context.Context) error {
			if err := p.Ping(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
	}
}

// Static returns a [Checker] that always reports healthy. It stands in for
// dependencies that exist only in some deployments, such as the database
// when the server runs with the in-memory store.
func Static(name string) Checker {
	return Checker{
		Name:  name,
		Check: func(context.Context) error { return nil },
	}
}
