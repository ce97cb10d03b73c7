package postgres

import "context"

// IClient is what services depend on to group repository calls in a transaction
type IClient interface {
	// WithTx runs fn in a transaction, or in a savepoint when one is already open
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	// Ping reports whether the database is reachable
	Ping(ctx context.Context) error
}

var _ IClient = (*DB)(nil)
