package postgres

import (
	"context"
	"database/sql"
	"fmt"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/jmoiron/sqlx"
)

type txKey struct{}

// Tx is an open transaction. Nested WithTx calls share it through savepoints.
type Tx struct {
	*sqlx.Tx
	ID    string
	depth int
}

// GetTx returns the transaction carried by ctx, if any
func GetTx(ctx context.Context) (*Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	return tx, ok
}

func (tx *Tx) savepoint() string {
	return fmt.Sprintf("sp_%d", tx.depth)
}

// BeginTx opens a transaction, or a savepoint when ctx already carries one
func (db *DB) BeginTx(ctx context.Context) (context.Context, *Tx, error) {
	if tx, ok := GetTx(ctx); ok {
		tx.depth++
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+tx.savepoint()); err != nil {
			tx.depth--
			return ctx, nil, ierr.WithError(err).
				WithMessage("create savepoint").
				Mark(ierr.ErrDatabase)
		}
		return ctx, tx, nil
	}

	sqlxTx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return ctx, nil, ierr.WithError(err).
			WithMessage("begin transaction").
			Mark(ierr.ErrDatabase)
	}

	tx := &Tx{Tx: sqlxTx, ID: types.GenerateUUID()}
	db.logger.Debugw("transaction started",
		"tx_id", tx.ID,
		"user_id", types.GetUserID(ctx),
	)
	return context.WithValue(ctx, txKey{}, tx), tx, nil
}

// CommitTx commits the innermost level of the transaction in ctx
func (db *DB) CommitTx(ctx context.Context) error {
	tx, ok := GetTx(ctx)
	if !ok {
		return ierr.NewError("no transaction in context").Mark(ierr.ErrSystem)
	}

	if tx.depth > 0 {
		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+tx.savepoint()); err != nil {
			return ierr.WithError(err).WithMessage("release savepoint").Mark(ierr.ErrDatabase)
		}
		tx.depth--
		return nil
	}

	if err := tx.Commit(); err != nil {
		return ierr.WithError(err).WithMessage("commit transaction").Mark(ierr.ErrDatabase)
	}
	return nil
}

// RollbackTx rolls back the innermost level of the transaction in ctx
func (db *DB) RollbackTx(ctx context.Context) error {
	tx, ok := GetTx(ctx)
	if !ok {
		return ierr.NewError("no transaction in context").Mark(ierr.ErrSystem)
	}

	if tx.depth > 0 {
		if _, err := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+tx.savepoint()); err != nil {
			return ierr.WithError(err).WithMessage("rollback to savepoint").Mark(ierr.ErrDatabase)
		}
		tx.depth--
		return nil
	}

	if err := tx.Rollback(); err != nil {
		return ierr.WithError(err).WithMessage("rollback transaction").Mark(ierr.ErrDatabase)
	}
	return nil
}

// WithTx runs fn inside a transaction. fn's error is returned as is so callers
// keep its classification; a panic rolls back and re-panics.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			db.logger.Errorw("panic in transaction", "tx_id", tx.ID, "panic", r)
			_ = db.RollbackTx(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		db.logger.Debugw("rolling back transaction",
			"tx_id", tx.ID,
			"user_id", types.GetUserID(ctx),
			"error", err,
		)
		if rbErr := db.RollbackTx(ctx); rbErr != nil {
			db.logger.Errorw("rollback failed", "tx_id", tx.ID, "error", rbErr)
		}
		return err
	}

	return db.CommitTx(ctx)
}
