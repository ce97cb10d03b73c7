package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/jmoiron/sqlx"
)

// slowQueryThreshold promotes a completed statement's log line from debug to warn
const slowQueryThreshold = 500 * time.Millisecond

// tracedQuerier logs every statement issued through a Querier with its
// duration, owner and transaction
type tracedQuerier struct {
	Querier
	logger *logger.Logger
	txID   string
}

func newTracedQuerier(q Querier, logger *logger.Logger, txID string) *tracedQuerier {
	return &tracedQuerier{Querier: q, logger: logger, txID: txID}
}

func (tq *tracedQuerier) trace(ctx context.Context, query string, start time.Time, err error) {
	elapsed := time.Since(start)
	fields := []interface{}{
		"duration_ms", elapsed.Milliseconds(),
		"query", query,
		"user_id", types.GetUserID(ctx),
	}
	if tq.txID != "" {
		fields = append(fields, "tx_id", tq.txID)
	}
	if reqID := types.GetRequestID(ctx); reqID != "" {
		fields = append(fields, "request_id", reqID)
	}

	switch {
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		tq.logger.Errorw("database query failed", append(fields, "error", err)...)
	case elapsed >= slowQueryThreshold:
		tq.logger.Warnw("slow database query", fields...)
	default:
		tq.logger.Debugw("database query completed", fields...)
	}
}

func (tq *tracedQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := tq.Querier.ExecContext(ctx, query, args...)
	tq.trace(ctx, query, start, err)
	return result, err
}

func (tq *tracedQuerier) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := tq.Querier.QueryContext(ctx, query, args...)
	tq.trace(ctx, query, start, err)
	return rows, err
}

func (tq *tracedQuerier) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	start := time.Now()
	row := tq.Querier.QueryRowxContext(ctx, query, args...)
	tq.trace(ctx, query, start, row.Err())
	return row
}

func (tq *tracedQuerier) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := tq.Querier.GetContext(ctx, dest, query, args...)
	tq.trace(ctx, query, start, err)
	return err
}

func (tq *tracedQuerier) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := tq.Querier.SelectContext(ctx, dest, query, args...)
	tq.trace(ctx, query, start, err)
	return err
}
