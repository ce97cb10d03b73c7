package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/payment"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/lib/pq"
)

type paymentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: logger}
}

const paymentColumns = `id, user_id, invoice_id, amount, payment_method, status, transaction_id,
	notes, payment_date, created_at, updated_at`

var paymentSortColumns = map[string]string{
	"created_at":   "created_at",
	"payment_date": "payment_date",
	"amount":       "amount",
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
	INSERT INTO payments (` + paymentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID, p.UserID, p.InvoiceID, p.Amount, p.PaymentMethod, p.Status, p.TransactionID,
		p.Notes, p.PaymentDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert payment")
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Payment not found", "get payment")
	}
	return &p, nil
}

func (r *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	var p payment.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1 ORDER BY created_at DESC LIMIT 1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, transactionID); err != nil {
		return nil, notFoundOr(err, "Payment not found", "get payment by transaction")
	}
	return &p, nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.InvoiceIDs != nil {
		w.and("invoice_id = ANY(?)", pq.Array(filter.InvoiceIDs))
	}
	if filter.Status != nil {
		w.and("status = ?", *filter.Status)
	}
	if filter.TransactionID != "" {
		w.and("transaction_id = ?", filter.TransactionID)
	}
	query := r.db.Rebind(`SELECT ` + paymentColumns + ` FROM payments` + w.String() +
		orderAndPage(filter, paymentSortColumns, "created_at"))

	var payments []*payment.Payment
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &payments, query, w.args...); err != nil {
		return nil, dbError(err, "list payments")
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	stampUpdated(&p.UpdatedAt)
	query := `
	UPDATE payments SET status = $1, notes = $2, updated_at = $3
	WHERE id = $4 AND user_id = $5`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.Status, p.Notes, p.UpdatedAt, p.ID, p.UserID,
	)
	if err != nil {
		return dbError(err, "update payment")
	}
	return expectOneRow(result, "Payment not found", "update payment")
}
