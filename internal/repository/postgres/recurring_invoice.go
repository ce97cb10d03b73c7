package postgres

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type recurringInvoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRecurringInvoiceRepository(db *postgres.DB, logger *logger.Logger) recurringinvoice.Repository {
	return &recurringInvoiceRepository{db: db, logger: logger}
}

const recurringInvoiceColumns = `id, user_id, client_id, project_id, name, frequency, status,
	start_date, end_date, subtotal, tax_amount, total, next_invoice_date, created_at, updated_at`

var recurringInvoiceSortColumns = map[string]string{
	"created_at":        "created_at",
	"next_invoice_date": "next_invoice_date",
	"name":              "name",
}

func (r *recurringInvoiceRepository) Create(ctx context.Context, t *recurringinvoice.RecurringInvoice) error {
	query := `
	INSERT INTO recurring_invoices (` + recurringInvoiceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.ID, t.UserID, t.ClientID, t.ProjectID, t.Name, t.Frequency, t.Status,
		t.StartDate, t.EndDate, t.Subtotal, t.TaxAmount, t.Total, t.NextInvoiceDate,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert recurring invoice")
	}
	return nil
}

func (r *recurringInvoiceRepository) Get(ctx context.Context, id string) (*recurringinvoice.RecurringInvoice, error) {
	var t recurringinvoice.RecurringInvoice
	query := `SELECT ` + recurringInvoiceColumns + ` FROM recurring_invoices WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &t, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Recurring invoice not found", "get recurring invoice")
	}
	return &t, nil
}

func (r *recurringInvoiceRepository) List(ctx context.Context, filter *types.RecurringInvoiceFilter) ([]*recurringinvoice.RecurringInvoice, error) {
	if filter == nil {
		filter = types.NewRecurringInvoiceFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.Status != nil {
		w.and("status = ?", *filter.Status)
	}
	query := r.db.Rebind(`SELECT ` + recurringInvoiceColumns + ` FROM recurring_invoices` + w.String() +
		orderAndPage(filter, recurringInvoiceSortColumns, "created_at"))

	var templates []*recurringinvoice.RecurringInvoice
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &templates, query, w.args...); err != nil {
		return nil, dbError(err, "list recurring invoices")
	}
	return templates, nil
}

func (r *recurringInvoiceRepository) ListDue(ctx context.Context, now time.Time) ([]*recurringinvoice.RecurringInvoice, error) {
	query := `
	SELECT ` + recurringInvoiceColumns + `
	FROM recurring_invoices
	WHERE user_id = $1 AND status = $2 AND next_invoice_date <= $3
	ORDER BY next_invoice_date ASC, id ASC`

	var templates []*recurringinvoice.RecurringInvoice
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &templates, query,
		types.GetUserID(ctx), types.RecurringInvoiceStatusActive, now)
	if err != nil {
		return nil, dbError(err, "list due recurring invoices")
	}
	return templates, nil
}

func (r *recurringInvoiceRepository) Update(ctx context.Context, t *recurringinvoice.RecurringInvoice) error {
	stampUpdated(&t.UpdatedAt)
	query := `
	UPDATE recurring_invoices SET
		name = $1, frequency = $2, status = $3, end_date = $4, subtotal = $5, tax_amount = $6,
		total = $7, next_invoice_date = $8, updated_at = $9
	WHERE id = $10 AND user_id = $11`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.Name, t.Frequency, t.Status, t.EndDate, t.Subtotal, t.TaxAmount, t.Total,
		t.NextInvoiceDate, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return dbError(err, "update recurring invoice")
	}
	return expectOneRow(result, "Recurring invoice not found", "update recurring invoice")
}

func (r *recurringInvoiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM recurring_invoices WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete recurring invoice")
	}
	return expectOneRow(result, "Recurring invoice not found", "delete recurring invoice")
}
