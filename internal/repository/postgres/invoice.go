package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

const invoiceColumns = `id, user_id, client_id, project_id, recurring_invoice_id, invoice_number,
	status, issue_date, due_date, subtotal, tax_amount, total, notes, created_at, updated_at`

var invoiceSortColumns = map[string]string{
	"created_at":     "created_at",
	"issue_date":     "issue_date",
	"due_date":       "due_date",
	"invoice_number": "invoice_number",
	"total":          "total",
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
	INSERT INTO invoices (` + invoiceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	r.logger.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"user_id", inv.UserID,
	)

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		inv.ID, inv.UserID, inv.ClientID, inv.ProjectID, inv.RecurringInvoiceID, inv.InvoiceNumber,
		inv.Status, inv.IssueDate, inv.DueDate, inv.Subtotal, inv.TaxAmount, inv.Total, inv.Notes,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert invoice")
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Invoice not found", "get invoice")
	}
	return &inv, nil
}

func (r *invoiceRepository) GetUnscoped(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id); err != nil {
		return nil, notFoundOr(err, "Invoice not found", "get invoice")
	}
	return &inv, nil
}

func (r *invoiceRepository) filterWhere(ctx context.Context, filter *types.InvoiceFilter) *where {
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ClientID != "" {
		w.and("client_id = ?", filter.ClientID)
	}
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	if filter.Status != nil {
		w.and("status = ?", *filter.Status)
	}
	return w
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	w := r.filterWhere(ctx, filter)
	query := r.db.Rebind(`SELECT ` + invoiceColumns + ` FROM invoices` + w.String() +
		orderAndPage(filter, invoiceSortColumns, "created_at"))

	var invoices []*invoice.Invoice
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query, w.args...); err != nil {
		return nil, dbError(err, "list invoices")
	}
	return invoices, nil
}

func (r *invoiceRepository) ListByProjectUnscoped(ctx context.Context, projectID string) ([]*invoice.Invoice, error) {
	var invoices []*invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = $1 ORDER BY issue_date DESC`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query, projectID); err != nil {
		return nil, dbError(err, "list project invoices")
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}
	w := r.filterWhere(ctx, filter)
	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count,
		r.db.Rebind(`SELECT COUNT(*) FROM invoices`+w.String()), w.args...); err != nil {
		return 0, dbError(err, "count invoices")
	}
	return count, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	stampUpdated(&inv.UpdatedAt)
	query := `
	UPDATE invoices SET
		status = $1, due_date = $2, subtotal = $3, tax_amount = $4, total = $5,
		notes = $6, updated_at = $7
	WHERE id = $8 AND user_id = $9`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		inv.Status, inv.DueDate, inv.Subtotal, inv.TaxAmount, inv.Total, inv.Notes,
		inv.UpdatedAt, inv.ID, inv.UserID,
	)
	if err != nil {
		return dbError(err, "update invoice")
	}
	return expectOneRow(result, "Invoice not found", "update invoice")
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete invoice")
	}
	return expectOneRow(result, "Invoice not found", "delete invoice")
}
