package recurringinvoice

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringInvoice is a saved billing schedule that periodically materializes
// into concrete invoices.
type RecurringInvoice struct {
	ID              string                       `db:"id" json:"id"`
	ClientID        string                       `db:"client_id" json:"client_id"`
	ProjectID       *string                      `db:"project_id" json:"project_id,omitempty"`
	Name            string                       `db:"name" json:"name"`
	Frequency       types.RecurringFrequency     `db:"frequency" json:"frequency"`
	Status          types.RecurringInvoiceStatus `db:"status" json:"status"`
	StartDate       time.Time                    `db:"start_date" json:"start_date"`
	EndDate         *time.Time                   `db:"end_date" json:"end_date,omitempty"`
	Subtotal        decimal.Decimal              `db:"subtotal" json:"subtotal"`
	TaxAmount       decimal.Decimal              `db:"tax_amount" json:"tax_amount"`
	Total           decimal.Decimal              `db:"total" json:"total"`
	NextInvoiceDate time.Time                    `db:"next_invoice_date" json:"next_invoice_date"`
	types.BaseModel
}

// IsDue reports whether the template should materialize an invoice at now.
// EndDate is informational and does not stop generation.
func (r *RecurringInvoice) IsDue(now time.Time) bool {
	return r.Status == types.RecurringInvoiceStatusActive && !r.NextInvoiceDate.After(now)
}

// Advance moves NextInvoiceDate forward by one period. It never skips periods.
func (r *RecurringInvoice) Advance() error {
	next, err := types.NextInvoiceDate(r.NextInvoiceDate, r.Frequency)
	if err != nil {
		return err
	}
	r.NextInvoiceDate = next
	return nil
}
