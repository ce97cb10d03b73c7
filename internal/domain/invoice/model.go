package invoice

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID                 string              `db:"id" json:"id"`
	ClientID           string              `db:"client_id" json:"client_id"`
	ProjectID          *string             `db:"project_id" json:"project_id,omitempty"`
	RecurringInvoiceID *string             `db:"recurring_invoice_id" json:"recurring_invoice_id,omitempty"`
	InvoiceNumber      string              `db:"invoice_number" json:"invoice_number"`
	Status             types.InvoiceStatus `db:"status" json:"status"`
	IssueDate          time.Time           `db:"issue_date" json:"issue_date"`
	DueDate            *time.Time          `db:"due_date" json:"due_date,omitempty"`
	Subtotal           decimal.Decimal     `db:"subtotal" json:"subtotal"`
	TaxAmount          decimal.Decimal     `db:"tax_amount" json:"tax_amount"`
	Total              decimal.Decimal     `db:"total" json:"total"`
	Notes              string              `db:"notes" json:"notes"`
	types.BaseModel
}

// IsPaid is true once a payment has been recorded in full
func (i *Invoice) IsPaid() bool {
	return i.Status == types.InvoiceStatusPaid
}
