package recurringinvoice

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, template *RecurringInvoice) error
	Get(ctx context.Context, id string) (*RecurringInvoice, error)
	List(ctx context.Context, filter *types.RecurringInvoiceFilter) ([]*RecurringInvoice, error)
	Update(ctx context.Context, template *RecurringInvoice) error
	Delete(ctx context.Context, id string) error

	// ListDue returns the caller's active templates with next_invoice_date <= now
	ListDue(ctx context.Context, now time.Time) ([]*RecurringInvoice, error)
}
