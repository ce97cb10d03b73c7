package invoice

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id string) error

	// ListByProjectUnscoped returns a project's invoices regardless of the caller.
	// Only the client portal uses it, after resolving the project from an access token.
	ListByProjectUnscoped(ctx context.Context, projectID string) ([]*Invoice, error)

	// GetUnscoped loads an invoice without the owner check, for Stripe webhooks
	GetUnscoped(ctx context.Context, id string) (*Invoice, error)
}
