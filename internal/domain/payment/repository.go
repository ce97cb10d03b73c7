package payment

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context, filter *types.PaymentFilter) ([]*Payment, error)
	Update(ctx context.Context, payment *Payment) error

	// GetByTransactionID is unscoped so Stripe webhooks can find the payment
	GetByTransactionID(ctx context.Context, transactionID string) (*Payment, error)
}
