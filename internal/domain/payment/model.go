package payment

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string              `db:"id" json:"id"`
	InvoiceID     string              `db:"invoice_id" json:"invoice_id"`
	Amount        decimal.Decimal     `db:"amount" json:"amount"`
	PaymentMethod types.PaymentMethod `db:"payment_method" json:"payment_method"`
	Status        types.PaymentStatus `db:"status" json:"status"`
	// TransactionID holds the Stripe payment intent id for card payments
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	Notes         string    `db:"notes" json:"notes"`
	PaymentDate   time.Time `db:"payment_date" json:"payment_date"`
	types.BaseModel
}
