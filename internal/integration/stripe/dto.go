package stripe

import (
	"github.com/shopspring/decimal"
)

type CreatePaymentIntentInput struct {
	InvoiceID   string
	AmountCents int64
	Currency    string
	Description string
	ClientEmail string
	ClientName  string
}

type CreateCheckoutSessionInput struct {
	InvoiceID     string
	InvoiceNumber string
	AmountCents   int64
	Currency      string
	ClientEmail   string
	ClientName    string
	SuccessURL    string
	CancelURL     string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	AmountCents  int64
	Currency     string
	Metadata     map[string]string
}

type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	PaymentIntentID string
}

type Refund struct {
	ID              string
	PaymentIntentID string
	AmountCents     int64
	Status          string
}

// WebhookEvent is a verified event reduced to the fields the payment flow reads
type WebhookEvent struct {
	ID              string
	Type            string
	ObjectID        string
	PaymentIntentID string
	AmountCents     int64
	Currency        string
	Metadata        map[string]string
}

// ToCents converts a major unit amount to the smallest currency unit, rounding half away from zero
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FromCents converts a smallest currency unit amount back to major units
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
