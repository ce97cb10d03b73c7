package dto

import (
	"context"
	"strings"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/payment"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

type CreatePaymentIntentRequest struct {
	InvoiceID   string          `json:"invoice_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency    string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	ClientEmail string          `json:"client_email" validate:"required,email"`
	ClientName  string          `json:"client_name" validate:"required"`
}

func (r *CreatePaymentIntentRequest) Validate() error {
	r.Currency = normalizeCurrency(r.Currency)
	return validator.ValidateRequest(r)
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type CreateCheckoutSessionRequest struct {
	InvoiceID   string          `json:"invoice_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Currency    string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	ClientEmail string          `json:"client_email" validate:"required,email"`
	ClientName  string          `json:"client_name" validate:"required"`
	SuccessURL  string          `json:"success_url" validate:"required,url"`
	CancelURL   string          `json:"cancel_url" validate:"required,url"`
}

func (r *CreateCheckoutSessionRequest) Validate() error {
	r.Currency = normalizeCurrency(r.Currency)
	return validator.ValidateRequest(r)
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type PaymentIntentStatusResponse struct {
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type CheckoutSessionStatusResponse struct {
	PaymentStatus   string `json:"paymentStatus"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

type RecordPaymentRequest struct {
	InvoiceID             string              `json:"invoice_id" validate:"required"`
	Amount                decimal.Decimal     `json:"amount" validate:"gt=0"`
	PaymentMethod         types.PaymentMethod `json:"payment_method,omitempty"`
	StripePaymentIntentID string              `json:"stripe_payment_intent_id,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.PaymentMethod != "" {
		return r.PaymentMethod.Validate()
	}
	return nil
}

// ToPayment records a completed payment received at now
func (r *RecordPaymentRequest) ToPayment(ctx context.Context, now time.Time) *payment.Payment {
	method := r.PaymentMethod
	if method == "" {
		method = types.PaymentMethodCard
	}
	return &payment.Payment{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:     r.InvoiceID,
		Amount:        r.Amount.Round(2),
		PaymentMethod: method,
		Status:        types.PaymentStatusCompleted,
		TransactionID: r.StripePaymentIntentID,
		Notes:         r.Notes,
		PaymentDate:   now,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type CreateRefundRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	// Amount refunds in full when omitted
	Amount *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
}

func (r *CreateRefundRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type RefundResponse struct {
	RefundID string          `json:"refundId"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	*payment.Payment
}

type ListPaymentsResponse = types.ListResponse[*PaymentResponse]

type WebhookResponse struct {
	Received bool   `json:"received"`
	Type     string `json:"type,omitempty"`
}

func normalizeCurrency(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(currency)
}
