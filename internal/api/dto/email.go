package dto

import (
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type SendInvoiceEmailRequest struct {
	ClientName    string          `json:"client_name" validate:"required"`
	ClientEmail   string          `json:"client_email" validate:"required,email"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	InvoiceDate   string          `json:"invoice_date" validate:"required"`
	DueDate       string          `json:"due_date" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency      string          `json:"currency,omitempty"`
	InvoiceURL    string          `json:"invoice_url" validate:"required,url"`
	CompanyName   string          `json:"company_name,omitempty"`
}

func (r *SendInvoiceEmailRequest) Validate() error {
	r.Currency = normalizeCurrency(r.Currency)
	return validator.ValidateRequest(r)
}

type SendPaymentConfirmationEmailRequest struct {
	ClientName    string          `json:"client_name" validate:"required"`
	ClientEmail   string          `json:"client_email" validate:"required,email"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency      string          `json:"currency,omitempty"`
	PaymentDate   string          `json:"payment_date" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	CompanyName   string          `json:"company_name,omitempty"`
}

func (r *SendPaymentConfirmationEmailRequest) Validate() error {
	r.Currency = normalizeCurrency(r.Currency)
	return validator.ValidateRequest(r)
}

type SendPaymentReminderEmailRequest struct {
	ClientName    string          `json:"client_name" validate:"required"`
	ClientEmail   string          `json:"client_email" validate:"required,email"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency      string          `json:"currency,omitempty"`
	DueDate       string          `json:"due_date" validate:"required"`
	DaysOverdue   int             `json:"days_overdue" validate:"gte=0"`
	InvoiceURL    string          `json:"invoice_url" validate:"required,url"`
	CompanyName   string          `json:"company_name,omitempty"`
}

func (r *SendPaymentReminderEmailRequest) Validate() error {
	r.Currency = normalizeCurrency(r.Currency)
	return validator.ValidateRequest(r)
}

type SendWelcomeEmailRequest struct {
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	CompanyName string `json:"company_name,omitempty"`
}

func (r *SendWelcomeEmailRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type SendTestEmailRequest struct {
	To string `json:"to" validate:"required,email"`
}

func (r *SendTestEmailRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type SendEmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id,omitempty"`
}
