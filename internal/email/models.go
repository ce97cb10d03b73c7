package email

import (
	"github.com/shopspring/decimal"
)

const (
	TemplateInvoice             = "invoice"
	TemplatePaymentConfirmation = "payment_confirmation"
	TemplatePaymentReminder     = "payment_reminder"
	TemplateWelcome             = "welcome"
	TemplateTest                = "test"
)

// SendEmailResponse represents the response from sending an email
type SendEmailResponse struct {
	MessageID string `json:"message_id,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type InvoiceEmailData struct {
	ClientName    string
	ClientEmail   string
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Amount        decimal.Decimal
	Currency      string
	InvoiceURL    string
	CompanyName   string
}

type PaymentConfirmationEmailData struct {
	ClientName    string
	ClientEmail   string
	InvoiceNumber string
	Amount        decimal.Decimal
	Currency      string
	PaymentDate   string
	PaymentMethod string
	CompanyName   string
}

type PaymentReminderEmailData struct {
	ClientName    string
	ClientEmail   string
	InvoiceNumber string
	Amount        decimal.Decimal
	Currency      string
	DueDate       string
	DaysOverdue   int
	CompanyName   string
	InvoiceURL    string
}

type WelcomeEmailData struct {
	ClientName  string
	ClientEmail string
	CompanyName string
}
