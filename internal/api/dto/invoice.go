package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	ClientID      string              `json:"client_id" validate:"required"`
	ProjectID     *string             `json:"project_id,omitempty"`
	InvoiceNumber string              `json:"invoice_number,omitempty" validate:"omitempty,max=50"`
	Status        types.InvoiceStatus `json:"status,omitempty"`
	IssueDate     *time.Time          `json:"issue_date,omitempty"`
	DueDate       *time.Time          `json:"due_date,omitempty"`
	Subtotal      decimal.Decimal     `json:"subtotal" validate:"gte=0"`
	TaxAmount     decimal.Decimal     `json:"tax_amount" validate:"gte=0"`
	Total         decimal.Decimal     `json:"total" validate:"gte=0"`
	Notes         string              `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status != "" {
		return r.Status.Validate()
	}
	return nil
}

// ToInvoice builds a draft invoice. A missing number gets a short INV- id and a
// missing due date is the standard payment window after issue.
func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context, now time.Time) *invoice.Invoice {
	number := r.InvoiceNumber
	if number == "" {
		number = types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE)
	}
	status := r.Status
	if status == "" {
		status = types.InvoiceStatusDraft
	}
	issue := now
	if r.IssueDate != nil {
		issue = *r.IssueDate
	}
	due := r.DueDate
	if due == nil {
		d := types.AddDays(issue, types.InvoiceDueDays)
		due = &d
	}
	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:      r.ClientID,
		ProjectID:     r.ProjectID,
		InvoiceNumber: number,
		Status:        status,
		IssueDate:     issue,
		DueDate:       due,
		Subtotal:      r.Subtotal,
		TaxAmount:     r.TaxAmount,
		Total:         r.Total,
		Notes:         r.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateInvoiceRequest struct {
	Status    *types.InvoiceStatus `json:"status,omitempty"`
	DueDate   *time.Time           `json:"due_date,omitempty"`
	Subtotal  *decimal.Decimal     `json:"subtotal,omitempty"`
	TaxAmount *decimal.Decimal     `json:"tax_amount,omitempty"`
	Total     *decimal.Decimal     `json:"total,omitempty"`
	Notes     *string              `json:"notes,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	for _, amount := range []*decimal.Decimal{r.Subtotal, r.TaxAmount, r.Total} {
		if amount != nil && amount.IsNegative() {
			return ierr.NewError("negative invoice amount").
				WithHint("Invoice amounts must not be negative").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) {
	setIfPresent(&inv.Status, r.Status)
	setIfPresent(&inv.Subtotal, r.Subtotal)
	setIfPresent(&inv.TaxAmount, r.TaxAmount)
	setIfPresent(&inv.Total, r.Total)
	setIfPresent(&inv.Notes, r.Notes)
	if r.DueDate != nil {
		inv.DueDate = r.DueDate
	}
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
