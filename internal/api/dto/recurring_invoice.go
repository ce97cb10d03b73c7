package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateRecurringInvoiceRequest struct {
	ClientID  string                   `json:"client_id" validate:"required"`
	ProjectID *string                  `json:"project_id,omitempty"`
	Name      string                   `json:"name" validate:"required,max=255"`
	Frequency types.RecurringFrequency `json:"frequency" validate:"required"`
	StartDate time.Time                `json:"start_date" validate:"required"`
	EndDate   *time.Time               `json:"end_date,omitempty"`
	Subtotal  decimal.Decimal          `json:"subtotal" validate:"gte=0"`
	TaxAmount decimal.Decimal          `json:"tax_amount" validate:"gte=0"`
	Total     decimal.Decimal          `json:"total" validate:"gte=0"`
}

func (r *CreateRecurringInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Frequency.Validate(); err != nil {
		return err
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return ierr.NewError("end date before start date").
			WithHint("End date must not be before start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToRecurringInvoice creates an active template whose first invoice is due on the start date
func (r *CreateRecurringInvoiceRequest) ToRecurringInvoice(ctx context.Context) *recurringinvoice.RecurringInvoice {
	return &recurringinvoice.RecurringInvoice{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RECURRING_INVOICE),
		ClientID:        r.ClientID,
		ProjectID:       r.ProjectID,
		Name:            r.Name,
		Frequency:       r.Frequency,
		Status:          types.RecurringInvoiceStatusActive,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Subtotal:        r.Subtotal,
		TaxAmount:       r.TaxAmount,
		Total:           r.Total,
		NextInvoiceDate: r.StartDate,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateRecurringInvoiceRequest struct {
	Name      *string                       `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Frequency *types.RecurringFrequency     `json:"frequency,omitempty"`
	Status    *types.RecurringInvoiceStatus `json:"status,omitempty"`
	Total     *decimal.Decimal              `json:"total,omitempty"`
}

func (r *UpdateRecurringInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Frequency != nil {
		if err := r.Frequency.Validate(); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Total != nil && r.Total.IsNegative() {
		return ierr.NewError("negative total").
			WithHint("Total must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateRecurringInvoiceRequest) Apply(t *recurringinvoice.RecurringInvoice) {
	setIfPresent(&t.Name, r.Name)
	setIfPresent(&t.Frequency, r.Frequency)
	setIfPresent(&t.Status, r.Status)
	setIfPresent(&t.Total, r.Total)
}

type RecurringInvoiceResponse struct {
	*recurringinvoice.RecurringInvoice
}

type ListRecurringInvoicesResponse = types.ListResponse[*RecurringInvoiceResponse]

type GenerateDueInvoicesResponse struct {
	Success        bool               `json:"success"`
	GeneratedCount int                `json:"generatedCount"`
	Invoices       []*InvoiceResponse `json:"invoices,omitempty"`
}
