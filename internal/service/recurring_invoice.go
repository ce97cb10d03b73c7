package service

import (
	"context"
	"fmt"
	"time"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/metrics"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type RecurringInvoiceService interface {
	CreateRecurringInvoice(ctx context.Context, req dto.CreateRecurringInvoiceRequest) (*dto.RecurringInvoiceResponse, error)
	GetRecurringInvoice(ctx context.Context, id string) (*dto.RecurringInvoiceResponse, error)
	ListRecurringInvoices(ctx context.Context, filter *types.RecurringInvoiceFilter) (*dto.ListRecurringInvoicesResponse, error)
	UpdateRecurringInvoice(ctx context.Context, id string, req dto.UpdateRecurringInvoiceRequest) (*dto.RecurringInvoiceResponse, error)
	DeleteRecurringInvoice(ctx context.Context, id string) error

	// GenerateDueInvoices materializes one invoice for every template of the caller
	// that is due now, then advances each template by exactly one period.
	GenerateDueInvoices(ctx context.Context) (*dto.GenerateDueInvoicesResponse, error)
}

type recurringInvoiceService struct {
	ServiceParams
}

func NewRecurringInvoiceService(params ServiceParams) RecurringInvoiceService {
	return &recurringInvoiceService{
		ServiceParams: params,
	}
}

func (s *recurringInvoiceService) CreateRecurringInvoice(ctx context.Context, req dto.CreateRecurringInvoiceRequest) (*dto.RecurringInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	template := req.ToRecurringInvoice(ctx)
	if err := s.RecurringInvoiceRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	s.Logger.Infow("created recurring invoice",
		"template_id", template.ID,
		"user_id", template.UserID,
		"frequency", template.Frequency,
	)
	return &dto.RecurringInvoiceResponse{RecurringInvoice: template}, nil
}

func (s *recurringInvoiceService) GetRecurringInvoice(ctx context.Context, id string) (*dto.RecurringInvoiceResponse, error) {
	template, err := s.RecurringInvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.RecurringInvoiceResponse{RecurringInvoice: template}, nil
}

func (s *recurringInvoiceService) ListRecurringInvoices(ctx context.Context, filter *types.RecurringInvoiceFilter) (*dto.ListRecurringInvoicesResponse, error) {
	if filter == nil {
		filter = types.NewRecurringInvoiceFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	templates, err := s.RecurringInvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(templates, len(templates), filter.QueryFilter,
		func(t *recurringinvoice.RecurringInvoice) *dto.RecurringInvoiceResponse {
			return &dto.RecurringInvoiceResponse{RecurringInvoice: t}
		})
	return &resp, nil
}

func (s *recurringInvoiceService) UpdateRecurringInvoice(ctx context.Context, id string, req dto.UpdateRecurringInvoiceRequest) (*dto.RecurringInvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	template, err := s.RecurringInvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(template)
	template.UpdatedAt = s.now()

	if err := s.RecurringInvoiceRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return &dto.RecurringInvoiceResponse{RecurringInvoice: template}, nil
}

func (s *recurringInvoiceService) DeleteRecurringInvoice(ctx context.Context, id string) error {
	return s.RecurringInvoiceRepo.Delete(ctx, id)
}

func (s *recurringInvoiceService) GenerateDueInvoices(ctx context.Context) (*dto.GenerateDueInvoicesResponse, error) {
	now := s.now()

	templates, err := s.RecurringInvoiceRepo.ListDue(ctx, now)
	if err != nil {
		return nil, err
	}
	templates = lo.Filter(templates, func(t *recurringinvoice.RecurringInvoice, _ int) bool {
		return t.IsDue(now)
	})

	generated := make([]*dto.InvoiceResponse, 0, len(templates))
	for i, template := range templates {
		inv := s.materialize(ctx, template, now, i+1)

		// the invoice and the advanced schedule commit together
		err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
			if err := s.InvoiceRepo.Create(txCtx, inv); err != nil {
				return err
			}
			if err := template.Advance(); err != nil {
				return err
			}
			template.UpdatedAt = now
			return s.RecurringInvoiceRepo.Update(txCtx, template)
		})
		if err != nil {
			s.Logger.Errorw("failed to generate recurring invoice",
				"template_id", template.ID,
				"user_id", types.GetUserID(ctx),
				"generated", len(generated),
				"error", err,
			)
			metrics.RecordInvoicesGenerated(len(generated))
			return nil, err
		}

		generated = append(generated, &dto.InvoiceResponse{Invoice: inv})
		s.publish(ctx, types.TopicInvoiceGenerated, &events.InvoiceGeneratedPayload{
			InvoiceID:          inv.ID,
			InvoiceNumber:      inv.InvoiceNumber,
			RecurringInvoiceID: template.ID,
			ClientID:           inv.ClientID,
			Total:              inv.Total,
		})
	}

	metrics.RecordInvoicesGenerated(len(generated))
	s.Logger.Infow("generated due recurring invoices",
		"user_id", types.GetUserID(ctx),
		"generated", len(generated),
	)

	return &dto.GenerateDueInvoicesResponse{
		Success:        true,
		GeneratedCount: len(generated),
		Invoices:       generated,
	}, nil
}

// materialize copies the template's amounts into a sent invoice issued at now
func (s *recurringInvoiceService) materialize(ctx context.Context, template *recurringinvoice.RecurringInvoice, now time.Time, seq int) *invoice.Invoice {
	due := types.AddDays(now, types.InvoiceDueDays)
	base := types.GetDefaultBaseModel(ctx)
	base.CreatedAt, base.UpdatedAt = now, now

	return &invoice.Invoice{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:           template.ClientID,
		ProjectID:          template.ProjectID,
		RecurringInvoiceID: lo.ToPtr(template.ID),
		InvoiceNumber:      fmt.Sprintf("%s-%d-%d", types.INVOICE_NUMBER_PREFIX_RECURRING, now.UnixMilli(), seq),
		Status:             types.InvoiceStatusSent,
		IssueDate:          now,
		DueDate:            &due,
		Subtotal:           template.Subtotal,
		TaxAmount:          template.TaxAmount,
		Total:              template.Total,
		BaseModel:          base,
	}
}
