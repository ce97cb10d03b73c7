package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/payment"
	"github.com/contractorpro/contractorpro/internal/email"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error)
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error

	// GetClientHistory returns the client's invoices and the payments made against them
	GetClientHistory(ctx context.Context, id string) (*dto.ClientHistoryResponse, error)
	// GetClientInvoice is not found unless the invoice was billed to the client
	GetClientInvoice(ctx context.Context, clientID, invoiceID string) (*dto.InvoiceResponse, error)
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient(ctx)
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	if req.SendWelcome && c.Email != "" && s.Email != nil {
		// the client exists either way; a failed welcome mail is only logged
		if _, err := s.Email.SendWelcome(ctx, email.WelcomeEmailData{
			ClientName:  c.Name,
			ClientEmail: c.Email,
		}); err != nil {
			s.Logger.Warnw("failed to send welcome email",
				"client_id", c.ID,
				"error", err,
			)
		}
	}

	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	clients, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ClientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(clients, total, filter.QueryFilter, func(c *client.Client) *dto.ClientResponse {
		return &dto.ClientResponse{Client: c}
	})
	return &resp, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	c.UpdatedAt = s.now()

	if err := s.ClientRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	return s.ClientRepo.Delete(ctx, id)
}

func (s *clientService) GetClientHistory(ctx context.Context, id string) (*dto.ClientHistoryResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	invoiceFilter := types.NewInvoiceFilter()
	invoiceFilter.ClientID = c.ID
	invoices, err := s.InvoiceRepo.List(ctx, invoiceFilter)
	if err != nil {
		return nil, err
	}

	payments := []*payment.Payment{}
	if len(invoices) > 0 {
		paymentFilter := types.NewPaymentFilter()
		paymentFilter.InvoiceIDs = lo.Map(invoices, func(inv *invoice.Invoice, _ int) string { return inv.ID })
		payments, err = s.PaymentRepo.List(ctx, paymentFilter)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ClientHistoryResponse{
		Client: &dto.ClientResponse{Client: c},
		Invoices: lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
			return &dto.InvoiceResponse{Invoice: inv}
		}),
		Payments: lo.Map(payments, func(p *payment.Payment, _ int) *dto.PaymentResponse {
			return &dto.PaymentResponse{Payment: p}
		}),
	}, nil
}

func (s *clientService) GetClientInvoice(ctx context.Context, clientID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ClientID != clientID {
		return nil, ierr.NewError("invoice belongs to another client").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]any{
				"invoice_id": invoiceID,
				"client_id":  clientID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}
