package testutil

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/compliance"
	"github.com/contractorpro/contractorpro/internal/domain/payment"
	"github.com/contractorpro/contractorpro/internal/domain/portal"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type InMemoryComplianceStore struct {
	*InMemoryStore[compliance.Document]
}

func NewInMemoryComplianceStore() *InMemoryComplianceStore {
	return &InMemoryComplianceStore{
		InMemoryStore: NewInMemoryStore("Compliance document not found",
			func(d *compliance.Document) string { return d.UserID }),
	}
}

func (s *InMemoryComplianceStore) Create(ctx context.Context, d *compliance.Document) error {
	return s.InMemoryStore.Create(ctx, d.ID, d)
}

func (s *InMemoryComplianceStore) List(ctx context.Context, filter *types.ComplianceDocumentFilter) ([]*compliance.Document, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(d *compliance.Document) bool {
		if filter == nil {
			return true
		}
		if filter.TeamMemberID != "" && d.TeamMemberID != filter.TeamMemberID {
			return false
		}
		return filter.ExpiringBefore == nil || d.ExpiresBy(*filter.ExpiringBefore)
	}, func(a, b *compliance.Document) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

type InMemoryPortalStore struct {
	*InMemoryStore[portal.Access]
}

func NewInMemoryPortalStore() *InMemoryPortalStore {
	return &InMemoryPortalStore{
		InMemoryStore: NewInMemoryStore("Portal access not found", func(a *portal.Access) string { return a.UserID }),
	}
}

func (s *InMemoryPortalStore) Create(ctx context.Context, a *portal.Access) error {
	return s.InMemoryStore.Create(ctx, a.ID, a)
}

func (s *InMemoryPortalStore) List(ctx context.Context, filter *types.PortalAccessFilter) ([]*portal.Access, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(a *portal.Access) bool {
		if filter == nil {
			return true
		}
		if filter.ClientID != "" && a.ClientID != filter.ClientID {
			return false
		}
		return filter.ProjectID == "" || a.ProjectID == filter.ProjectID
	}, func(a, b *portal.Access) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryPortalStore) Update(ctx context.Context, a *portal.Access) error {
	return s.InMemoryStore.Update(ctx, a.ID, a)
}

func (s *InMemoryPortalStore) GetByToken(ctx context.Context, token string) (*portal.Access, error) {
	a, ok := s.Find(func(a *portal.Access) bool { return a.AccessToken == token && a.IsActive })
	if !ok {
		return nil, ierr.NewError("portal access not found").
			WithHint("Invalid or expired portal access").
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryPortalStore) TouchLastAccessed(ctx context.Context, id string) error {
	a, err := s.GetUnscoped(ctx, id)
	if err != nil {
		return err
	}
	a.LastAccessedAt = lo.ToPtr(time.Now().UTC())
	return s.UpdateUnscoped(ctx, id, a)
}

type InMemoryPaymentStore struct {
	*InMemoryStore[payment.Payment]
}

func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore("Payment not found", func(p *payment.Payment) string { return p.UserID }),
	}
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(p *payment.Payment) bool {
		if filter == nil {
			return true
		}
		if filter.InvoiceIDs != nil && !lo.Contains(filter.InvoiceIDs, p.InvoiceID) {
			return false
		}
		if filter.Status != nil && p.Status != *filter.Status {
			return false
		}
		return filter.TransactionID == "" || p.TransactionID == filter.TransactionID
	}, func(a, b *payment.Payment) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	return s.UpdateUnscoped(ctx, p.ID, p)
}

func (s *InMemoryPaymentStore) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	p, ok := s.Find(func(p *payment.Payment) bool {
		return transactionID != "" && p.TransactionID == transactionID
	})
	if !ok {
		return nil, s.notFound()
	}
	return p, nil
}
