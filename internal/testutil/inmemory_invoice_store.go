package testutil

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/invoice"
	"github.com/contractorpro/contractorpro/internal/domain/recurringinvoice"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[invoice.Invoice]
}

func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore("Invoice not found", func(i *invoice.Invoice) string { return i.UserID }),
	}
}

func invoiceFilterFn(filter *types.InvoiceFilter) FilterFunc[invoice.Invoice] {
	return func(inv *invoice.Invoice) bool {
		if filter == nil {
			return true
		}
		if filter.ClientID != "" && inv.ClientID != filter.ClientID {
			return false
		}
		if filter.ProjectID != "" && lo.FromPtr(inv.ProjectID) != filter.ProjectID {
			return false
		}
		return filter.Status == nil || inv.Status == *filter.Status
	}
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	// invoice numbers are unique across the table
	if _, taken := s.Find(func(existing *invoice.Invoice) bool {
		return existing.InvoiceNumber == inv.InvoiceNumber
	}); taken {
		return ierr.NewError("duplicate invoice number").
			WithHint("A record with these details already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return s.InMemoryStore.Create(ctx, inv.ID, inv)
}

func (s *InMemoryInvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, invoiceFilterFn(filter), func(a, b *invoice.Invoice) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryInvoiceStore) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, invoiceFilterFn(filter))
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, inv *invoice.Invoice) error {
	return s.InMemoryStore.Update(ctx, inv.ID, inv)
}

func (s *InMemoryInvoiceStore) ListByProjectUnscoped(ctx context.Context, projectID string) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*invoice.Invoice, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		inv := s.items[s.order[i]]
		if lo.FromPtr(inv.ProjectID) == projectID {
			result = append(result, clone(inv))
		}
	}
	return result, nil
}

// InMemoryRecurringInvoiceStore implements recurringinvoice.Repository
type InMemoryRecurringInvoiceStore struct {
	*InMemoryStore[recurringinvoice.RecurringInvoice]
}

func NewInMemoryRecurringInvoiceStore() *InMemoryRecurringInvoiceStore {
	return &InMemoryRecurringInvoiceStore{
		InMemoryStore: NewInMemoryStore("Recurring invoice not found",
			func(r *recurringinvoice.RecurringInvoice) string { return r.UserID }),
	}
}

func (s *InMemoryRecurringInvoiceStore) Create(ctx context.Context, r *recurringinvoice.RecurringInvoice) error {
	return s.InMemoryStore.Create(ctx, r.ID, r)
}

func (s *InMemoryRecurringInvoiceStore) List(ctx context.Context, filter *types.RecurringInvoiceFilter) ([]*recurringinvoice.RecurringInvoice, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(r *recurringinvoice.RecurringInvoice) bool {
		return filter == nil || filter.Status == nil || r.Status == *filter.Status
	}, func(a, b *recurringinvoice.RecurringInvoice) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryRecurringInvoiceStore) Update(ctx context.Context, r *recurringinvoice.RecurringInvoice) error {
	return s.InMemoryStore.Update(ctx, r.ID, r)
}

func (s *InMemoryRecurringInvoiceStore) ListDue(ctx context.Context, now time.Time) ([]*recurringinvoice.RecurringInvoice, error) {
	return s.InMemoryStore.List(ctx, nil, func(r *recurringinvoice.RecurringInvoice) bool {
		return r.IsDue(now)
	}, func(a, b *recurringinvoice.RecurringInvoice) bool {
		return a.NextInvoiceDate.Before(b.NextInvoiceDate)
	})
}
