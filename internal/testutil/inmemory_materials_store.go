package testutil

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/carbon"
	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

type InMemoryInventoryStore struct {
	*InMemoryStore[inventory.Item]
}

func NewInMemoryInventoryStore() *InMemoryInventoryStore {
	return &InMemoryInventoryStore{
		InMemoryStore: NewInMemoryStore("Inventory item not found", func(i *inventory.Item) string { return i.UserID }),
	}
}

func (s *InMemoryInventoryStore) Create(ctx context.Context, item *inventory.Item) error {
	return s.InMemoryStore.Create(ctx, item.ID, item)
}

func (s *InMemoryInventoryStore) List(ctx context.Context, filter *types.InventoryFilter) ([]*inventory.Item, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(item *inventory.Item) bool {
		if filter == nil {
			return true
		}
		if filter.ProjectID != "" && lo.FromPtr(item.ProjectID) != filter.ProjectID {
			return false
		}
		return filter.Status == nil || item.Status == *filter.Status
	}, func(a, b *inventory.Item) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryInventoryStore) Update(ctx context.Context, item *inventory.Item) error {
	return s.InMemoryStore.Update(ctx, item.ID, item)
}

type InMemoryInventoryTransactionStore struct {
	*InMemoryStore[inventory.Transaction]
}

func NewInMemoryInventoryTransactionStore() *InMemoryInventoryTransactionStore {
	return &InMemoryInventoryTransactionStore{
		InMemoryStore: NewInMemoryStore("Inventory transaction not found",
			func(t *inventory.Transaction) string { return t.UserID }),
	}
}

func (s *InMemoryInventoryTransactionStore) Create(ctx context.Context, txn *inventory.Transaction) error {
	return s.InMemoryStore.Create(ctx, txn.ID, txn)
}

func (s *InMemoryInventoryTransactionStore) ListByInventory(ctx context.Context, inventoryID string) ([]*inventory.Transaction, error) {
	return s.InMemoryStore.List(ctx, nil, func(t *inventory.Transaction) bool {
		return t.InventoryID == inventoryID
	}, func(a, b *inventory.Transaction) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

type InMemoryCarbonStore struct {
	*InMemoryStore[carbon.Record]
}

func NewInMemoryCarbonStore() *InMemoryCarbonStore {
	return &InMemoryCarbonStore{
		InMemoryStore: NewInMemoryStore("Carbon record not found", func(r *carbon.Record) string { return r.UserID }),
	}
}

func (s *InMemoryCarbonStore) Create(ctx context.Context, r *carbon.Record) error {
	return s.InMemoryStore.Create(ctx, r.ID, r)
}

func (s *InMemoryCarbonStore) List(ctx context.Context, filter *types.CarbonRecordFilter) ([]*carbon.Record, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(r *carbon.Record) bool {
		return filter == nil || filter.ProjectID == "" || r.ProjectID == filter.ProjectID
	}, func(a, b *carbon.Record) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}
