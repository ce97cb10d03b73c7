package inventory

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, item *Item) error
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, filter *types.InventoryFilter) ([]*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	// ListByInventory returns an item's transactions, newest first
	ListByInventory(ctx context.Context, inventoryID string) ([]*Transaction, error)
}
