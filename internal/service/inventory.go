package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/cache"
	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InventoryService interface {
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	GetItem(ctx context.Context, id string) (*dto.InventoryItemResponse, error)
	ListItems(ctx context.Context, filter *types.InventoryFilter) (*dto.ListInventoryItemsResponse, error)
	ListItemsByProject(ctx context.Context, projectID string) (*dto.ListInventoryItemsResponse, error)
	TransferItem(ctx context.Context, req dto.TransferInventoryRequest) (*dto.TransferInventoryResponse, error)
	UpdateItemStatus(ctx context.Context, id string, req dto.UpdateInventoryStatusRequest) (*dto.InventoryItemResponse, error)
	GetTransactionHistory(ctx context.Context, id string) ([]*dto.InventoryTransactionResponse, error)
	GetSummary(ctx context.Context) (*dto.InventorySummaryResponse, error)
	DeleteItem(ctx context.Context, id string) error
}

type inventoryService struct {
	ServiceParams
}

func NewInventoryService(params ServiceParams) InventoryService {
	return &inventoryService{
		ServiceParams: params,
	}
}

// CreateItem stores the item and its initial add transaction together
func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := req.ToItem(ctx)
	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.InventoryRepo.Create(txCtx, item); err != nil {
			return err
		}
		return s.InventoryTransactionRepo.Create(txCtx, &inventory.Transaction{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVENTORY_TRANSACTION),
			InventoryID:     item.ID,
			TransactionType: types.InventoryTransactionAdd,
			QuantityChanged: item.Quantity,
			ToLocation:      item.CurrentLocation,
			Notes:           "Initial inventory addition",
			BaseModel:       types.GetDefaultBaseModel(txCtx),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx)
	return &dto.InventoryItemResponse{Item: item}, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := s.InventoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryItemResponse{Item: item}, nil
}

func (s *inventoryService) ListItems(ctx context.Context, filter *types.InventoryFilter) (*dto.ListInventoryItemsResponse, error) {
	if filter == nil {
		filter = types.NewInventoryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.InventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(items, len(items), filter.QueryFilter, func(i *inventory.Item) *dto.InventoryItemResponse {
		return &dto.InventoryItemResponse{Item: i}
	})
	return &resp, nil
}

func (s *inventoryService) ListItemsByProject(ctx context.Context, projectID string) (*dto.ListInventoryItemsResponse, error) {
	filter := types.NewInventoryFilter()
	filter.ProjectID = projectID
	return s.ListItems(ctx, filter)
}

// TransferItem moves the item to a new location and logs the move. The item's
// quantity is unchanged; quantity only bounds how much may be moved.
func (s *inventoryService) TransferItem(ctx context.Context, req dto.TransferInventoryRequest) (*dto.TransferInventoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var txn *inventory.Transaction
	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		item, err := s.InventoryRepo.Get(txCtx, req.InventoryID)
		if err != nil {
			return err
		}
		if req.Quantity > item.Quantity {
			return ierr.NewError("transfer exceeds stock").
				WithHint("Insufficient quantity").
				WithReportableDetails(map[string]any{
					"requested": req.Quantity,
					"available": item.Quantity,
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		now := s.now()
		txn = &inventory.Transaction{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVENTORY_TRANSACTION),
			InventoryID:     item.ID,
			TransactionType: types.InventoryTransactionTransfer,
			QuantityChanged: req.Quantity,
			FromLocation:    item.Location(),
			ToLocation:      req.ToLocation,
			Notes:           req.Notes,
			BaseModel:       types.GetDefaultBaseModel(txCtx),
		}
		if err := s.InventoryTransactionRepo.Create(txCtx, txn); err != nil {
			return err
		}

		item.CurrentLocation = req.ToLocation
		item.LastLocationUpdate = &now
		item.UpdatedAt = now
		return s.InventoryRepo.Update(txCtx, item)
	})
	if err != nil {
		return nil, err
	}

	return &dto.TransferInventoryResponse{
		Success:     true,
		Message:     "Inventory transferred successfully",
		Transaction: &dto.InventoryTransactionResponse{Transaction: txn},
	}, nil
}

func (s *inventoryService) UpdateItemStatus(ctx context.Context, id string, req dto.UpdateInventoryStatusRequest) (*dto.InventoryItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.InventoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Status = req.Status
	item.UpdatedAt = s.now()

	if err := s.InventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx)
	return &dto.InventoryItemResponse{Item: item}, nil
}

func (s *inventoryService) GetTransactionHistory(ctx context.Context, id string) ([]*dto.InventoryTransactionResponse, error) {
	// owner check; transactions themselves are keyed by item only
	if _, err := s.InventoryRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	txns, err := s.InventoryTransactionRepo.ListByInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	return lo.Map(txns, func(t *inventory.Transaction, _ int) *dto.InventoryTransactionResponse {
		return &dto.InventoryTransactionResponse{Transaction: t}
	}), nil
}

func (s *inventoryService) GetSummary(ctx context.Context) (*dto.InventorySummaryResponse, error) {
	key := cache.GenerateKey(cache.PrefixInventorySummary, types.GetUserID(ctx))
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if summary, ok := cached.(*dto.InventorySummaryResponse); ok {
			return summary, nil
		}
	}

	items, err := s.InventoryRepo.List(ctx, types.NewInventoryFilter())
	if err != nil {
		return nil, err
	}

	byStatus := make(map[types.InventoryStatus]int, len(types.InventoryStatuses))
	for _, status := range types.InventoryStatuses {
		byStatus[status] = 0
	}
	byCategory := make(map[string]int)
	totalValue := decimal.Zero
	for _, item := range items {
		totalValue = totalValue.Add(item.TotalValue)
		byStatus[item.Status]++
		byCategory[item.Category]++
	}

	summary := &dto.InventorySummaryResponse{
		TotalItems: len(items),
		TotalValue: totalValue.StringFixed(2),
		ByStatus:   byStatus,
		ByCategory: byCategory,
	}
	s.Cache.Set(ctx, key, summary, cache.DefaultExpiration)
	return summary, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.InventoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *inventoryService) invalidateSummary(ctx context.Context) {
	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixInventorySummary, types.GetUserID(ctx)))
}
