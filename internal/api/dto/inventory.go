package dto

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateInventoryItemRequest struct {
	ProjectID       *string         `json:"project_id,omitempty"`
	ItemName        string          `json:"item_name" validate:"required,max=255"`
	Category        string          `json:"category" validate:"required,max=100"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	Unit            string          `json:"unit" validate:"required,max=50"`
	UnitCost        decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	QRCode          string          `json:"qr_code,omitempty"`
	RFIDTag         string          `json:"rfid_tag,omitempty"`
	CurrentLocation string          `json:"current_location,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

func (r *CreateInventoryItemRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToItem values the stock at quantity times unit cost
func (r *CreateInventoryItemRequest) ToItem(ctx context.Context) *inventory.Item {
	unitCost := r.UnitCost.Round(2)
	return &inventory.Item{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVENTORY_ITEM),
		ProjectID:       r.ProjectID,
		ItemName:        r.ItemName,
		Category:        r.Category,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		UnitCost:        unitCost,
		TotalValue:      unitCost.Mul(decimal.NewFromInt(int64(r.Quantity))).Round(2),
		QRCode:          r.QRCode,
		RFIDTag:         r.RFIDTag,
		CurrentLocation: r.CurrentLocation,
		Status:          types.InventoryStatusAvailable,
		Notes:           r.Notes,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type TransferInventoryRequest struct {
	InventoryID string `json:"inventory_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	ToLocation  string `json:"to_location" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

func (r *TransferInventoryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type UpdateInventoryStatusRequest struct {
	Status types.InventoryStatus `json:"status" validate:"required"`
}

func (r *UpdateInventoryStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

type InventoryItemResponse struct {
	*inventory.Item
}

type ListInventoryItemsResponse = types.ListResponse[*InventoryItemResponse]

type InventoryTransactionResponse struct {
	*inventory.Transaction
}

type TransferInventoryResponse struct {
	Success     bool                          `json:"success"`
	Message     string                        `json:"message"`
	Transaction *InventoryTransactionResponse `json:"transaction"`
}

type InventorySummaryResponse struct {
	TotalItems int                           `json:"totalItems"`
	TotalValue string                        `json:"totalValue"`
	ByStatus   map[types.InventoryStatus]int `json:"byStatus"`
	ByCategory map[string]int                `json:"byCategory"`
}
