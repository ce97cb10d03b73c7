package inventory

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/shopspring/decimal"
)

// UnknownLocation is recorded as the origin of a transfer when the item has no location yet
const UnknownLocation = "Unknown"

type Item struct {
	ID                 string                `db:"id" json:"id"`
	ProjectID          *string               `db:"project_id" json:"project_id,omitempty"`
	ItemName           string                `db:"item_name" json:"item_name"`
	Category           string                `db:"category" json:"category"`
	Quantity           int                   `db:"quantity" json:"quantity"`
	Unit               string                `db:"unit" json:"unit"`
	UnitCost           decimal.Decimal       `db:"unit_cost" json:"unit_cost"`
	TotalValue         decimal.Decimal       `db:"total_value" json:"total_value"`
	QRCode             string                `db:"qr_code" json:"qr_code"`
	RFIDTag            string                `db:"rfid_tag" json:"rfid_tag"`
	CurrentLocation    string                `db:"current_location" json:"current_location"`
	Status             types.InventoryStatus `db:"status" json:"status"`
	LastLocationUpdate *time.Time            `db:"last_location_update" json:"last_location_update,omitempty"`
	Notes              string                `db:"notes" json:"notes"`
	types.BaseModel
}

// Location returns where the item currently is, or UnknownLocation
func (i *Item) Location() string {
	if i.CurrentLocation == "" {
		return UnknownLocation
	}
	return i.CurrentLocation
}

// Transaction is an audit log row for movements of an inventory item
type Transaction struct {
	ID              string                         `db:"id" json:"id"`
	InventoryID     string                         `db:"inventory_id" json:"inventory_id"`
	TransactionType types.InventoryTransactionType `db:"transaction_type" json:"transaction_type"`
	QuantityChanged int                            `db:"quantity_changed" json:"quantity_changed"`
	FromLocation    string                         `db:"from_location" json:"from_location"`
	ToLocation      string                         `db:"to_location" json:"to_location"`
	Notes           string                         `db:"notes" json:"notes"`
	types.BaseModel
}
