package types

type InventoryStatus string

const (
	InventoryStatusAvailable   InventoryStatus = "available"
	InventoryStatusInUse       InventoryStatus = "in_use"
	InventoryStatusMaintenance InventoryStatus = "maintenance"
	InventoryStatusRetired     InventoryStatus = "retired"
)

// InventoryStatuses lists every status in display order
var InventoryStatuses = []InventoryStatus{
	InventoryStatusAvailable,
	InventoryStatusInUse,
	InventoryStatusMaintenance,
	InventoryStatusRetired,
}

func (s InventoryStatus) Validate() error {
	return validateEnum(s, InventoryStatuses, "inventory status")
}

type InventoryTransactionType string

const (
	InventoryTransactionAdd         InventoryTransactionType = "add"
	InventoryTransactionRemove      InventoryTransactionType = "remove"
	InventoryTransactionTransfer    InventoryTransactionType = "transfer"
	InventoryTransactionDamage      InventoryTransactionType = "damage"
	InventoryTransactionMaintenance InventoryTransactionType = "maintenance"
)
