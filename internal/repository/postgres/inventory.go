package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/inventory"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type inventoryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInventoryRepository(db *postgres.DB, logger *logger.Logger) inventory.Repository {
	return &inventoryRepository{db: db, logger: logger}
}

const inventoryColumns = `id, user_id, project_id, item_name, category, quantity, unit, unit_cost,
	total_value, qr_code, rfid_tag, current_location, status, last_location_update, notes,
	created_at, updated_at`

var inventorySortColumns = map[string]string{
	"created_at": "created_at",
	"item_name":  "item_name",
	"quantity":   "quantity",
}

func (r *inventoryRepository) Create(ctx context.Context, item *inventory.Item) error {
	query := `
	INSERT INTO inventory_items (` + inventoryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		item.ID, item.UserID, item.ProjectID, item.ItemName, item.Category, item.Quantity, item.Unit,
		item.UnitCost, item.TotalValue, item.QRCode, item.RFIDTag, item.CurrentLocation, item.Status,
		item.LastLocationUpdate, item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert inventory item")
	}
	return nil
}

func (r *inventoryRepository) Get(ctx context.Context, id string) (*inventory.Item, error) {
	var item inventory.Item
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &item, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Inventory item not found", "get inventory item")
	}
	return &item, nil
}

func (r *inventoryRepository) List(ctx context.Context, filter *types.InventoryFilter) ([]*inventory.Item, error) {
	if filter == nil {
		filter = types.NewInventoryFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	if filter.Status != nil {
		w.and("status = ?", *filter.Status)
	}
	query := r.db.Rebind(`SELECT ` + inventoryColumns + ` FROM inventory_items` + w.String() +
		orderAndPage(filter, inventorySortColumns, "created_at"))

	var items []*inventory.Item
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, w.args...); err != nil {
		return nil, dbError(err, "list inventory items")
	}
	return items, nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	stampUpdated(&item.UpdatedAt)
	query := `
	UPDATE inventory_items SET
		project_id = $1, item_name = $2, category = $3, quantity = $4, unit = $5, unit_cost = $6,
		total_value = $7, current_location = $8, status = $9, last_location_update = $10,
		notes = $11, updated_at = $12
	WHERE id = $13 AND user_id = $14`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		item.ProjectID, item.ItemName, item.Category, item.Quantity, item.Unit, item.UnitCost,
		item.TotalValue, item.CurrentLocation, item.Status, item.LastLocationUpdate, item.Notes,
		item.UpdatedAt, item.ID, types.GetUserID(ctx),
	)
	if err != nil {
		return dbError(err, "update inventory item")
	}
	return expectOneRow(result, "Inventory item not found", "update inventory item")
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM inventory_items WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete inventory item")
	}
	return expectOneRow(result, "Inventory item not found", "delete inventory item")
}

type inventoryTransactionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInventoryTransactionRepository(db *postgres.DB, logger *logger.Logger) inventory.TransactionRepository {
	return &inventoryTransactionRepository{db: db, logger: logger}
}

const inventoryTransactionColumns = `id, user_id, inventory_id, transaction_type, quantity_changed,
	from_location, to_location, notes, created_at, updated_at`

func (r *inventoryTransactionRepository) Create(ctx context.Context, txn *inventory.Transaction) error {
	query := `
	INSERT INTO inventory_transactions (` + inventoryTransactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		txn.ID, txn.UserID, txn.InventoryID, txn.TransactionType, txn.QuantityChanged,
		txn.FromLocation, txn.ToLocation, txn.Notes, txn.CreatedAt, txn.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert inventory transaction")
	}
	return nil
}

func (r *inventoryTransactionRepository) ListByInventory(ctx context.Context, inventoryID string) ([]*inventory.Transaction, error) {
	query := `
	SELECT ` + inventoryTransactionColumns + `
	FROM inventory_transactions
	WHERE inventory_id = $1 AND user_id = $2
	ORDER BY created_at DESC`

	var txns []*inventory.Transaction
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &txns, query, inventoryID, types.GetUserID(ctx)); err != nil {
		return nil, dbError(err, "list inventory transactions")
	}
	return txns, nil
}
