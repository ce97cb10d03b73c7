package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/client"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type clientRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return &clientRepository{db: db, logger: logger}
}

const clientColumns = `id, user_id, name, email, phone, address, city, state, zip_code, country,
	tax_id, notes, created_at, updated_at`

var clientSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
	INSERT INTO clients (` + clientColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode,
		c.Country, c.TaxID, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert client")
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Client not found", "get client")
	}
	return &c, nil
}

func (r *clientRepository) filterWhere(ctx context.Context, filter *types.ClientFilter) *where {
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.Search != "" {
		w.and("(name ILIKE ? OR email ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return w
}

func (r *clientRepository) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}
	w := r.filterWhere(ctx, filter)
	query := r.db.Rebind(`SELECT ` + clientColumns + ` FROM clients` + w.String() +
		orderAndPage(filter, clientSortColumns, "created_at"))

	var clients []*client.Client
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &clients, query, w.args...); err != nil {
		return nil, dbError(err, "list clients")
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}
	w := r.filterWhere(ctx, filter)
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM clients` + w.String())
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, w.args...); err != nil {
		return 0, dbError(err, "count clients")
	}
	return count, nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	stampUpdated(&c.UpdatedAt)
	query := `
	UPDATE clients SET
		name = $1, email = $2, phone = $3, address = $4, city = $5, state = $6,
		zip_code = $7, country = $8, tax_id = $9, notes = $10, updated_at = $11
	WHERE id = $12 AND user_id = $13`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.Country,
		c.TaxID, c.Notes, c.UpdatedAt, c.ID, types.GetUserID(ctx),
	)
	if err != nil {
		return dbError(err, "update client")
	}
	return expectOneRow(result, "Client not found", "update client")
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete client")
	}
	return expectOneRow(result, "Client not found", "delete client")
}
