package postgres

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/portal"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type portalRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPortalRepository(db *postgres.DB, logger *logger.Logger) portal.Repository {
	return &portalRepository{db: db, logger: logger}
}

const portalColumns = `id, user_id, client_id, project_id, portal_url, access_token, access_level,
	is_active, expiry_date, last_accessed_at, created_at, updated_at`

func (r *portalRepository) Create(ctx context.Context, a *portal.Access) error {
	query := `
	INSERT INTO portal_accesses (` + portalColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID, a.UserID, a.ClientID, a.ProjectID, a.PortalURL, a.AccessToken, a.AccessLevel,
		a.IsActive, a.ExpiryDate, a.LastAccessedAt, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert portal access")
	}
	return nil
}

func (r *portalRepository) Get(ctx context.Context, id string) (*portal.Access, error) {
	var a portal.Access
	query := `SELECT ` + portalColumns + ` FROM portal_accesses WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &a, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Portal access not found", "get portal access")
	}
	return &a, nil
}

func (r *portalRepository) GetByToken(ctx context.Context, token string) (*portal.Access, error) {
	var a portal.Access
	query := `SELECT ` + portalColumns + ` FROM portal_accesses WHERE access_token = $1 AND is_active = true`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &a, query, token); err != nil {
		return nil, notFoundOr(err, "Invalid or expired portal access", "get portal access by token")
	}
	return &a, nil
}

func (r *portalRepository) List(ctx context.Context, filter *types.PortalAccessFilter) ([]*portal.Access, error) {
	if filter == nil {
		filter = types.NewPortalAccessFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ClientID != "" {
		w.and("client_id = ?", filter.ClientID)
	}
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	query := r.db.Rebind(`SELECT ` + portalColumns + ` FROM portal_accesses` + w.String() +
		orderAndPage(filter, map[string]string{"created_at": "created_at"}, "created_at"))

	var accesses []*portal.Access
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &accesses, query, w.args...); err != nil {
		return nil, dbError(err, "list portal accesses")
	}
	return accesses, nil
}

func (r *portalRepository) Update(ctx context.Context, a *portal.Access) error {
	stampUpdated(&a.UpdatedAt)
	query := `
	UPDATE portal_accesses SET
		access_level = $1, is_active = $2, expiry_date = $3, updated_at = $4
	WHERE id = $5 AND user_id = $6`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.AccessLevel, a.IsActive, a.ExpiryDate, a.UpdatedAt, a.ID, types.GetUserID(ctx),
	)
	if err != nil {
		return dbError(err, "update portal access")
	}
	return expectOneRow(result, "Portal access not found", "update portal access")
}

func (r *portalRepository) TouchLastAccessed(ctx context.Context, id string) error {
	_, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`UPDATE portal_accesses SET last_accessed_at = $1 WHERE id = $2`, time.Now().UTC(), id)
	if err != nil {
		return dbError(err, "touch portal access")
	}
	return nil
}
