package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/carbon"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type carbonRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCarbonRepository(db *postgres.DB, logger *logger.Logger) carbon.Repository {
	return &carbonRepository{db: db, logger: logger}
}

const carbonColumns = `id, user_id, project_id, material_name, quantity, unit, carbon_emissions_per_unit,
	total_carbon_emissions, category, supplier, certification_level, notes, created_at, updated_at`

var carbonSortColumns = map[string]string{
	"created_at":             "created_at",
	"total_carbon_emissions": "total_carbon_emissions",
}

func (r *carbonRepository) Create(ctx context.Context, rec *carbon.Record) error {
	query := `
	INSERT INTO carbon_records (` + carbonColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.ProjectID, rec.MaterialName, rec.Quantity, rec.Unit,
		rec.CarbonEmissionsPerUnit, rec.TotalCarbonEmissions, rec.Category, rec.Supplier,
		rec.CertificationLevel, rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert carbon record")
	}
	return nil
}

func (r *carbonRepository) Get(ctx context.Context, id string) (*carbon.Record, error) {
	var rec carbon.Record
	query := `SELECT ` + carbonColumns + ` FROM carbon_records WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &rec, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Carbon record not found", "get carbon record")
	}
	return &rec, nil
}

func (r *carbonRepository) List(ctx context.Context, filter *types.CarbonRecordFilter) ([]*carbon.Record, error) {
	if filter == nil {
		filter = types.NewCarbonRecordFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	query := r.db.Rebind(`SELECT ` + carbonColumns + ` FROM carbon_records` + w.String() +
		orderAndPage(filter, carbonSortColumns, "created_at"))

	var records []*carbon.Record
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &records, query, w.args...); err != nil {
		return nil, dbError(err, "list carbon records")
	}
	return records, nil
}

func (r *carbonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM carbon_records WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete carbon record")
	}
	return expectOneRow(result, "Carbon record not found", "delete carbon record")
}
