package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type jobCostRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewJobCostRepository(db *postgres.DB, logger *logger.Logger) jobcost.Repository {
	return &jobCostRepository{db: db, logger: logger}
}

const jobCostColumns = `id, user_id, project_id, category, description, amount, cost_date, created_at, updated_at`

var jobCostSortColumns = map[string]string{
	"created_at": "created_at",
	"cost_date":  "cost_date",
	"amount":     "amount",
}

func (r *jobCostRepository) Create(ctx context.Context, c *jobcost.JobCost) error {
	query := `
	INSERT INTO job_costs (` + jobCostColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		c.ID, c.UserID, c.ProjectID, c.Category, c.Description, c.Amount, c.CostDate,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert job cost")
	}
	return nil
}

func (r *jobCostRepository) Get(ctx context.Context, id string) (*jobcost.JobCost, error) {
	var c jobcost.JobCost
	query := `SELECT ` + jobCostColumns + ` FROM job_costs WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Job cost not found", "get job cost")
	}
	return &c, nil
}

func (r *jobCostRepository) List(ctx context.Context, filter *types.JobCostFilter) ([]*jobcost.JobCost, error) {
	if filter == nil {
		filter = types.NewJobCostFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	if filter.Category != "" {
		w.and("category = ?", filter.Category)
	}
	query := r.db.Rebind(`SELECT ` + jobCostColumns + ` FROM job_costs` + w.String() +
		orderAndPage(filter, jobCostSortColumns, "created_at"))

	var costs []*jobcost.JobCost
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &costs, query, w.args...); err != nil {
		return nil, dbError(err, "list job costs")
	}
	return costs, nil
}

func (r *jobCostRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM job_costs WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete job cost")
	}
	return expectOneRow(result, "Job cost not found", "delete job cost")
}
