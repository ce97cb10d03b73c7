package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/project"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type projectRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProjectRepository(db *postgres.DB, logger *logger.Logger) project.Repository {
	return &projectRepository{db: db, logger: logger}
}

const projectColumns = `id, user_id, client_id, name, description, status, start_date, end_date,
	budget, progress, created_at, updated_at`

var projectSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"start_date": "start_date",
}

func (r *projectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
	INSERT INTO projects (` + projectColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID, p.UserID, p.ClientID, p.Name, p.Description, p.Status, p.StartDate, p.EndDate,
		p.Budget, p.Progress, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert project")
	}
	return nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Project not found", "get project")
	}
	return &p, nil
}

func (r *projectRepository) GetUnscoped(ctx context.Context, id string) (*project.Project, error) {
	var p project.Project
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id); err != nil {
		return nil, notFoundOr(err, "Project not found", "get project")
	}
	return &p, nil
}

func (r *projectRepository) filterWhere(ctx context.Context, filter *types.ProjectFilter) *where {
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.ClientID != "" {
		w.and("client_id = ?", filter.ClientID)
	}
	if filter.Status != nil {
		w.and("status = ?", *filter.Status)
	}
	return w
}

func (r *projectRepository) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	if filter == nil {
		filter = types.NewProjectFilter()
	}
	w := r.filterWhere(ctx, filter)
	query := r.db.Rebind(`SELECT ` + projectColumns + ` FROM projects` + w.String() +
		orderAndPage(filter, projectSortColumns, "created_at"))

	var projects []*project.Project
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &projects, query, w.args...); err != nil {
		return nil, dbError(err, "list projects")
	}
	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	if filter == nil {
		filter = types.NewProjectFilter()
	}
	w := r.filterWhere(ctx, filter)
	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count,
		r.db.Rebind(`SELECT COUNT(*) FROM projects`+w.String()), w.args...); err != nil {
		return 0, dbError(err, "count projects")
	}
	return count, nil
}

func (r *projectRepository) Update(ctx context.Context, p *project.Project) error {
	stampUpdated(&p.UpdatedAt)
	query := `
	UPDATE projects SET
		client_id = $1, name = $2, description = $3, status = $4, start_date = $5,
		end_date = $6, budget = $7, progress = $8, updated_at = $9
	WHERE id = $10 AND user_id = $11`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ClientID, p.Name, p.Description, p.Status, p.StartDate, p.EndDate, p.Budget,
		p.Progress, p.UpdatedAt, p.ID, types.GetUserID(ctx),
	)
	if err != nil {
		return dbError(err, "update project")
	}
	return expectOneRow(result, "Project not found", "update project")
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete project")
	}
	return expectOneRow(result, "Project not found", "delete project")
}
