package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type teamMemberRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTeamMemberRepository(db *postgres.DB, logger *logger.Logger) teammember.Repository {
	return &teamMemberRepository{db: db, logger: logger}
}

const teamMemberColumns = `id, user_id, name, email, phone, role, hourly_rate, created_at, updated_at`

var teamMemberSortColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

func (r *teamMemberRepository) Create(ctx context.Context, m *teammember.TeamMember) error {
	query := `
	INSERT INTO team_members (` + teamMemberColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		m.ID, m.UserID, m.Name, m.Email, m.Phone, m.Role, m.HourlyRate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert team member")
	}
	return nil
}

func (r *teamMemberRepository) Get(ctx context.Context, id string) (*teammember.TeamMember, error) {
	var m teammember.TeamMember
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &m, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Team member not found", "get team member")
	}
	return &m, nil
}

func (r *teamMemberRepository) List(ctx context.Context, filter *types.TeamMemberFilter) ([]*teammember.TeamMember, error) {
	if filter == nil {
		filter = types.NewTeamMemberFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.Role != nil {
		w.and("role = ?", *filter.Role)
	}
	query := r.db.Rebind(`SELECT ` + teamMemberColumns + ` FROM team_members` + w.String() +
		orderAndPage(filter, teamMemberSortColumns, "created_at"))

	var members []*teammember.TeamMember
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &members, query, w.args...); err != nil {
		return nil, dbError(err, "list team members")
	}
	return members, nil
}

func (r *teamMemberRepository) Update(ctx context.Context, m *teammember.TeamMember) error {
	stampUpdated(&m.UpdatedAt)
	query := `
	UPDATE team_members SET
		name = $1, email = $2, phone = $3, role = $4, hourly_rate = $5, updated_at = $6
	WHERE id = $7 AND user_id = $8`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		m.Name, m.Email, m.Phone, m.Role, m.HourlyRate, m.UpdatedAt, m.ID, types.GetUserID(ctx),
	)
	if err != nil {
		return dbError(err, "update team member")
	}
	return expectOneRow(result, "Team member not found", "update team member")
}

func (r *teamMemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM team_members WHERE id = $1 AND user_id = $2`, id, types.GetUserID(ctx))
	if err != nil {
		return dbError(err, "delete team member")
	}
	return expectOneRow(result, "Team member not found", "delete team member")
}
