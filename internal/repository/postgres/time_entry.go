package postgres

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/contractorpro/contractorpro/internal/types"
)

type timeEntryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTimeEntryRepository(db *postgres.DB, logger *logger.Logger) timeentry.Repository {
	return &timeEntryRepository{db: db, logger: logger}
}

const timeEntryColumns = `id, user_id, team_member_id, project_id, clock_in_time, clock_out_time,
	clock_in_latitude, clock_in_longitude, clock_out_latitude, clock_out_longitude, is_geofenced,
	duration_minutes, hourly_rate, total_cost, approval_status, approved_by, notes,
	created_at, updated_at`

func (r *timeEntryRepository) Create(ctx context.Context, e *timeentry.Entry) error {
	query := `
	INSERT INTO gps_time_entries (` + timeEntryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		e.ID, e.UserID, e.TeamMemberID, e.ProjectID, e.ClockInTime, e.ClockOutTime,
		e.ClockInLatitude, e.ClockInLongitude, e.ClockOutLatitude, e.ClockOutLongitude, e.IsGeofenced,
		e.DurationMinutes, e.HourlyRate, e.TotalCost, e.ApprovalStatus, e.ApprovedBy, e.Notes,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return dbError(err, "insert time entry")
	}
	return nil
}

func (r *timeEntryRepository) Get(ctx context.Context, id string) (*timeentry.Entry, error) {
	var e timeentry.Entry
	query := `SELECT ` + timeEntryColumns + ` FROM gps_time_entries WHERE id = $1 AND user_id = $2`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &e, query, id, types.GetUserID(ctx)); err != nil {
		return nil, notFoundOr(err, "Entry not found", "get time entry")
	}
	return &e, nil
}

func (r *timeEntryRepository) GetLatestForTeamMember(ctx context.Context, teamMemberID string) (*timeentry.Entry, error) {
	var e timeentry.Entry
	query := `
	SELECT ` + timeEntryColumns + `
	FROM gps_time_entries
	WHERE user_id = $1 AND team_member_id = $2
	ORDER BY clock_in_time DESC
	LIMIT 1`
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &e, query, types.GetUserID(ctx), teamMemberID); err != nil {
		return nil, notFoundOr(err, "Entry not found", "get latest time entry")
	}
	return &e, nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter *types.TimeEntryFilter) ([]*timeentry.Entry, error) {
	if filter == nil {
		filter = types.NewTimeEntryFilter()
	}
	w := newWhere("user_id = ?", types.GetUserID(ctx))
	if filter.TeamMemberID != "" {
		w.and("team_member_id = ?", filter.TeamMemberID)
	}
	if filter.ProjectID != "" {
		w.and("project_id = ?", filter.ProjectID)
	}
	if filter.ApprovalStatus != nil {
		w.and("approval_status = ?", *filter.ApprovalStatus)
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			w.and("clock_in_time >= ?", *filter.StartTime)
		}
		if filter.EndTime != nil {
			w.and("clock_in_time <= ?", *filter.EndTime)
		}
	}

	// entries always come back newest clock-in first
	query := r.db.Rebind(`SELECT ` + timeEntryColumns + ` FROM gps_time_entries` + w.String() +
		orderAndPage(filter, map[string]string{}, "clock_in_time"))

	var entries []*timeentry.Entry
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &entries, query, w.args...); err != nil {
		return nil, dbError(err, "list time entries")
	}
	return entries, nil
}

func (r *timeEntryRepository) Update(ctx context.Context, e *timeentry.Entry) error {
	stampUpdated(&e.UpdatedAt)
	query := `
	UPDATE gps_time_entries SET
		clock_out_time = $1, clock_out_latitude = $2, clock_out_longitude = $3,
		duration_minutes = $4, hourly_rate = $5, total_cost = $6, approval_status = $7,
		approved_by = $8, notes = $9, updated_at = $10
	WHERE id = $11 AND user_id = $12`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		e.ClockOutTime, e.ClockOutLatitude, e.ClockOutLongitude, e.DurationMinutes, e.HourlyRate,
		e.TotalCost, e.ApprovalStatus, e.ApprovedBy, e.Notes, e.UpdatedAt, e.ID, e.UserID,
	)
	if err != nil {
		return dbError(err, "update time entry")
	}
	return expectOneRow(result, "Entry not found", "update time entry")
}
