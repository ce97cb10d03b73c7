package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/events"
	"github.com/contractorpro/contractorpro/internal/export"
	"github.com/contractorpro/contractorpro/internal/metrics"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type TimeEntryService interface {
	ListTimeEntries(ctx context.Context, filter *types.TimeEntryFilter) (*dto.ListTimeEntriesResponse, error)
	GetTimeEntry(ctx context.Context, id string) (*dto.TimeEntryResponse, error)
	ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.ClockResponse, error)
	ClockOut(ctx context.Context, id string, req dto.ClockOutRequest) (*dto.ClockResponse, error)
	ApproveTimeEntry(ctx context.Context, id string) (*dto.TimeEntryResponse, error)
	GetSummary(ctx context.Context, req dto.DateRangeRequest) (*dto.TimeEntrySummaryResponse, error)
	ExportTimeEntries(ctx context.Context, filter *types.TimeEntryFilter) ([]byte, error)
}

type timeEntryService struct {
	ServiceParams
}

func NewTimeEntryService(params ServiceParams) TimeEntryService {
	return &timeEntryService{
		ServiceParams: params,
	}
}

func (s *timeEntryService) ListTimeEntries(ctx context.Context, filter *types.TimeEntryFilter) (*dto.ListTimeEntriesResponse, error) {
	entries, filter, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := newListResponse(entries, len(entries), filter.QueryFilter, func(e *timeentry.Entry) *dto.TimeEntryResponse {
		return &dto.TimeEntryResponse{Entry: e}
	})
	return &resp, nil
}

func (s *timeEntryService) list(ctx context.Context, filter *types.TimeEntryFilter) ([]*timeentry.Entry, *types.TimeEntryFilter, error) {
	if filter == nil {
		filter = types.NewTimeEntryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, nil, err
	}
	entries, err := s.TimeEntryRepo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return entries, filter, nil
}

func (s *timeEntryService) GetTimeEntry(ctx context.Context, id string) (*dto.TimeEntryResponse, error) {
	entry, err := s.TimeEntryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TimeEntryResponse{Entry: entry}, nil
}

// ClockIn refuses to open a second entry while the team member's latest one is open.
// The check and the insert are not atomic; two concurrent clock-ins can both succeed.
func (s *timeEntryService) ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	latest, err := s.TimeEntryRepo.GetLatestForTeamMember(ctx, req.TeamMemberID)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if latest != nil && latest.IsOpen() {
		return nil, ierr.NewError("team member already clocked in").
			WithHint("Already clocked in").
			WithReportableDetails(map[string]any{
				"team_member_id": req.TeamMemberID,
				"entry_id":       latest.ID,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	entry := req.ToEntry(ctx, s.now())
	if err := s.TimeEntryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.Logger.Infow("clocked in",
		"entry_id", entry.ID,
		"team_member_id", entry.TeamMemberID,
		"project_id", entry.ProjectID,
		"user_id", entry.UserID,
	)

	return &dto.ClockResponse{
		Success: true,
		Entry:   &dto.TimeEntryResponse{Entry: entry},
		Message: "Clocked in successfully",
	}, nil
}

func (s *timeEntryService) ClockOut(ctx context.Context, id string, req dto.ClockOutRequest) (*dto.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.TimeEntryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsOpen() {
		return nil, ierr.NewError("entry already closed").
			WithHint("Already clocked out").
			WithReportableDetails(map[string]any{"entry_id": entry.ID}).
			Mark(ierr.ErrInvalidOperation)
	}

	rate, err := s.hourlyRate(ctx, entry.TeamMemberID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry.Close(now, req.Latitude, req.Longitude, rate)
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	entry.UpdatedAt = now

	if err := s.TimeEntryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	minutes := lo.FromPtr(entry.DurationMinutes)
	metrics.RecordLaborMinutes(minutes)
	s.publish(ctx, types.TopicTimeEntryClockedOut, &events.TimeEntryClockedOutPayload{
		EntryID:         entry.ID,
		TeamMemberID:    entry.TeamMemberID,
		ProjectID:       entry.ProjectID,
		DurationMinutes: minutes,
		TotalCost:       entry.TotalCost.Decimal,
	})

	s.Logger.Infow("clocked out",
		"entry_id", entry.ID,
		"team_member_id", entry.TeamMemberID,
		"duration_minutes", minutes,
		"total_cost", entry.TotalCost.Decimal.StringFixed(2),
	)

	return &dto.ClockResponse{
		Success: true,
		Entry:   &dto.TimeEntryResponse{Entry: entry},
		Message: "Clocked out successfully",
	}, nil
}

// hourlyRate is the team member's current rate, or zero when the member no longer exists
func (s *timeEntryService) hourlyRate(ctx context.Context, teamMemberID string) (decimal.Decimal, error) {
	member, err := s.TeamMemberRepo.Get(ctx, teamMemberID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnw("team member not found at clock out, using zero rate",
				"team_member_id", teamMemberID,
			)
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return member.HourlyRate, nil
}

func (s *timeEntryService) ApproveTimeEntry(ctx context.Context, id string) (*dto.TimeEntryResponse, error) {
	entry, err := s.TimeEntryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.ApprovalStatus = types.ApprovalStatusApproved
	entry.ApprovedBy = lo.ToPtr(types.GetUserID(ctx))
	entry.UpdatedAt = s.now()

	if err := s.TimeEntryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return &dto.TimeEntryResponse{Entry: entry}, nil
}

func (s *timeEntryService) GetSummary(ctx context.Context, req dto.DateRangeRequest) (*dto.TimeEntrySummaryResponse, error) {
	filter := types.NewTimeEntryFilter()
	filter.TimeRangeFilter = req.ToTimeRangeFilter()

	entries, _, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalMinutes := lo.SumBy(entries, func(e *timeentry.Entry) int {
		return lo.FromPtr(e.DurationMinutes)
	})
	totalCost := decimal.Zero
	for _, e := range entries {
		if e.TotalCost.Valid {
			totalCost = totalCost.Add(e.TotalCost.Decimal)
		}
	}

	return &dto.TimeEntrySummaryResponse{
		TotalDurationHours: decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60)).StringFixed(1),
		TotalCost:          totalCost.StringFixed(2),
		ApprovedEntries: lo.CountBy(entries, func(e *timeentry.Entry) bool {
			return e.ApprovalStatus == types.ApprovalStatusApproved
		}),
		PendingEntries: lo.CountBy(entries, func(e *timeentry.Entry) bool {
			return e.ApprovalStatus == types.ApprovalStatusPending
		}),
	}, nil
}

func (s *timeEntryService) ExportTimeEntries(ctx context.Context, filter *types.TimeEntryFilter) ([]byte, error) {
	entries, _, err := s.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.TimeEntries(entries)
}
