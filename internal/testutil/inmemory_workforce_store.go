package testutil

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/domain/jobcost"
	"github.com/contractorpro/contractorpro/internal/domain/teammember"
	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	"github.com/contractorpro/contractorpro/internal/types"
)

type InMemoryTeamMemberStore struct {
	*InMemoryStore[teammember.TeamMember]
}

func NewInMemoryTeamMemberStore() *InMemoryTeamMemberStore {
	return &InMemoryTeamMemberStore{
		InMemoryStore: NewInMemoryStore("Team member not found",
			func(m *teammember.TeamMember) string { return m.UserID }),
	}
}

func (s *InMemoryTeamMemberStore) Create(ctx context.Context, m *teammember.TeamMember) error {
	return s.InMemoryStore.Create(ctx, m.ID, m)
}

func (s *InMemoryTeamMemberStore) List(ctx context.Context, filter *types.TeamMemberFilter) ([]*teammember.TeamMember, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(m *teammember.TeamMember) bool {
		return filter == nil || filter.Role == nil || m.Role == *filter.Role
	}, func(a, b *teammember.TeamMember) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}

func (s *InMemoryTeamMemberStore) Update(ctx context.Context, m *teammember.TeamMember) error {
	return s.InMemoryStore.Update(ctx, m.ID, m)
}

// InMemoryTimeEntryStore implements timeentry.Repository
type InMemoryTimeEntryStore struct {
	*InMemoryStore[timeentry.Entry]
}

func NewInMemoryTimeEntryStore() *InMemoryTimeEntryStore {
	return &InMemoryTimeEntryStore{
		InMemoryStore: NewInMemoryStore("Entry not found", func(e *timeentry.Entry) string { return e.UserID }),
	}
}

func latestClockInFirst(a, b *timeentry.Entry) bool {
	return a.ClockInTime.After(b.ClockInTime)
}

func (s *InMemoryTimeEntryStore) Create(ctx context.Context, e *timeentry.Entry) error {
	return s.InMemoryStore.Create(ctx, e.ID, e)
}

func (s *InMemoryTimeEntryStore) List(ctx context.Context, filter *types.TimeEntryFilter) ([]*timeentry.Entry, error) {
	if filter == nil {
		filter = types.NewTimeEntryFilter()
	}
	return s.InMemoryStore.List(ctx, filter.QueryFilter, func(e *timeentry.Entry) bool {
		if filter.TeamMemberID != "" && e.TeamMemberID != filter.TeamMemberID {
			return false
		}
		if filter.ProjectID != "" && e.ProjectID != filter.ProjectID {
			return false
		}
		if filter.ApprovalStatus != nil && e.ApprovalStatus != *filter.ApprovalStatus {
			return false
		}
		return filter.TimeRangeFilter.Contains(e.ClockInTime)
	}, latestClockInFirst)
}

func (s *InMemoryTimeEntryStore) Update(ctx context.Context, e *timeentry.Entry) error {
	return s.InMemoryStore.Update(ctx, e.ID, e)
}

func (s *InMemoryTimeEntryStore) GetLatestForTeamMember(ctx context.Context, teamMemberID string) (*timeentry.Entry, error) {
	entries, err := s.InMemoryStore.List(ctx, nil, func(e *timeentry.Entry) bool {
		return e.TeamMemberID == teamMemberID
	}, latestClockInFirst)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, s.notFound()
	}
	return entries[0], nil
}

type InMemoryJobCostStore struct {
	*InMemoryStore[jobcost.JobCost]
}

func NewInMemoryJobCostStore() *InMemoryJobCostStore {
	return &InMemoryJobCostStore{
		InMemoryStore: NewInMemoryStore("Job cost not found", func(c *jobcost.JobCost) string { return c.UserID }),
	}
}

func (s *InMemoryJobCostStore) Create(ctx context.Context, c *jobcost.JobCost) error {
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryJobCostStore) List(ctx context.Context, filter *types.JobCostFilter) ([]*jobcost.JobCost, error) {
	var page *types.QueryFilter
	if filter != nil {
		page = filter.QueryFilter
	}
	return s.InMemoryStore.List(ctx, page, func(c *jobcost.JobCost) bool {
		if filter == nil {
			return true
		}
		if filter.ProjectID != "" && c.ProjectID != filter.ProjectID {
			return false
		}
		return filter.Category == "" || c.Category == filter.Category
	}, func(a, b *jobcost.JobCost) bool {
		return newestFirst(a.BaseModel, b.BaseModel)
	})
}
