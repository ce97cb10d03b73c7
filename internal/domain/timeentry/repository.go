package timeentry

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	// List orders by clock_in_time, newest first
	List(ctx context.Context, filter *types.TimeEntryFilter) ([]*Entry, error)
	Update(ctx context.Context, entry *Entry) error

	// GetLatestForTeamMember returns the caller's most recent entry for the team
	// member by clock-in time, or ErrNotFound when there is none.
	GetLatestForTeamMember(ctx context.Context, teamMemberID string) (*Entry, error)
}
