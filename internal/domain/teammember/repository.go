package teammember

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, member *TeamMember) error
	Get(ctx context.Context, id string) (*TeamMember, error)
	List(ctx context.Context, filter *types.TeamMemberFilter) ([]*TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id string) error
}
