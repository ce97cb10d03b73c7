package portal

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, access *Access) error
	Get(ctx context.Context, id string) (*Access, error)
	List(ctx context.Context, filter *types.PortalAccessFilter) ([]*Access, error)
	Update(ctx context.Context, access *Access) error

	// GetByToken is unscoped: the token itself is the credential
	GetByToken(ctx context.Context, token string) (*Access, error)
	// TouchLastAccessed is unscoped for the same reason
	TouchLastAccessed(ctx context.Context, id string) error
}
