package project

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter *types.ProjectFilter) ([]*Project, error)
	Count(ctx context.Context, filter *types.ProjectFilter) (int, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error

	// GetUnscoped loads a project without the owner check, for portal token holders
	GetUnscoped(ctx context.Context, id string) (*Project, error)
}
