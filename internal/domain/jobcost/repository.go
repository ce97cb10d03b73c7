package jobcost

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, cost *JobCost) error
	Get(ctx context.Context, id string) (*JobCost, error)
	List(ctx context.Context, filter *types.JobCostFilter) ([]*JobCost, error)
	Delete(ctx context.Context, id string) error
}
