package carbon

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, record *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, filter *types.CarbonRecordFilter) ([]*Record, error)
	Delete(ctx context.Context, id string) error
}
