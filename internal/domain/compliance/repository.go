package compliance

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/types"
)

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context, filter *types.ComplianceDocumentFilter) ([]*Document, error)
	Delete(ctx context.Context, id string) error
}
