package service

import (
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/samber/lo"
)

// newListResponse wraps items and fills pagination from the filter. An unlimited
// filter reports the whole result as one page.
func newListResponse[M any, R any](items []*M, total int, filter *types.QueryFilter, wrap func(*M) R) types.ListResponse[R] {
	wrapped := lo.Map(items, func(item *M, _ int) R { return wrap(item) })

	limit, offset := total, 0
	if filter != nil && !filter.IsUnlimited() {
		limit, offset = filter.GetLimit(), filter.GetOffset()
	}
	return types.NewListResponse(wrapped, total, limit, offset)
}
