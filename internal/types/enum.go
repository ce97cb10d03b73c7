package types

import (
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/samber/lo"
)

func validateEnum[T ~string](value T, allowed []T, name string) error {
	if !lo.Contains(allowed, value) {
		return ierr.NewErrorf("invalid %s: %s", name, value).
			WithHintf("Please provide a valid %s", name).
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
