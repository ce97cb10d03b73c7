package router

import (
	"context"
	"errors"
	"net"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
)

func shouldRetry(logger *logger.Logger, err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		logger.Debugw("retrying due to network timeout", "error", netErr)
		return true
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	// Business logic errors (don't retry)
	if ierr.IsValidation(err) ||
		ierr.IsNotFound(err) ||
		ierr.IsPermissionDenied(err) ||
		ierr.IsInvalidOperation(err) {
		logger.Debugw("non-retryable handler error", "error", err)
		return false
	}

	// Provider outages, database errors and anything unclassified are retried
	return true
}
