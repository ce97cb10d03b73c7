package v1

import (
	"net/http"

	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/postgres"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewHealthHandler(db postgres.IClient, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// @Summary Health check
// @Description Reports whether the API and its database are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ierr.ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Database not available").
			Mark(ierr.ErrDatabase))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
