package v1

import (
	"net/http"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
	"github.com/contractorpro/contractorpro/internal/logger"
	"github.com/contractorpro/contractorpro/internal/service"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/gin-gonic/gin"
)

type TimeEntryHandler struct {
	service service.TimeEntryService
	logger  *logger.Logger
}

func NewTimeEntryHandler(service service.TimeEntryService, logger *logger.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		service: service,
		logger:  logger,
	}
}

// @Summary List time entries
// @Description Time entries ordered by clock-in time, newest first
// @Tags Time Tracking
// @Produce json
// @Security BearerAuth
// @Param filter query types.TimeEntryFilter false "Filter"
// @Success 200 {object} dto.ListTimeEntriesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-entries [get]
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListTimeEntries(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a time entry
// @Tags Time Tracking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time entry ID"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /time-entries/{id} [get]
func (h *TimeEntryHandler) GetTimeEntry(c *gin.Context) {
	resp, err := h.service.GetTimeEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Clock in
// @Description Open a time entry at the given GPS position
// @Tags Time Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clock_in body dto.ClockInRequest true "Clock in"
// @Success 201 {object} dto.ClockResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-entries/clock-in [post]
func (h *TimeEntryHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Clock out
// @Description Close a time entry and compute its duration and labor cost
// @Tags Time Tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time entry ID"
// @Param clock_out body dto.ClockOutRequest true "Clock out"
// @Success 200 {object} dto.ClockResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /time-entries/{id}/clock-out [post]
func (h *TimeEntryHandler) ClockOut(c *gin.Context) {
	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Approve a time entry
// @Tags Time Tracking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time entry ID"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /time-entries/{id}/approve [post]
func (h *TimeEntryHandler) ApproveTimeEntry(c *gin.Context) {
	resp, err := h.service.ApproveTimeEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Time entry summary
// @Description Total hours and labor cost, optionally bounded on clock-in time
// @Tags Time Tracking
// @Produce json
// @Security BearerAuth
// @Param range query dto.DateRangeRequest false "Date range"
// @Success 200 {object} dto.TimeEntrySummaryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-entries/summary [get]
func (h *TimeEntryHandler) GetSummary(c *gin.Context) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid date range").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Export time entries
// @Tags Time Tracking
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param filter query types.TimeEntryFilter false "Filter"
// @Success 200 {file} file
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-entries/export [get]
func (h *TimeEntryHandler) ExportTimeEntries(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	data, err := h.service.ExportTimeEntries(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	sendWorkbook(c, "time-entries", data)
}

func (h *TimeEntryHandler) bindFilter(c *gin.Context) (*types.TimeEntryFilter, bool) {
	filter := types.NewTimeEntryFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return nil, false
	}
	return filter, true
}
