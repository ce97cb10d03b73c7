package dto

import (
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
)

// SuccessResponse acknowledges a mutation that has nothing else to return
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewSuccessResponse(message string) *SuccessResponse {
	return &SuccessResponse{Success: true, Message: message}
}

// DateRangeRequest bounds summaries on the entity's primary timestamp
type DateRangeRequest struct {
	StartDate *time.Time `json:"start_date,omitempty" form:"start_date" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate   *time.Time `json:"end_date,omitempty" form:"end_date" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r *DateRangeRequest) ToTimeRangeFilter() *types.TimeRangeFilter {
	if r == nil || (r.StartDate == nil && r.EndDate == nil) {
		return nil
	}
	return &types.TimeRangeFilter{StartTime: r.StartDate, EndTime: r.EndDate}
}
