package dto

import (
	"context"
	"time"

	"github.com/contractorpro/contractorpro/internal/domain/timeentry"
	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/contractorpro/contractorpro/internal/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	TeamMemberID string          `json:"team_member_id" validate:"required"`
	ProjectID    string          `json:"project_id" validate:"required"`
	Latitude     decimal.Decimal `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    decimal.Decimal `json:"longitude" validate:"gte=-180,lte=180"`
	Notes        string          `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToEntry opens a pending entry stamped at now
func (r *ClockInRequest) ToEntry(ctx context.Context, now time.Time) *timeentry.Entry {
	return &timeentry.Entry{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TIME_ENTRY),
		TeamMemberID:     r.TeamMemberID,
		ProjectID:        r.ProjectID,
		ClockInTime:      now,
		ClockInLatitude:  r.Latitude,
		ClockInLongitude: r.Longitude,
		ApprovalStatus:   types.ApprovalStatusPending,
		Notes:            r.Notes,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}

type ClockOutRequest struct {
	Latitude  decimal.Decimal `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude decimal.Decimal `json:"longitude" validate:"gte=-180,lte=180"`
	Notes     *string         `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type TimeEntryResponse struct {
	*timeentry.Entry
}

type ClockResponse struct {
	Success bool               `json:"success"`
	Entry   *TimeEntryResponse `json:"entry"`
	Message string             `json:"message"`
}

type ListTimeEntriesResponse = types.ListResponse[*TimeEntryResponse]

type TimeEntrySummaryResponse struct {
	// TotalDurationHours has one decimal place
	TotalDurationHours string `json:"totalDurationHours"`
	TotalCost          string `json:"totalCost"`
	ApprovedEntries    int    `json:"approvedEntries"`
	PendingEntries     int    `json:"pendingEntries"`
}
